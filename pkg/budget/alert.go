package budget

import (
	"github.com/fintrack/fintrack/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// RegisterAlerts logs a warning whenever a newly recorded expense pushes its
// month over the configured limit. It returns the unsubscribe function.
func RegisterAlerts(bus *event_bus.EventBus, service BudgetService) func() {
	return event_bus.SubscribeTyped[event_bus.ExpenseCreated](bus, event_bus.ExpenseCreatedEvent,
		func(e event_bus.EventT[event_bus.ExpenseCreated]) error {
			month := e.Data.Date.Format(MonthFormat)
			status, err := service.MonthStatus(e.Context(), month)
			if err != nil {
				return err
			}
			if status.Status == StatusExceeded {
				log.Warnf("budget exceeded for %s: spent %s of %s", month, status.Spent, status.Limit)
			}
			return nil
		})
}
