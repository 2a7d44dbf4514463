package app

import (
	"database/sql"

	"github.com/fintrack/fintrack/internal/event_bus"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/budget"
	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/report"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	CategoryRepo    category.Repository
	CategoryService category.Service
	CategoryHandler *category.Handler

	ExpenseRepo    expense.Repository
	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	BudgetRepo    budget.BudgetRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	ReportRepo    report.Repository
	ReportService report.Service
	ReportHandler *report.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.CategoryRepo = category.NewRepository(db)
	deps.CategoryService = category.NewService(deps.CategoryRepo)
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.ExpenseRepo = expense.NewRepository(db)
	deps.ExpenseService = expense.NewService(deps.ExpenseRepo, deps.CategoryService, deps.Bus)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo, deps.ExpenseService.SpentInMonth, deps.Clock, deps.Bus)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)
	budget.RegisterAlerts(deps.Bus, deps.BudgetService)

	deps.ReportRepo = report.NewRepository(db)
	deps.ReportService = report.NewService(deps.ReportRepo)
	deps.ReportHandler = report.NewHandler(deps.ReportService)

	return deps
}
