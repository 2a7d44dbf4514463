package budget

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/event_bus"
	"github.com/fintrack/fintrack/internal/test_utils"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var budgetRepoStub = NewStubBudgetRepo()

func setup(t *testing.T, spent SpentProvider) (BudgetService, func()) {
	if spent == nil {
		spent = func(ctx context.Context, month string) (decimal.Decimal, error) {
			return decimal.Zero, nil
		}
	}
	clock := &utils.MockClock{FixedNow: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	service := NewBudgetService(budgetRepoStub, spent, clock, nil)
	return service, func() {
		t.Log("Teardown after test")
		budgetRepoStub.Cleanup()
	}
}

func fixedSpent(amount string) SpentProvider {
	return func(ctx context.Context, month string) (decimal.Decimal, error) {
		return decimal.RequireFromString(amount), nil
	}
}

func TestBudgetServiceImpl_Set(t *testing.T) {
	t.Run("should store a new monthly limit", func(t *testing.T) {
		service, teardown := setup(t, nil)
		defer teardown()

		// when
		budget, err := service.Set(context.Background(), "2024-03", "100.00")

		// then
		require.NoError(t, err)
		assert.Equal(t, "2024-03", budget.Month)
		assert.True(t, budget.Limit.Equal(decimal.RequireFromString("100.00")))
	})

	t.Run("should overwrite the limit for an existing month", func(t *testing.T) {
		service, teardown := setup(t, nil)
		defer teardown()

		// given
		first, err := service.Set(context.Background(), "2024-03", "100.00")
		require.NoError(t, err)

		// when
		second, err := service.Set(context.Background(), "2024-03", "150.00")

		// then
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.Limit.Equal(decimal.RequireFromString("150.00")))
	})

	t.Run("should reject a malformed month key", func(t *testing.T) {
		service, teardown := setup(t, nil)
		defer teardown()

		// when
		_, err := service.Set(context.Background(), "March 2024", "100.00")

		// then
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("should reject a malformed limit", func(t *testing.T) {
		service, teardown := setup(t, nil)
		defer teardown()

		// when
		_, err := service.Set(context.Background(), "2024-03", "a lot")

		// then
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})
}

func TestBudgetServiceImpl_MonthStatus(t *testing.T) {
	t.Run("should report no budget with the spent total", func(t *testing.T) {
		service, teardown := setup(t, fixedSpent("42.00"))
		defer teardown()

		// when
		status, err := service.MonthStatus(context.Background(), "2024-03")

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusNoBudget, status.Status)
		assert.True(t, status.Spent.Equal(decimal.RequireFromString("42.00")))
	})

	t.Run("should report within budget when spent equals the limit exactly", func(t *testing.T) {
		service, teardown := setup(t, fixedSpent("100.00"))
		defer teardown()

		// given
		_, err := service.Set(context.Background(), "2024-03", "100.00")
		require.NoError(t, err)

		// when
		status, err := service.MonthStatus(context.Background(), "2024-03")

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusWithinBudget, status.Status)
		assert.True(t, status.Spent.Equal(decimal.RequireFromString("100.00")))
	})

	t.Run("should report exceeded when spent is strictly over the limit", func(t *testing.T) {
		service, teardown := setup(t, fixedSpent("100.01"))
		defer teardown()

		// given
		_, err := service.Set(context.Background(), "2024-03", "100.00")
		require.NoError(t, err)

		// when
		status, err := service.MonthStatus(context.Background(), "2024-03")

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusExceeded, status.Status)
	})

	t.Run("should default an empty month to the current month", func(t *testing.T) {
		service, teardown := setup(t, fixedSpent("10.00"))
		defer teardown()

		// when
		status, err := service.MonthStatus(context.Background(), "")

		// then
		require.NoError(t, err)
		assert.Equal(t, "2024-03", status.Month)
	})

	t.Run("should reject a malformed month key", func(t *testing.T) {
		service, teardown := setup(t, nil)
		defer teardown()

		// when
		_, err := service.MonthStatus(context.Background(), "2024/03")

		// then
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}

// The exactly-at-the-limit scenario against the real store: the spent total is
// computed by the expense ledger, not a stub.
func TestBudgetServiceImpl_MonthStatus_ExactLimitAgainstStore(t *testing.T) {
	// given
	ctx := context.Background()
	db := test_utils.SetupTestDB(t)
	categories := category.NewService(category.NewRepository(db))
	expenses := expense.NewService(expense.NewRepository(db), categories, nil)
	service := NewBudgetService(NewBudgetRepo(db), expenses.SpentInMonth, utils.SystemClock{}, nil)

	_, err := service.Set(ctx, "2024-03", "100.0")
	require.NoError(t, err)
	for _, input := range []expense.ExpenseInput{
		{Title: "Rent share", Amount: "60.00", Date: "2024-03-01", CategoryName: "Home"},
		{Title: "Groceries", Amount: "39.50", Date: "2024-03-12", CategoryName: "Food"},
		{Title: "Coffee", Amount: "0.50", Date: "2024-03-30", CategoryName: "Food"},
	} {
		_, err := expenses.Create(ctx, input)
		require.NoError(t, err)
	}

	// when
	status, err := service.MonthStatus(ctx, "2024-03")

	// then
	require.NoError(t, err)
	assert.Equal(t, StatusWithinBudget, status.Status)
	assert.True(t, status.Spent.Equal(decimal.RequireFromString("100.0")), "spent was %s", status.Spent)
}

func TestRegisterAlerts_WarnsWhenExpensePushesMonthOverBudget(t *testing.T) {
	// given
	ctx := context.Background()
	db := test_utils.SetupTestDB(t)
	bus := event_bus.NewEventBus()
	categories := category.NewService(category.NewRepository(db))
	expenses := expense.NewService(expense.NewRepository(db), categories, bus)
	service := NewBudgetService(NewBudgetRepo(db), expenses.SpentInMonth, utils.SystemClock{}, nil)

	hook := logtest.NewGlobal()
	defer hook.Reset()

	unsubscribe := RegisterAlerts(bus, service)
	defer unsubscribe()

	_, err := service.Set(ctx, "2024-03", "5.00")
	require.NoError(t, err)

	// when an expense pushes March over its limit
	_, err = expenses.Create(ctx, expense.ExpenseInput{
		Title: "Dinner", Amount: "12.00", Date: "2024-03-02", CategoryName: "Food",
	})
	require.NoError(t, err)

	// then a warning was logged
	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned, "expected a budget exceeded warning")
}
