package budget

import (
	"context"
	"testing"

	"github.com/fintrack/fintrack/internal/test_utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetRepoImpl_Upsert_InsertsNewMonth(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewBudgetRepo(test_utils.SetupTestDB(t))

	// when
	budget, err := repo.Upsert(ctx, "2024-03", decimal.RequireFromString("100.00"))

	// then
	require.NoError(t, err)
	assert.NotZero(t, budget.ID)
	assert.Equal(t, "2024-03", budget.Month)
	assert.True(t, budget.Limit.Equal(decimal.RequireFromString("100.00")))
}

func TestBudgetRepoImpl_Upsert_OverwritesExistingMonthInPlace(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewBudgetRepo(test_utils.SetupTestDB(t))
	first, err := repo.Upsert(ctx, "2024-03", decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	// when
	second, err := repo.Upsert(ctx, "2024-03", decimal.RequireFromString("150.00"))

	// then
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert must not create a second row for the month")
	assert.True(t, second.Limit.Equal(decimal.RequireFromString("150.00")))

	stored, err := repo.FindByMonth(ctx, "2024-03")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Limit.Equal(decimal.RequireFromString("150.00")))
}

func TestBudgetRepoImpl_FindByMonth_AbsentMonth(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewBudgetRepo(test_utils.SetupTestDB(t))

	// when
	budget, err := repo.FindByMonth(ctx, "2024-03")

	// then
	require.NoError(t, err)
	assert.Nil(t, budget)
}
