package budget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetRepo interface {
	// Upsert inserts the monthly limit or overwrites an existing one, keeping
	// the at-most-one-row-per-month invariant.
	Upsert(ctx context.Context, month string, limit decimal.Decimal) (Budget, error)
	// FindByMonth returns the budget for the month, or nil when none is set.
	FindByMonth(ctx context.Context, month string) (*Budget, error)
}

type BudgetRepoImpl struct {
	db *sql.DB
}

func NewBudgetRepo(db *sql.DB) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (r *BudgetRepoImpl) Upsert(ctx context.Context, month string, limit decimal.Decimal) (Budget, error) {
	query := `INSERT INTO budgets (month, monthly_limit) VALUES (?, ?)
				ON CONFLICT (month) DO UPDATE SET monthly_limit = excluded.monthly_limit`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return Budget{}, err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, month, limit); err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return Budget{}, err
	}

	stored, err := r.FindByMonth(ctx, month)
	if err != nil {
		return Budget{}, err
	}
	if stored == nil {
		err := fmt.Errorf("budget for %s missing right after upsert", month)
		log.Error(err)
		return Budget{}, err
	}
	return *stored, nil
}

func (r *BudgetRepoImpl) FindByMonth(ctx context.Context, month string) (*Budget, error) {
	query := "SELECT id, month, monthly_limit FROM budgets WHERE month = ?"
	row := r.db.QueryRowContext(ctx, query, month)

	var budget Budget
	if err := row.Scan(&budget.ID, &budget.Month, &budget.Limit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("could not scan budget: %w", err)
		log.Error(err)
		return nil, err
	}
	return &budget, nil
}
