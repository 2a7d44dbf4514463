package report

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// CategoryTotals returns one row per category with at least one expense.
	// Categories without expenses are omitted (inner-join semantics). Rows
	// are ordered by category name so a single call has a stable order.
	CategoryTotals(ctx context.Context) ([]CategoryTotal, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) CategoryTotals(ctx context.Context) ([]CategoryTotal, error) {
	query := `SELECT c.name, SUM(e.amount)
				FROM categories c
				JOIN expenses e ON e.category_id = c.id
				GROUP BY c.id, c.name
				ORDER BY c.name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query category totals: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	totals := make([]CategoryTotal, 0)
	for rows.Next() {
		var total CategoryTotal
		if err := rows.Scan(&total.CategoryName, &total.Total); err != nil {
			err := fmt.Errorf("could not scan category total: %w", err)
			log.Error(err)
			return nil, err
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return totals, nil
}
