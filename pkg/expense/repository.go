package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Store stores a new Expense and returns its assigned id.
	Store(ctx context.Context, expense Expense) (int, error)
	// FindByID returns the expense with the given id, or nil when absent.
	FindByID(ctx context.Context, id int) (*Expense, error)
	GetAll(ctx context.Context) ([]Expense, error)
	FindByDate(ctx context.Context, date time.Time) ([]Expense, error)
	// Update replaces title and amount in place. Date and category are not
	// touched. It reports whether a row was updated.
	Update(ctx context.Context, id int, title string, amount decimal.Decimal) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	// SumForMonth returns the total amount of all expenses whose date falls
	// within the given "YYYY-MM" month, 0 when none match.
	SumForMonth(ctx context.Context, month string) (decimal.Decimal, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, expense Expense) (int, error) {
	query := `INSERT INTO expenses (
                    title,
                    amount,
                    date,
                    category_id
				) VALUES (?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		expense.Title,
		expense.Amount,
		expense.Date.Format(DateFormat),
		expense.CategoryID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}

	return int(lastInsertID), nil
}

func (r *RepositoryImpl) FindByID(ctx context.Context, id int) (*Expense, error) {
	query := "SELECT id, title, amount, date, category_id FROM expenses WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, id)

	expense, err := scanExpense(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error(err)
		return nil, err
	}
	return expense, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Expense, error) {
	query := "SELECT id, title, amount, date, category_id FROM expenses ORDER BY id"
	return r.queryExpenses(ctx, query)
}

func (r *RepositoryImpl) FindByDate(ctx context.Context, date time.Time) ([]Expense, error) {
	query := "SELECT id, title, amount, date, category_id FROM expenses WHERE date = ? ORDER BY id"
	return r.queryExpenses(ctx, query, date.Format(DateFormat))
}

func (r *RepositoryImpl) Update(ctx context.Context, id int, title string, amount decimal.Decimal) (bool, error) {
	query := "UPDATE expenses SET title = ?, amount = ? WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, title, amount, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM expenses WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepositoryImpl) SumForMonth(ctx context.Context, month string) (decimal.Decimal, error) {
	query := "SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE strftime('%Y-%m', date) = ?"
	row := r.db.QueryRowContext(ctx, query, month)

	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		err := fmt.Errorf("could not sum expenses for month %s: %w", month, err)
		log.Error(err)
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *RepositoryImpl) queryExpenses(ctx context.Context, query string, args ...any) ([]Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	expenses := make([]Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows.Scan)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, *expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func scanExpense(scan func(...any) error) (*Expense, error) {
	var expense Expense
	var dateString string
	if err := scan(
		&expense.ID,
		&expense.Title,
		&expense.Amount,
		&dateString,
		&expense.CategoryID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("could not scan expense: %w", err)
	}

	date, err := time.Parse(DateFormat, dateString)
	if err != nil {
		return nil, fmt.Errorf("could not parse expense date: %w", err)
	}
	expense.Date = date

	return &expense, nil
}
