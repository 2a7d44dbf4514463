package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// FindByName returns the category with exactly the given name, or nil
	// when no such row exists.
	FindByName(ctx context.Context, name string) (*Category, error)
	// Insert attempts to create a row for name. It reports false without an
	// error when a concurrent writer already created the row.
	Insert(ctx context.Context, name string) (int, bool, error)
	GetAll(ctx context.Context) ([]Category, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) FindByName(ctx context.Context, name string) (*Category, error) {
	query := "SELECT id, name FROM categories WHERE name = ?"
	row := r.db.QueryRowContext(ctx, query, name)

	var category Category
	if err := row.Scan(&category.ID, &category.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("could not scan category: %w", err)
		log.Error(err)
		return nil, err
	}
	return &category, nil
}

func (r *RepositoryImpl) Insert(ctx context.Context, name string) (int, bool, error) {
	// Insert-first: a concurrent creation of the same name surfaces as a
	// conflict (zero affected rows) rather than a constraint error.
	query := "INSERT INTO categories (name) VALUES (?) ON CONFLICT (name) DO NOTHING"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, name)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return 0, false, err
	}
	if rowsAffected == 0 {
		return 0, false, nil
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, false, err
	}

	return int(lastInsertID), true, nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Category, error) {
	query := "SELECT id, name FROM categories ORDER BY name"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return categories, nil
}
