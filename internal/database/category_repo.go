package database

import (
	"context"
	"fmt"

	"github.com/foxxcyber/billscan/internal/models"
)

const (
	upsertCategoryQuery = `
		INSERT INTO categories (name, type, sort_order)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, type) DO UPDATE SET sort_order = EXCLUDED.sort_order`

	listCategoriesQuery = `
		SELECT id, name, type, sort_order
		FROM categories
		WHERE type = $1
		ORDER BY sort_order ASC, id ASC`
)

// UpsertCategories writes the taxonomy for one transaction type, keeping list order
func (db *DB) UpsertCategories(ctx context.Context, t models.TransactionType, names []string) (err error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for i, name := range names {
		if _, err = tx.Exec(ctx, upsertCategoryQuery, name, string(t), i+1); err != nil {
			return fmt.Errorf("failed to upsert category %q: %w", name, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit categories: %w", err)
	}
	return nil
}

// ListCategories returns the stored taxonomy for a transaction type
func (db *DB) ListCategories(ctx context.Context, t models.TransactionType) ([]models.CategoryRow, error) {
	rows, err := db.Pool.Query(ctx, listCategoriesQuery, string(t))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.CategoryRow{}
	for rows.Next() {
		var (
			row    models.CategoryRow
			txType string
		)
		if err := rows.Scan(&row.ID, &row.Name, &txType, &row.SortOrder); err != nil {
			return nil, err
		}
		row.Type = models.TransactionType(txType)
		categories = append(categories, row)
	}

	return categories, rows.Err()
}
