package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/foxxcyber/billscan/internal/models"
)

var (
	ErrBillNotFound = errors.New("bill not found")
)

const (
	insertBillQuery = `
		INSERT INTO bills (user_id, status, s3_bucket, s3_key, original_filename, store_name, store_address,
		                   total_amount, tax, currency, bill_date, bill_time, confidence, raw_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	insertBillItemQuery = `
		INSERT INTO bill_items (bill_id, line_number, name, amount, category, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	billColumns = `id, user_id, status, s3_bucket, s3_key, original_filename, store_name, store_address,
		       total_amount, tax, currency, bill_date, bill_time, confidence, raw_text, created_at, updated_at`

	getBillQuery = `SELECT ` + billColumns + ` FROM bills WHERE id = $1 AND user_id = $2`

	getBillItemsQuery = `
		SELECT id, bill_id, line_number, name, amount, category, quantity, unit_price, created_at
		FROM bill_items
		WHERE bill_id = $1
		ORDER BY line_number ASC, id ASC`

	deleteBillQuery = `DELETE FROM bills WHERE id = $1 AND user_id = $2`
)

// CreateBill stores a parsed bill and its items in one transaction
func (db *DB) CreateBill(ctx context.Context, req *models.CreateBillRequest) (result *models.BillWithItems, err error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	data := req.Data
	bill := &models.BillWithItems{
		Bill: models.Bill{
			UserID:           req.UserID,
			Status:           models.StatusForConfidence(data),
			S3Bucket:         req.S3Bucket,
			S3Key:            req.S3Key,
			OriginalFilename: req.OriginalFilename,
			StoreName:        nullString(data.StoreName),
			StoreAddress:     nullString(data.StoreAddress),
			TotalAmount:      data.TotalAmount,
			Tax:              data.Tax,
			Currency:         data.Currency,
			BillDate:         nullString(data.Date),
			BillTime:         nullString(data.Time),
			Confidence:       data.Confidence,
			RawText:          data.RawText,
		},
		Items: []models.StoredBillItem{},
	}

	err = tx.QueryRow(ctx, insertBillQuery,
		bill.UserID, string(bill.Status), bill.S3Bucket, bill.S3Key, bill.OriginalFilename,
		bill.StoreName, bill.StoreAddress, bill.TotalAmount, bill.Tax, bill.Currency,
		bill.BillDate, bill.BillTime, bill.Confidence, bill.RawText,
	).Scan(&bill.ID, &bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bill: %w", err)
	}

	for i, item := range data.Items {
		category := item.Category
		if i < len(req.Categories) {
			category = req.Categories[i]
		}

		stored := models.StoredBillItem{
			BillID:     bill.ID,
			LineNumber: i + 1,
			Name:       item.Name,
			Amount:     item.Amount,
			Category:   category,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		}
		err = tx.QueryRow(ctx, insertBillItemQuery,
			stored.BillID, stored.LineNumber, stored.Name, stored.Amount, stored.Category,
			stored.Quantity, stored.UnitPrice,
		).Scan(&stored.ID, &stored.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert bill item %d: %w", stored.LineNumber, err)
		}
		bill.Items = append(bill.Items, stored)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit bill: %w", err)
	}

	return bill, nil
}

// GetBillByID retrieves a user's bill with its items
func (db *DB) GetBillByID(ctx context.Context, id, userID int) (*models.BillWithItems, error) {
	bill := &models.BillWithItems{}

	err := scanBill(db.Pool.QueryRow(ctx, getBillQuery, id, userID), &bill.Bill)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	items, err := db.GetBillItems(ctx, id)
	if err != nil {
		return nil, err
	}
	bill.Items = items

	return bill, nil
}

// GetBillItems retrieves all items for a bill in line order
func (db *DB) GetBillItems(ctx context.Context, billID int) ([]models.StoredBillItem, error) {
	rows, err := db.Pool.Query(ctx, getBillItemsQuery, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.StoredBillItem{}
	for rows.Next() {
		item := models.StoredBillItem{}
		err := rows.Scan(
			&item.ID, &item.BillID, &item.LineNumber, &item.Name, &item.Amount, &item.Category,
			&item.Quantity, &item.UnitPrice, &item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// ListBills returns a paginated list of a user's bills, newest first
func (db *DB) ListBills(ctx context.Context, params *models.BillListParams) ([]*models.Bill, int, error) {
	args := []any{params.UserID}
	whereClause := "WHERE user_id = $1"

	if params.Status != nil && *params.Status != "" {
		args = append(args, *params.Status)
		whereClause += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	err := db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM bills "+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM bills %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		billColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bills := []*models.Bill{}
	for rows.Next() {
		bill := &models.Bill{}
		if err := scanBill(rows, bill); err != nil {
			return nil, 0, err
		}
		bills = append(bills, bill)
	}

	return bills, total, rows.Err()
}

// DeleteBill removes a user's bill; items are removed by cascade
func (db *DB) DeleteBill(ctx context.Context, id, userID int) error {
	tag, err := db.Pool.Exec(ctx, deleteBillQuery, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBillNotFound
	}
	return nil
}

func scanBill(row pgx.Row, bill *models.Bill) error {
	var status string
	err := row.Scan(
		&bill.ID, &bill.UserID, &status, &bill.S3Bucket, &bill.S3Key, &bill.OriginalFilename,
		&bill.StoreName, &bill.StoreAddress, &bill.TotalAmount, &bill.Tax, &bill.Currency,
		&bill.BillDate, &bill.BillTime, &bill.Confidence, &bill.RawText, &bill.CreatedAt, &bill.UpdatedAt,
	)
	bill.Status = models.BillStatus(status)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
