package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/foxxcyber/billscan/internal/models"
)

var (
	ErrNoteNotFound = errors.New("note not found")
)

const (
	insertNoteQuery = `
		INSERT INTO notes (user_id, type, text, total_amount, category, raw_category, description, confidence, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	noteColumns = `id, user_id, type, text, total_amount, category, raw_category, description, confidence, items, created_at`

	getNoteQuery = `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`
)

// CreateNote stores a mapped note classification
func (db *DB) CreateNote(ctx context.Context, userID int, text *string, data models.NoteData) (*models.Note, error) {
	note := &models.Note{
		UserID:      userID,
		Type:        data.Type,
		Text:        text,
		TotalAmount: data.TotalAmount,
		Category:    data.Category,
		RawCategory: data.RawCategory,
		Description: data.Description,
		Confidence:  data.Confidence,
		Items:       data.Items,
	}
	if note.Items == nil {
		note.Items = []models.NoteLineItem{}
	}

	err := db.Pool.QueryRow(ctx, insertNoteQuery,
		note.UserID, string(note.Type), note.Text, note.TotalAmount, note.Category,
		note.RawCategory, note.Description, note.Confidence, note.Items,
	).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	return note, nil
}

// GetNoteByID retrieves a user's note
func (db *DB) GetNoteByID(ctx context.Context, id, userID int) (*models.Note, error) {
	note := &models.Note{}
	if err := scanNote(db.Pool.QueryRow(ctx, getNoteQuery, id, userID), note); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

// ListNotes returns a paginated list of a user's notes, newest first
func (db *DB) ListNotes(ctx context.Context, params *models.NoteListParams) ([]*models.Note, int, error) {
	args := []any{params.UserID}
	whereClause := "WHERE user_id = $1"

	if params.Type != nil && *params.Type != "" {
		args = append(args, *params.Type)
		whereClause += fmt.Sprintf(" AND type = $%d", len(args))
	}

	var total int
	err := db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM notes "+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM notes %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		noteColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notes := []*models.Note{}
	for rows.Next() {
		note := &models.Note{}
		if err := scanNote(rows, note); err != nil {
			return nil, 0, err
		}
		notes = append(notes, note)
	}

	return notes, total, rows.Err()
}

func scanNote(row pgx.Row, note *models.Note) error {
	var txType string
	err := row.Scan(
		&note.ID, &note.UserID, &txType, &note.Text, &note.TotalAmount, &note.Category,
		&note.RawCategory, &note.Description, &note.Confidence, &note.Items, &note.CreatedAt,
	)
	note.Type = models.TransactionType(txType)
	if note.Items == nil {
		note.Items = []models.NoteLineItem{}
	}
	return err
}
