package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxxcyber/billscan/internal/models"
)

func TestCreateNote(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	text := "ăn phở 50k"
	items := []models.NoteLineItem{{Item: "Phở", Amount: 50000}}

	mock.ExpectQuery(regexp.QuoteMeta(insertNoteQuery)).
		WithArgs(4, "expense", &text, 50000.0, models.CategoryFood, "🍜 Ăn uống", "Ăn sáng", "high", items).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(8, now))

	note, err := db.CreateNote(context.Background(), 4, &text, models.NoteData{
		Type:        models.TransactionExpense,
		TotalAmount: 50000,
		Items:       items,
		Category:    models.CategoryFood,
		RawCategory: "🍜 Ăn uống",
		Description: "Ăn sáng",
		Confidence:  "high",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, note.ID)
	assert.Equal(t, models.TransactionExpense, note.Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNoteByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(getNoteQuery)).
		WithArgs(1, 4).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := db.GetNoteByID(context.Background(), 1, 4)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotes(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notes WHERE user_id = $1")).
		WithArgs(4).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs(4, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "type", "text", "total_amount", "category", "raw_category", "description", "confidence", "items", "created_at",
		}).AddRow(8, 4, "income", (*string)(nil), 15000000.0, models.CategorySalary, "Lương", "", "medium",
			[]models.NoteLineItem(nil), now))

	notes, total, err := db.ListNotes(context.Background(), &models.NoteListParams{UserID: 4, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, notes, 1)
	assert.Equal(t, models.TransactionIncome, notes[0].Type)
	assert.NotNil(t, notes[0].Items)

	assert.NoError(t, mock.ExpectationsWereMet())
}
