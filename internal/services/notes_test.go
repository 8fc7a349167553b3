package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxxcyber/billscan/internal/categories"
	"github.com/foxxcyber/billscan/internal/database"
	"github.com/foxxcyber/billscan/internal/models"
)

type fakeNoteRepo struct {
	saved []models.NoteData
	texts []*string
}

func (f *fakeNoteRepo) CreateNote(ctx context.Context, userID int, text *string, data models.NoteData) (*models.Note, error) {
	f.saved = append(f.saved, data)
	f.texts = append(f.texts, text)
	return &models.Note{ID: len(f.saved), UserID: userID, Type: data.Type, Category: data.Category, Text: text}, nil
}

func (f *fakeNoteRepo) GetNoteByID(ctx context.Context, id, userID int) (*models.Note, error) {
	if id < 1 || id > len(f.saved) {
		return nil, database.ErrNoteNotFound
	}
	data := f.saved[id-1]
	return &models.Note{ID: id, UserID: userID, Type: data.Type, Category: data.Category, Text: f.texts[id-1]}, nil
}

func (f *fakeNoteRepo) ListNotes(ctx context.Context, params *models.NoteListParams) ([]*models.Note, int, error) {
	return []*models.Note{}, 0, nil
}

func TestClassify(t *testing.T) {
	svc := NewNoteService(nil)

	note, err := svc.Classify(models.TransactionExpense, []byte(`{"category": "🚕 Vận chuyển", "totalAmount": 80000, "confidence": "medium"}`))
	require.NoError(t, err)
	assert.Equal(t, models.CategoryTransport, note.Category)
	assert.Equal(t, "🚕 Vận chuyển", note.RawCategory)
	assert.Equal(t, 80000.0, note.TotalAmount)

	_, err = svc.Classify(models.TransactionExpense, []byte(`{"totalAmount": -5, "category": "x"}`))
	assert.ErrorIs(t, err, categories.ErrInvalidClassification)
}

func TestSaveNote(t *testing.T) {
	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo)

	note, err := svc.Save(context.Background(), 5, models.TransactionIncome, "", []byte(`{"category": "Bonus"}`))
	require.NoError(t, err)
	assert.Equal(t, models.CategoryBonus, note.Category)
	require.Len(t, repo.texts, 1)
	assert.Nil(t, repo.texts[0])

	stored, err := svc.GetNote(context.Background(), note.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryBonus, stored.Category)

	_, err = svc.GetNote(context.Background(), 99, 5)
	assert.ErrorIs(t, err, database.ErrNoteNotFound)
}
