package services

import (
	"context"

	"github.com/foxxcyber/billscan/internal/categories"
	"github.com/foxxcyber/billscan/internal/models"
	"github.com/foxxcyber/billscan/internal/observability"
)

// NoteRepository persists classified notes
type NoteRepository interface {
	CreateNote(ctx context.Context, userID int, text *string, data models.NoteData) (*models.Note, error)
	GetNoteByID(ctx context.Context, id, userID int) (*models.Note, error)
	ListNotes(ctx context.Context, params *models.NoteListParams) ([]*models.Note, int, error)
}

// NoteService maps generative note classifications onto the category taxonomy
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a note service; repo may be nil when only classifying
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Classify validates a raw classification and resolves its category
func (s *NoteService) Classify(t models.TransactionType, raw []byte) (models.NoteData, error) {
	c, err := categories.DecodeClassification(raw)
	if err != nil {
		return models.NoteData{}, err
	}

	note := categories.MapNote(c, t)
	observability.ObserveMapping(string(t), categories.IsFallback(note.Category))
	return note, nil
}

// Save classifies and stores a note
func (s *NoteService) Save(ctx context.Context, userID int, t models.TransactionType, text string, raw []byte) (*models.Note, error) {
	data, err := s.Classify(t, raw)
	if err != nil {
		return nil, err
	}

	var textPtr *string
	if text != "" {
		textPtr = &text
	}
	return s.repo.CreateNote(ctx, userID, textPtr, data)
}

// GetNote returns one of a user's notes
func (s *NoteService) GetNote(ctx context.Context, id, userID int) (*models.Note, error) {
	return s.repo.GetNoteByID(ctx, id, userID)
}

// ListNotes returns a page of a user's notes
func (s *NoteService) ListNotes(ctx context.Context, params *models.NoteListParams) ([]*models.Note, int, error) {
	return s.repo.ListNotes(ctx, params)
}
