package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/foxxcyber/billscan/internal/categories"
	"github.com/foxxcyber/billscan/internal/database"
	"github.com/foxxcyber/billscan/internal/middleware"
	"github.com/foxxcyber/billscan/internal/models"
	"github.com/foxxcyber/billscan/internal/services"
)

// NoteHandler maps generative note classifications to the taxonomy
type NoteHandler struct {
	notes *services.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(notes *services.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// Classify resolves a classification's category without storing it
func (h *NoteHandler) Classify(c *fiber.Ctx) error {
	req, txType, err := parseNoteRequest(c)
	if err != nil {
		return err
	}

	note, err := h.notes.Classify(txType, req.Result)
	if err != nil {
		return noteError(c, err)
	}

	return Success(c, note)
}

// CreateNote classifies and stores a note
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	req, txType, err := parseNoteRequest(c)
	if err != nil {
		return err
	}

	note, err := h.notes.Save(c.UserContext(), userID, txType, req.Note, req.Result)
	if err != nil {
		return noteError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: note})
}

// GetNote returns a single stored note
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, ok := pathID(c)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "invalid note ID")
	}

	note, err := h.notes.GetNote(c.UserContext(), id, userID)
	if err != nil {
		if errors.Is(err, database.ErrNoteNotFound) {
			return Error(c, fiber.StatusNotFound, "note not found")
		}
		log.Printf("Warning: failed to get note: %v", err)
		return Error(c, fiber.StatusInternalServerError, "failed to get note")
	}

	return Success(c, note)
}

// ListNotes returns a paginated list of the user's notes
func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	params := &models.NoteListParams{UserID: userID}
	params.Limit, params.Offset = pagination(c)
	if t := c.Query("type"); t != "" {
		if _, ok := transactionType(t); !ok {
			return Error(c, fiber.StatusBadRequest, "type must be expense or income")
		}
		params.Type = &t
	}

	notes, total, err := h.notes.ListNotes(c.UserContext(), params)
	if err != nil {
		log.Printf("Warning: failed to list notes: %v", err)
		return Error(c, fiber.StatusInternalServerError, "failed to list notes")
	}

	return SuccessWithMeta(c, notes, total, params.Limit, params.Offset)
}

// parseNoteRequest returns a *fiber.Error for ErrorHandler when the body is unusable
func parseNoteRequest(c *fiber.Ctx) (*models.ClassifyNoteRequest, models.TransactionType, error) {
	var req models.ClassifyNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	txType, ok := transactionType(req.Type)
	if !ok {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "type must be expense or income")
	}
	if len(req.Result) == 0 || string(req.Result) == "null" {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "result is required")
	}

	return &req, txType, nil
}

func noteError(c *fiber.Ctx, err error) error {
	if errors.Is(err, categories.ErrInvalidClassification) {
		return Error(c, fiber.StatusBadRequest, err.Error())
	}
	log.Printf("Warning: failed to save note: %v", err)
	return Error(c, fiber.StatusInternalServerError, "failed to save note")
}
