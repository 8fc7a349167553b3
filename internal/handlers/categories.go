package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/foxxcyber/billscan/internal/models"
)

// CategoryLister reads the stored taxonomy
type CategoryLister interface {
	ListCategories(ctx context.Context, t models.TransactionType) ([]models.CategoryRow, error)
}

// CategoryHandler serves the category taxonomy
type CategoryHandler struct {
	db CategoryLister
}

// NewCategoryHandler creates a category handler; db may be nil
func NewCategoryHandler(db CategoryLister) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// ListCategories returns the taxonomy for ?type=expense|income.
// The built-in taxonomy is served when the table is unavailable or not yet seeded.
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	txType, ok := transactionType(c.Query("type"))
	if !ok {
		return Error(c, fiber.StatusBadRequest, "type must be expense or income")
	}

	if h.db != nil {
		rows, err := h.db.ListCategories(c.UserContext(), txType)
		if err != nil {
			log.Printf("Warning: failed to load categories, using built-in taxonomy: %v", err)
		} else if len(rows) > 0 {
			names := make([]string, len(rows))
			for i, row := range rows {
				names[i] = row.Name
			}
			return Success(c, fiber.Map{"type": txType, "categories": names})
		}
	}

	return Success(c, fiber.Map{"type": txType, "categories": models.CategoriesFor(txType)})
}
