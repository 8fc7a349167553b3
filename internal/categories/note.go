package categories

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/foxxcyber/billscan/internal/models"
)

// ErrInvalidClassification is returned when a generative result does not match the expected shape
var ErrInvalidClassification = errors.New("invalid note classification")

// noteSchema describes the JSON object the generative path returns for a note
var noteSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"totalAmount": map[string]any{"type": "number", "minimum": 0},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"item":   map[string]any{"type": "string"},
					"amount": map[string]any{"type": "number"},
				},
				"required": []string{"item", "amount"},
			},
		},
		"category":    map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"confidence":  map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
	},
	"required": []string{"category"},
}

var compiledNoteSchema = mustCompileSchema("note.json", noteSchema)

func mustCompileSchema(name string, schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}
	return compiler.MustCompile(name)
}

// DecodeClassification validates and decodes a generative classification result
func DecodeClassification(data []byte) (models.NoteClassification, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return models.NoteClassification{}, fmt.Errorf("%w: %v", ErrInvalidClassification, err)
	}
	if err := compiledNoteSchema.Validate(v); err != nil {
		return models.NoteClassification{}, fmt.Errorf("%w: %v", ErrInvalidClassification, err)
	}

	var c models.NoteClassification
	if err := json.Unmarshal(data, &c); err != nil {
		return models.NoteClassification{}, fmt.Errorf("%w: %v", ErrInvalidClassification, err)
	}
	return c, nil
}

// MapNote resolves the category of a classification. Every other field passes through.
func MapNote(c models.NoteClassification, t models.TransactionType) models.NoteData {
	items := c.Items
	if items == nil {
		items = []models.NoteLineItem{}
	}

	return models.NoteData{
		Type:        t,
		TotalAmount: c.TotalAmount,
		Items:       items,
		Category:    Map(c.Category, t),
		RawCategory: c.Category,
		Description: c.Description,
		Confidence:  c.Confidence,
	}
}

// IsFallback reports whether category is one of the unmapped defaults
func IsFallback(category string) bool {
	return category == models.CategoryIncomeFallback || category == models.CategoryExpenseFallback
}
