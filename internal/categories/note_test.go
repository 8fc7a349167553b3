package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxxcyber/billscan/internal/models"
)

func TestDecodeClassification(t *testing.T) {
	raw := []byte(`{
		"totalAmount": 65000,
		"items": [{"item": "Phở bò", "amount": 50000}, {"item": "Trà đá", "amount": 15000}],
		"category": "🍜 Ăn uống",
		"description": "Ăn trưa với đồng nghiệp",
		"confidence": "high"
	}`)

	c, err := DecodeClassification(raw)
	require.NoError(t, err)
	assert.Equal(t, 65000.0, c.TotalAmount)
	assert.Len(t, c.Items, 2)
	assert.Equal(t, "🍜 Ăn uống", c.Category)
	assert.Equal(t, "high", c.Confidence)
}

func TestDecodeClassification_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed":         `{"category": `,
		"missing category":  `{"totalAmount": 1000}`,
		"wrong amount type": `{"category": "Khác", "totalAmount": "lots"}`,
		"bad confidence":    `{"category": "Khác", "confidence": "certain"}`,
		"item without name": `{"category": "Khác", "items": [{"amount": 1}]}`,
	}

	for name, raw := range tests {
		_, err := DecodeClassification([]byte(raw))
		assert.ErrorIs(t, err, ErrInvalidClassification, name)
	}
}

func TestMapNote(t *testing.T) {
	c := models.NoteClassification{
		TotalAmount: 15000000,
		Category:    "Lương",
		Description: "Lương tháng 5",
		Confidence:  "medium",
	}

	note := MapNote(c, models.TransactionIncome)
	assert.Equal(t, models.CategorySalary, note.Category)
	assert.Equal(t, "Lương", note.RawCategory)
	assert.Equal(t, models.TransactionIncome, note.Type)
	assert.Equal(t, 15000000.0, note.TotalAmount)
	assert.Equal(t, "Lương tháng 5", note.Description)
	assert.NotNil(t, note.Items)

	note = MapNote(models.NoteClassification{Category: "???"}, models.TransactionExpense)
	assert.Equal(t, models.CategoryExpenseFallback, note.Category)
	assert.True(t, IsFallback(note.Category))
}
