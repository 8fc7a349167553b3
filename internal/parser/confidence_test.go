package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foxxcyber/billscan/internal/models"
)

func TestScore(t *testing.T) {
	item := []models.BillItem{{Name: "Cơm", Amount: 30000}}

	tests := []struct {
		name     string
		bill     models.BillData
		expected float64
	}{
		{"empty", models.BillData{}, 0},
		{"items only", models.BillData{Items: item}, 0.3},
		{"store only", models.BillData{StoreName: "Circle K"}, 0.2},
		{"date only", models.BillData{Date: "2024-05-12"}, 0.2},
		{"total only", models.BillData{TotalAmount: 30000}, 0.3},
		{"items and total", models.BillData{Items: item, TotalAmount: 30000}, 0.6},
		{"everything", models.BillData{Items: item, StoreName: "Circle K", Date: "2024-05-12", TotalAmount: 30000}, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Score(tc.bill), 1e-9)
		})
	}
}
