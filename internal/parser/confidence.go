package parser

import (
	"github.com/foxxcyber/billscan/internal/models"
)

// Signal weights in tenths so the sum stays exact
const (
	itemsWeight = 3
	storeWeight = 2
	dateWeight  = 2
	totalWeight = 3
)

// Score returns how much signal was recovered from the bill, in [0, 1]
func Score(bill models.BillData) float64 {
	score := 0
	if len(bill.Items) > 0 {
		score += itemsWeight
	}
	if bill.StoreName != "" {
		score += storeWeight
	}
	if bill.Date != "" {
		score += dateWeight
	}
	if bill.TotalAmount > 0 {
		score += totalWeight
	}

	if score > 10 {
		score = 10
	}
	return float64(score) / 10
}
