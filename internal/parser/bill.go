package parser

import (
	"log"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/foxxcyber/billscan/internal/models"
)

// Parse turns recognized receipt text into bill data. It never fails: input
// with no usable signal yields an empty bill with zero confidence.
func Parse(text string) (bill models.BillData) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: bill extraction failed, returning empty result: %v", r)
			bill = models.NewEmptyBill(text)
		}
	}()

	lines := splitLines(text)
	if len(lines) == 0 {
		return models.NewEmptyBill(text)
	}

	bill = models.NewEmptyBill(text)

	var (
		itemSum       int64
		explicitTotal int64
	)

	for i, line := range lines {
		roles := classifyLine(i, line)

		if roles.storeName != "" {
			bill.StoreName = roles.storeName
		}
		if roles.isAddress && bill.StoreAddress == "" {
			bill.StoreAddress = roles.address
		}
		if roles.isDate && bill.Date == "" {
			bill.Date = roles.date
		}
		if roles.isTime && bill.Time == "" {
			bill.Time = roles.time
		}
		// Later total lines replace earlier ones
		if roles.total > 0 {
			explicitTotal = roles.total
		}
		if roles.tax > 0 {
			bill.Tax = roles.tax
		}

		if roles.metadata() {
			continue
		}

		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		if item, ok := ParseItemLine(line, next); ok {
			bill.Items = append(bill.Items, item)
			itemSum += item.Amount
		}
	}

	bill.TotalAmount = itemSum
	if explicitTotal > 0 {
		bill.TotalAmount = explicitTotal
	}

	bill.Confidence = Score(bill)
	return bill
}

// splitLines normalizes the text and returns its trimmed, non-empty lines
func splitLines(text string) []string {
	text = norm.NFC.String(strings.ReplaceAll(text, "\r\n", "\n"))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
