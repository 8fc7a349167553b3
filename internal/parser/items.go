package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/foxxcyber/billscan/internal/models"
)

const (
	minItemLineLength = 5
	defaultItemName   = "Item"
)

var (
	// Column headers and summary rows that carry numbers but are not items
	headerPattern   = regexp.MustCompile(`(?i)(ITEM|PRODUCT|DESCRIPTION|TOTAL|TỔNG|QTY|PRICE)`)
	ordinalPattern  = regexp.MustCompile(`^\s*\d+\.\s+`)
	quantityPattern = regexp.MustCompile(`(?i)(\d+)\s*x\s*(\d[\d.,]*)`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// ParseItemLine extracts an item from a receipt line.
// next is the following line; it is accepted for continuation lines but not used yet.
func ParseItemLine(line, next string) (models.BillItem, bool) {
	if utf8.RuneCountInString(line) < minItemLineLength {
		return models.BillItem{}, false
	}
	if !strings.ContainsFunc(line, unicode.IsDigit) {
		return models.BillItem{}, false
	}
	if headerPattern.MatchString(line) {
		return models.BillItem{}, false
	}

	// "1. Cơm tấm ..." ordinals would otherwise be taken as the first number
	body := line
	if loc := ordinalPattern.FindStringIndex(body); loc != nil {
		body = body[loc[1]:]
	}

	tokens := numericTokens(body)
	if len(tokens) == 0 {
		return models.BillItem{}, false
	}

	// Item lines end with the extended price
	last := tokens[len(tokens)-1]
	amount, ok := NormalizeAmount(body[last[0]:last[1]])
	if !ok || !ValidAmount(amount) {
		return models.BillItem{}, false
	}

	name := cleanItemName(body[:tokens[0][0]])
	item := models.BillItem{
		Name:     name,
		Amount:   amount,
		Category: Classify(name),
	}

	if matches := quantityPattern.FindStringSubmatch(body); matches != nil {
		qty, qtyErr := strconv.Atoi(matches[1])
		unitPrice, unitOK := NormalizeAmount(matches[2])
		if qtyErr == nil && unitOK {
			item.Quantity = &qty
			item.UnitPrice = &unitPrice
		}
	}

	return item, true
}

// cleanItemName cleans up an item name
func cleanItemName(name string) string {
	name = ordinalPattern.ReplaceAllString(name, "")
	name = spacePattern.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultItemName
	}
	return name
}
