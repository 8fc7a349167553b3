// Package parser turns recognized receipt text into structured bill data.
//
// Everything here is a pure function over its input. Compiled patterns are
// package-level and read-only, so the package is safe for concurrent use.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxAmount is the largest amount accepted from a numeric token. Anything
// above it is almost always a barcode, invoice number or phone number.
const MaxAmount = 100_000_000

// numberPattern matches a grouped amount (45.000, 1,250,000) or a plain digit run.
// The grouped form needs at least one separator group; with zero groups allowed,
// leftmost-first matching would split a plain run such as 50000 into 500 and 00.
var numberPattern = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})+|\d+`)

// NormalizeAmount strips thousands separators from a numeric token and parses it
func NormalizeAmount(token string) (int64, bool) {
	digits := strings.NewReplacer(".", "", ",", "").Replace(strings.TrimSpace(token))
	if digits == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ValidAmount reports whether value is inside the accepted amount range
func ValidAmount(value int64) bool {
	return value > 0 && value <= MaxAmount
}

// numericTokens returns every numeric token on the line with its byte offsets
func numericTokens(line string) [][]int {
	return numberPattern.FindAllStringIndex(line, -1)
}

// firstAmount returns the first numeric token on the line, normalized and range checked
func firstAmount(line string) (int64, bool) {
	loc := numberPattern.FindStringIndex(line)
	if loc == nil {
		return 0, false
	}
	value, ok := NormalizeAmount(line[loc[0]:loc[1]])
	if !ok || !ValidAmount(value) {
		return 0, false
	}
	return value, true
}
