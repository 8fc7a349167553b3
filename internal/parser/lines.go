package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minStoreNameLength = 10
	maxStoreNameLength = 50
)

var (
	storePrefixPattern = regexp.MustCompile(`(?i)^(?:STORE|SHOP|RECEIPT|HÓA ĐƠN|HOÁ ĐƠN)\s*[:#\-]?\s*`)
	addressPattern     = wordPattern("địa chỉ", "đ/c", "address", "addr", "street", "phường", "quận", "huyện", "district", "ward", "tỉnh", "province", "thành phố", "city", "tp")
	totalPattern       = regexp.MustCompile(`(?i)^\s*(?:TOTAL|TỔNG|THANH TOÁN)`)
	taxPattern         = wordPattern("vat", "tax", "thuế")
)

// lineRoles records which metadata roles a single line plays. A line can play
// several at once; each role is applied to the bill independently.
type lineRoles struct {
	storeName string
	address   string
	date      string
	time      string
	total     int64
	tax       int64

	isAddress bool
	isDate    bool
	isTime    bool
	isTotal   bool
	isTax     bool
}

// metadata reports whether the line carries receipt metadata rather than an item
func (r lineRoles) metadata() bool {
	return r.isAddress || r.isDate || r.isTime || r.isTotal || r.isTax
}

// classifyLine inspects one line at position index
func classifyLine(index int, line string) lineRoles {
	var roles lineRoles

	if index == 0 {
		roles.storeName = extractStoreName(line)
	}

	if addressPattern.MatchString(line) {
		roles.isAddress = true
		roles.address = line
	}

	if date, ok := ExtractDate(line); ok {
		roles.isDate = true
		roles.date = date
	}

	if t, ok := ExtractTime(line); ok {
		roles.isTime = true
		roles.time = t
	}

	if totalPattern.MatchString(line) {
		roles.isTotal = true
		if total, ok := firstAmount(line); ok {
			roles.total = total
		}
	}

	if taxPattern.MatchString(line) {
		roles.isTax = true
		if tax, ok := firstAmount(line); ok {
			roles.tax = tax
		}
	}

	return roles
}

// extractStoreName returns the cleaned store name from the first line, or ""
func extractStoreName(line string) string {
	if utf8.RuneCountInString(line) <= minStoreNameLength {
		return ""
	}

	name := strings.TrimSpace(storePrefixPattern.ReplaceAllString(line, ""))
	if utf8.RuneCountInString(name) > maxStoreNameLength {
		name = strings.TrimSpace(string([]rune(name)[:maxStoreNameLength]))
	}
	return name
}
