package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// datePattern pairs a regexp with the submatch positions of day, month and year
type datePattern struct {
	re               *regexp.Regexp
	day, month, year int
}

// Tried in order; the first pattern that yields a valid calendar date wins.
var datePatterns = []datePattern{
	{re: regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`), day: 1, month: 2, year: 3},
	{re: regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`), day: 1, month: 2, year: 3},
	{re: regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`), day: 3, month: 2, year: 1},
	{re: regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`), day: 3, month: 2, year: 1},
}

var timePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})(?::(\d{2}))?`)

// ExtractDate finds a date on the line and returns it as YYYY-MM-DD
func ExtractDate(line string) (string, bool) {
	for _, p := range datePatterns {
		matches := p.re.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		day, _ := strconv.Atoi(matches[p.day])
		month, _ := strconv.Atoi(matches[p.month])
		year, _ := strconv.Atoi(matches[p.year])

		// Validate date
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}

		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}
	return "", false
}

// ExtractTime finds a clock time on the line and returns it as HH:MM or HH:MM:SS
func ExtractTime(line string) (string, bool) {
	for _, matches := range timePattern.FindAllStringSubmatch(line, -1) {
		hour, _ := strconv.Atoi(matches[1])
		minute, _ := strconv.Atoi(matches[2])
		if hour > 23 || minute > 59 {
			continue
		}

		if matches[3] == "" {
			return fmt.Sprintf("%02d:%02d", hour, minute), true
		}

		second, _ := strconv.Atoi(matches[3])
		if second > 59 {
			continue
		}
		return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second), true
	}
	return "", false
}
