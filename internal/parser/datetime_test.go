package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		line     string
		expected string
		ok       bool
	}{
		{"12/05/2024", "2024-05-12", true},
		{"12-05-2024", "2024-05-12", true},
		{"2024/05/12", "2024-05-12", true},
		{"2024-05-12", "2024-05-12", true},
		{"Ngày: 1/5/2024 14:30", "2024-05-01", true},
		{"2024-5-1", "2024-05-01", true},
		{"31/13/2024", "", false},
		{"no date here", "", false},
	}

	for _, tc := range tests {
		got, ok := ExtractDate(tc.line)
		assert.Equal(t, tc.ok, ok, "ExtractDate(%q) ok", tc.line)
		assert.Equal(t, tc.expected, got, "ExtractDate(%q)", tc.line)
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		line     string
		expected string
		ok       bool
	}{
		{"14:30", "14:30", true},
		{"Giờ: 9:05", "09:05", true},
		{"12/05/2024 08:15:42", "08:15:42", true},
		{"99:99 then 10:20", "10:20", true},
		{"1430", "", false},
	}

	for _, tc := range tests {
		got, ok := ExtractTime(tc.line)
		assert.Equal(t, tc.ok, ok, "ExtractTime(%q) ok", tc.line)
		assert.Equal(t, tc.expected, got, "ExtractTime(%q)", tc.line)
	}
}
