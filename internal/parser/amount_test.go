package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		ok       bool
	}{
		{"45.000", 45000, true},
		{"45,000", 45000, true},
		{"1.250.000", 1250000, true},
		{"1,250,000", 1250000, true},
		{"45000", 45000, true},
		{" 12 ", 12, true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tc := range tests {
		got, ok := NormalizeAmount(tc.input)
		assert.Equal(t, tc.ok, ok, "NormalizeAmount(%q) ok", tc.input)
		assert.Equal(t, tc.expected, got, "NormalizeAmount(%q)", tc.input)
	}
}

func TestValidAmount(t *testing.T) {
	assert.False(t, ValidAmount(0))
	assert.False(t, ValidAmount(-5))
	assert.True(t, ValidAmount(1))
	assert.True(t, ValidAmount(MaxAmount))
	assert.False(t, ValidAmount(MaxAmount+1))
}

func TestNumericTokens(t *testing.T) {
	line := "Cơm tấm 1 x 45.000 45000"
	var got []string
	for _, loc := range numericTokens(line) {
		got = append(got, line[loc[0]:loc[1]])
	}
	assert.Equal(t, []string{"1", "45.000", "45000"}, got)
}

func TestNumericTokens_PlainRunStaysWhole(t *testing.T) {
	tests := map[string]string{
		"Phở 50000":  "50000",
		"Mã 1234567": "1234567",
	}

	for line, want := range tests {
		var got []string
		for _, loc := range numericTokens(line) {
			got = append(got, line[loc[0]:loc[1]])
		}
		assert.Equal(t, []string{want}, got, line)
	}
}

func TestFirstAmount(t *testing.T) {
	got, ok := firstAmount("TOTAL 150.000 VND")
	assert.True(t, ok)
	assert.Equal(t, int64(150000), got)

	_, ok = firstAmount("TOTAL 0")
	assert.False(t, ok)

	_, ok = firstAmount("TOTAL 999.999.999")
	assert.False(t, ok)

	_, ok = firstAmount("TOTAL")
	assert.False(t, ok)
}
