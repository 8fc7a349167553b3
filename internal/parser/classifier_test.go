package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"ăn sáng", LabelFood},
		{"ĂN SÁNG", LabelFood},
		{"Cơm tấm", LabelFood},
		{"Cà phê sữa đá", LabelFood},
		{"Đổ xăng A95", LabelTransport},
		{"Grab về nhà", LabelTransport},
		{"Nhà thuốc Long Châu", LabelHealth},
		{"Áo sơ mi", LabelShopping},
		{"Tiền điện tháng 5", LabelUtilities},
		{"Khách sạn Đà Lạt", LabelTravel},
		{"Vé xem phim CGV", LabelTravel},
		{"Mua sách", LabelEntertainment},
		{"Văn phòng phẩm", LabelOther},
		{"Khăn giấy", LabelOther},
		{"", LabelOther},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Classify(tc.description), "Classify(%q)", tc.description)
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// Matches both food and transport keywords; food is listed first
	assert.Equal(t, LabelFood, Classify("cơm trên xe"))
	// Matches transport and utilities; transport is listed first
	assert.Equal(t, LabelTransport, Classify("thanh toán taxi"))
}

func TestClassify_DecomposedInput(t *testing.T) {
	// "ăn sáng" written with combining marks
	decomposed := "a\u0306n sa\u0301ng"
	assert.Equal(t, LabelFood, Classify(decomposed))
}
