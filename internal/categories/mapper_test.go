package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foxxcyber/billscan/internal/models"
	"github.com/foxxcyber/billscan/internal/parser"
)

func TestMap(t *testing.T) {
	tests := []struct {
		raw      string
		txType   models.TransactionType
		expected string
	}{
		{"Ăn uống", models.TransactionExpense, models.CategoryFood},
		{"🍔 Ăn uống", models.TransactionExpense, models.CategoryFood},
		{"ăn uống", models.TransactionExpense, models.CategoryFood},
		{"Giao thông", models.TransactionExpense, models.CategoryTransport},
		{"Vận chuyển 🚚", models.TransactionExpense, models.CategoryTransport},
		{"Y tế", models.TransactionExpense, models.CategoryHealth},
		{"Nhà ở", models.TransactionExpense, models.CategoryHousing},
		{"Tiện ích", models.TransactionExpense, models.CategoryHousing},
		{"SHOPPING", models.TransactionExpense, models.CategoryShopping},
		{"Lương", models.TransactionIncome, models.CategorySalary},
		{"💰 Thưởng", models.TransactionIncome, models.CategoryBonus},
		{"Khác", models.TransactionIncome, models.CategoryOther},
		{"Something odd", models.TransactionExpense, models.CategoryExpenseFallback},
		{"Something odd", models.TransactionIncome, models.CategoryIncomeFallback},
		{"", models.TransactionExpense, models.CategoryExpenseFallback},
		{"🎉✨", models.TransactionIncome, models.CategoryIncomeFallback},
	}

	crossType := []struct {
		raw      string
		txType   models.TransactionType
		expected string
	}{
		{"Lương", models.TransactionExpense, models.CategoryExpenseFallback},
		{"Salary", models.TransactionExpense, models.CategoryExpenseFallback},
		{"Ăn uống", models.TransactionIncome, models.CategoryIncomeFallback},
		{"Tiện ích", models.TransactionIncome, models.CategoryIncomeFallback},
		{"Thu nhập", models.TransactionExpense, models.CategoryExpenseFallback},
		{"Ghi chú", models.TransactionIncome, models.CategoryIncomeFallback},
		{"Khác", models.TransactionExpense, models.CategoryOther},
	}
	tests = append(tests, crossType...)

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Map(tc.raw, tc.txType), "Map(%q, %s)", tc.raw, tc.txType)
	}
}

func TestMap_Idempotent(t *testing.T) {
	for _, txType := range []models.TransactionType{models.TransactionExpense, models.TransactionIncome} {
		for _, category := range models.CategoriesFor(txType) {
			assert.Equal(t, category, Map(category, txType), "Map(%q)", category)
		}
		fallback := Fallback(txType)
		assert.Equal(t, fallback, Map(fallback, txType))
	}

	once := Map("Vận chuyển", models.TransactionExpense)
	assert.Equal(t, once, Map(once, models.TransactionExpense))
}

func TestLookup(t *testing.T) {
	category, ok := Lookup("📈 đầu tư", models.TransactionIncome)
	assert.True(t, ok)
	assert.Equal(t, models.CategoryInvestment, category)

	_, ok = Lookup("Đầu tư", models.TransactionExpense)
	assert.False(t, ok)

	_, ok = Lookup("  ", models.TransactionIncome)
	assert.False(t, ok)
}

func TestStripDecorations(t *testing.T) {
	assert.Equal(t, "Mua sắm", StripDecorations(models.CategoryShopping))
	assert.Equal(t, "Thu nhập", StripDecorations(models.CategoryIncomeFallback))
	assert.Equal(t, "Ăn uống", StripDecorations("  **Ăn   uống** 🍜 "))
	assert.Equal(t, "", StripDecorations("👨‍👩‍👧"))
}

func TestMapEngineCategory(t *testing.T) {
	tests := map[string]string{
		parser.LabelFood:          models.CategoryFood,
		parser.LabelTransport:     models.CategoryTransport,
		parser.LabelHealth:        models.CategoryHealth,
		parser.LabelShopping:      models.CategoryShopping,
		parser.LabelUtilities:     models.CategoryHousing,
		parser.LabelTravel:        models.CategoryEntertainment,
		parser.LabelEntertainment: models.CategoryEntertainment,
		parser.LabelOther:         models.CategoryOther,
		"unknown":                 models.CategoryOther,
	}

	for label, expected := range tests {
		assert.Equal(t, expected, MapEngineCategory(label), "MapEngineCategory(%q)", label)
	}
}
