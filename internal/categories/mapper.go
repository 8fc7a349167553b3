// Package categories resolves loosely written category labels to the app taxonomy.
package categories

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/foxxcyber/billscan/internal/models"
)

// expenseAliases and incomeAliases map undecorated labels to canonical
// categories. A label only resolves against the table of its transaction type;
// keys are matched exactly first and then case-insensitively.
var expenseAliases = map[string]string{
	// Vietnamese
	"Ăn uống":    models.CategoryFood,
	"Đồ ăn":      models.CategoryFood,
	"Giao thông": models.CategoryTransport,
	"Vận chuyển": models.CategoryTransport,
	"Đi lại":     models.CategoryTransport,
	"Mua sắm":    models.CategoryShopping,
	"Giải trí":   models.CategoryEntertainment,
	"Du lịch":    models.CategoryEntertainment,
	"Sức khỏe":   models.CategoryHealth,
	"Sức khoẻ":   models.CategoryHealth,
	"Y tế":       models.CategoryHealth,
	"Giáo dục":   models.CategoryEducation,
	"Học tập":    models.CategoryEducation,
	"Nhà cửa":    models.CategoryHousing,
	"Nhà ở":      models.CategoryHousing,
	"Tiện ích":   models.CategoryHousing,
	"Hóa đơn":    models.CategoryHousing,
	"Hoá đơn":    models.CategoryHousing,
	"Khác":       models.CategoryOther,

	// English
	"Food":           models.CategoryFood,
	"Food & Drink":   models.CategoryFood,
	"Transport":      models.CategoryTransport,
	"Transportation": models.CategoryTransport,
	"Shopping":       models.CategoryShopping,
	"Entertainment":  models.CategoryEntertainment,
	"Travel":         models.CategoryEntertainment,
	"Health":         models.CategoryHealth,
	"Healthcare":     models.CategoryHealth,
	"Education":      models.CategoryEducation,
	"Housing":        models.CategoryHousing,
	"Utilities":      models.CategoryHousing,
	"Other":          models.CategoryOther,

	"Ghi chú": models.CategoryExpenseFallback,
}

var incomeAliases = map[string]string{
	"Lương":      models.CategorySalary,
	"Salary":     models.CategorySalary,
	"Thưởng":     models.CategoryBonus,
	"Bonus":      models.CategoryBonus,
	"Đầu tư":     models.CategoryInvestment,
	"Investment": models.CategoryInvestment,
	"Khác":       models.CategoryOther,
	"Other":      models.CategoryOther,

	"Thu nhập": models.CategoryIncomeFallback,
}

var (
	foldedExpenseAliases = foldKeys(expenseAliases)
	foldedIncomeAliases  = foldKeys(incomeAliases)
)

// foldKeys returns aliases keyed by lower-cased label
func foldKeys(aliases map[string]string) map[string]string {
	folded := make(map[string]string, len(aliases))
	for k, v := range aliases {
		folded[strings.ToLower(k)] = v
	}
	return folded
}

// Map resolves a raw category label to a canonical category for the given
// transaction type. Unknown, empty or other-type labels fall back to the type's default.
func Map(raw string, t models.TransactionType) string {
	if category, ok := Lookup(raw, t); ok {
		return category
	}
	return Fallback(t)
}

// Lookup resolves a label against the taxonomy of t without falling back
func Lookup(raw string, t models.TransactionType) (string, bool) {
	label := StripDecorations(raw)
	if label == "" {
		return "", false
	}

	aliases, folded := expenseAliases, foldedExpenseAliases
	if t == models.TransactionIncome {
		aliases, folded = incomeAliases, foldedIncomeAliases
	}

	if category, ok := aliases[label]; ok {
		return category, true
	}
	category, ok := folded[strings.ToLower(label)]
	return category, ok
}

// Fallback returns the default category for a transaction type
func Fallback(t models.TransactionType) string {
	if t == models.TransactionIncome {
		return models.CategoryIncomeFallback
	}
	return models.CategoryExpenseFallback
}

// MapEngineCategory folds a receipt classifier label into the expense taxonomy
func MapEngineCategory(label string) string {
	if category, ok := Lookup(label, models.TransactionExpense); ok {
		return category
	}
	return models.CategoryOther
}

// StripDecorations removes emoji, pictographs and other decorative symbols and
// collapses the remaining whitespace.
func StripDecorations(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\u200d' || r == '\u20e3':
			return -1
		case unicode.Is(unicode.Variation_Selector, r):
			return -1
		case unicode.In(r, unicode.So, unicode.Sk, unicode.Co, unicode.Cs, unicode.Cf):
			return -1
		}
		return r
	}, norm.NFC.String(raw))

	cleaned = strings.Trim(cleaned, " \t\r\n-–—:|*•·")
	return strings.Join(strings.Fields(cleaned), " ")
}
