package models

// TransactionType distinguishes spending from income
type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

// Canonical expense categories
const (
	CategoryFood          = "Ăn uống 🍔"
	CategoryTransport     = "Giao thông 🚗"
	CategoryShopping      = "Mua sắm 🛍️"
	CategoryEntertainment = "Giải trí 🎮"
	CategoryHealth        = "Sức khỏe 💊"
	CategoryEducation     = "Giáo dục 📚"
	CategoryHousing       = "Nhà cửa 🏠"
	CategoryOther         = "Khác 📦"
)

// Canonical income categories
const (
	CategorySalary     = "Lương 💼"
	CategoryBonus      = "Thưởng 🎁"
	CategoryInvestment = "Đầu tư 📈"
)

// Fallbacks used when a label cannot be mapped
const (
	CategoryIncomeFallback  = "💰 Thu nhập"
	CategoryExpenseFallback = "📝 Ghi chú"
)

// ExpenseCategories lists the canonical expense taxonomy in display order
var ExpenseCategories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealth,
	CategoryEducation,
	CategoryHousing,
	CategoryOther,
}

// IncomeCategories lists the canonical income taxonomy in display order
var IncomeCategories = []string{
	CategorySalary,
	CategoryBonus,
	CategoryInvestment,
	CategoryOther,
}

// CategoriesFor returns the taxonomy for a transaction type
func CategoriesFor(t TransactionType) []string {
	if t == TransactionIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// CategoryRow is a persisted taxonomy entry
type CategoryRow struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Type      TransactionType `json:"type"`
	SortOrder int             `json:"sort_order"`
}
