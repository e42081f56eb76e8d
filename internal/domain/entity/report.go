package entity

import "github.com/shopspring/decimal"

const (
	// MonthlySummaryMonths is the number of calendar months covered by the
	// monthly summary report, the reference month included.
	MonthlySummaryMonths = 6

	// TopCategoriesLimit is the number of groups returned by the top spending
	// categories ranking.
	TopCategoriesLimit = 5

	// UnknownCategoryLabel groups expense transactions whose category
	// reference no longer resolves.
	UnknownCategoryLabel = "Unknown"
)

// MonthlySummaryEntry is the income/expense rollup of one calendar month.
type MonthlySummaryEntry struct {
	Year    int
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal is one group of the top spending categories ranking.
type CategoryTotal struct {
	CategoryName string
	Total        decimal.Decimal
}
