// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/expense-tracker/backend/internal/domain/entity"

// MonthlySummaryEntryResponse is one month of the six-month rollup.
type MonthlySummaryEntryResponse struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// MonthlySummaryResponse represents the monthly summary report, oldest month first.
type MonthlySummaryResponse struct {
	Months []MonthlySummaryEntryResponse `json:"months"`
}

// CategoryTotalResponse is one group of the top spending categories ranking.
type CategoryTotalResponse struct {
	CategoryName string `json:"category_name"`
	Total        string `json:"total"`
}

// TopCategoriesResponse represents the top spending categories report.
type TopCategoriesResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToMonthlySummaryResponse converts monthly summary entries to a response DTO.
func ToMonthlySummaryResponse(months []entity.MonthlySummaryEntry) MonthlySummaryResponse {
	entries := make([]MonthlySummaryEntryResponse, len(months))
	for i, m := range months {
		entries[i] = MonthlySummaryEntryResponse{
			Year:    m.Year,
			Month:   m.Month,
			Income:  m.Income.StringFixed(2),
			Expense: m.Expense.StringFixed(2),
		}
	}
	return MonthlySummaryResponse{
		Months: entries,
	}
}

// ToTopCategoriesResponse converts category totals to a response DTO.
func ToTopCategoriesResponse(totals []entity.CategoryTotal) TopCategoriesResponse {
	categories := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		categories[i] = CategoryTotalResponse{
			CategoryName: t.CategoryName,
			Total:        t.Total.StringFixed(2),
		}
	}
	return TopCategoriesResponse{
		Categories: categories,
	}
}
