// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/expense-tracker/backend/internal/application/usecase/dashboard"

// DashboardResponse represents the dashboard summary: current-month totals,
// the six-month rollup and the top spending categories.
type DashboardResponse struct {
	TotalIncome    string                        `json:"total_income"`
	TotalExpense   string                        `json:"total_expense"`
	Balance        string                        `json:"balance"`
	MonthlySummary []MonthlySummaryEntryResponse `json:"monthly_summary"`
	TopCategories  []CategoryTotalResponse       `json:"top_categories"`
}

// ToDashboardResponse converts the dashboard summary output to a response DTO.
func ToDashboardResponse(output *dashboard.GetSummaryOutput) DashboardResponse {
	return DashboardResponse{
		TotalIncome:    output.TotalIncome.StringFixed(2),
		TotalExpense:   output.TotalExpense.StringFixed(2),
		Balance:        output.Balance.StringFixed(2),
		MonthlySummary: ToMonthlySummaryResponse(output.MonthlySummary).Months,
		TopCategories:  ToTopCategoriesResponse(output.TopCategories).Categories,
	}
}
