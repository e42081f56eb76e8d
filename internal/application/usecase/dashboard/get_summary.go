// Package dashboard contains the dashboard summary use case.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/report"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID string
}

// GetSummaryOutput holds the current-month totals, the six-month rollup and
// the top spending categories.
type GetSummaryOutput struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Balance        decimal.Decimal
	MonthlySummary []entity.MonthlySummaryEntry
	TopCategories  []entity.CategoryTotal
}

// GetSummaryUseCase assembles the dashboard view data. All queries are
// read-only and independent; a write racing with the dashboard read may be
// observed by some sub-queries and not others.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	monthlySummary  *report.MonthlySummaryUseCase
	topCategories   *report.TopCategoriesUseCase
	clock           adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	monthlySummary *report.MonthlySummaryUseCase,
	topCategories *report.TopCategoriesUseCase,
	clock adapter.Clock,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		monthlySummary:  monthlySummary,
		topCategories:   topCategories,
		clock:           clock,
	}
}

// Execute computes the dashboard summary for the current calendar month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := uc.clock.Now()
	start, end := report.MonthBounds(now)

	totalIncome, err := uc.transactionRepo.SumByTypeAndPeriod(ctx, input.UserID, entity.TransactionTypeIncome, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum current month income: %w", err)
	}

	totalExpense, err := uc.transactionRepo.SumByTypeAndPeriod(ctx, input.UserID, entity.TransactionTypeExpense, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum current month expenses: %w", err)
	}

	monthly, err := uc.monthlySummary.Execute(ctx, report.MonthlySummaryInput{
		UserID:         input.UserID,
		ReferenceMonth: now,
	})
	if err != nil {
		return nil, err
	}

	top, err := uc.topCategories.Execute(ctx, report.TopCategoriesInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		TotalIncome:    totalIncome,
		TotalExpense:   totalExpense,
		Balance:        totalIncome.Sub(totalExpense),
		MonthlySummary: monthly.Months,
		TopCategories:  top.Categories,
	}, nil
}
