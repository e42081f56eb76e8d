// Package report contains the read-only aggregation use cases for reports.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TopCategoriesInput represents the input for the top spending categories ranking.
type TopCategoriesInput struct {
	UserID string
}

// TopCategoriesOutput holds the top expense category groups, largest first.
type TopCategoriesOutput struct {
	Categories []entity.CategoryTotal
}

// TopCategoriesUseCase ranks the user's expense transactions by category.
// Transactions whose category reference no longer resolves are grouped under
// the "Unknown" label rather than excluded.
type TopCategoriesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewTopCategoriesUseCase creates a new TopCategoriesUseCase instance.
func NewTopCategoriesUseCase(transactionRepo adapter.TransactionRepository) *TopCategoriesUseCase {
	return &TopCategoriesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute groups all expense transactions by category name, sums the amounts
// and returns the five largest groups. Ties are broken by category name
// ascending so the ranking is reproducible.
func (uc *TopCategoriesUseCase) Execute(ctx context.Context, input TopCategoriesInput) (*TopCategoriesOutput, error) {
	rows, err := uc.transactionRepo.ListExpenseAmountsByCategory(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense amounts: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		name := entity.UnknownCategoryLabel
		if row.CategoryName != nil {
			name = *row.CategoryName
		}
		totals[name] = totals[name].Add(row.Amount)
	}

	groups := make([]entity.CategoryTotal, 0, len(totals))
	for name, total := range totals {
		groups = append(groups, entity.CategoryTotal{
			CategoryName: name,
			Total:        total,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].Total.Equal(groups[j].Total) {
			return groups[i].Total.GreaterThan(groups[j].Total)
		}
		return groups[i].CategoryName < groups[j].CategoryName
	})

	if len(groups) > entity.TopCategoriesLimit {
		groups = groups[:entity.TopCategoriesLimit]
	}

	return &TopCategoriesOutput{
		Categories: groups,
	}, nil
}
