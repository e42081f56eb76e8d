// Package report contains the read-only aggregation use cases for reports.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// MonthlySummaryInput represents the input for the monthly summary report.
// ReferenceMonth defaults to the current month when zero.
type MonthlySummaryInput struct {
	UserID         string
	ReferenceMonth time.Time
}

// MonthlySummaryOutput holds one entry per calendar month, oldest first.
type MonthlySummaryOutput struct {
	Months []entity.MonthlySummaryEntry
}

// MonthlySummaryUseCase computes income/expense rollups for the six calendar
// months ending at the reference month inclusive. Each month is two
// independent sum queries; the report does not require a consistent snapshot
// across them.
type MonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute computes the monthly summary. Months with no transactions yield
// zero totals, never an error.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	reference := input.ReferenceMonth
	if reference.IsZero() {
		reference = uc.clock.Now()
	}
	// Walk from the first of the month. AddDate on a day-29..31 date would
	// normalize into the wrong month (e.g. Oct 31 minus one month is Oct 1).
	reference = time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]entity.MonthlySummaryEntry, 0, entity.MonthlySummaryMonths)
	for i := entity.MonthlySummaryMonths - 1; i >= 0; i-- {
		start, end := MonthBounds(reference.AddDate(0, -i, 0))

		income, err := uc.transactionRepo.SumByTypeAndPeriod(ctx, input.UserID, entity.TransactionTypeIncome, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum income for %s: %w", start.Format("2006-01"), err)
		}

		expense, err := uc.transactionRepo.SumByTypeAndPeriod(ctx, input.UserID, entity.TransactionTypeExpense, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to sum expenses for %s: %w", start.Format("2006-01"), err)
		}

		months = append(months, entity.MonthlySummaryEntry{
			Year:    start.Year(),
			Month:   int(start.Month()),
			Income:  income,
			Expense: expense,
		})
	}

	return &MonthlySummaryOutput{
		Months: months,
	}, nil
}

// MonthBounds returns the inclusive [first day, last day] window of the
// calendar month containing the given date.
func MonthBounds(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
