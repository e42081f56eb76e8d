package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/report"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type dashboardRepoStub struct {
	adapter.TransactionRepository

	sums map[string]decimal.Decimal
	rows []adapter.CategoryAmountRow
}

func (r *dashboardRepoStub) SumByTypeAndPeriod(_ context.Context, _ string, transactionType entity.TransactionType, start, _ time.Time) (decimal.Decimal, error) {
	key := fmt.Sprintf("%s:%s", transactionType, start.Format("2006-01"))
	if total, ok := r.sums[key]; ok {
		return total, nil
	}
	return decimal.Zero, nil
}

func (r *dashboardRepoStub) ListExpenseAmountsByCategory(_ context.Context, _ string) ([]adapter.CategoryAmountRow, error) {
	return r.rows, nil
}

func TestGetSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2025, time.March, 20, 9, 0, 0, 0, time.UTC)}

	foodName := "Food"
	repo := &dashboardRepoStub{
		sums: map[string]decimal.Decimal{
			"income:2025-03":  decimal.RequireFromString("2500.00"),
			"expense:2025-03": decimal.RequireFromString("900.50"),
		},
		rows: []adapter.CategoryAmountRow{
			{CategoryName: &foodName, Amount: decimal.RequireFromString("900.50")},
		},
	}

	uc := NewGetSummaryUseCase(
		repo,
		report.NewMonthlySummaryUseCase(repo, clock),
		report.NewTopCategoriesUseCase(repo),
		clock,
	)

	output, err := uc.Execute(ctx, GetSummaryInput{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalIncome.Equal(decimal.RequireFromString("2500.00")) {
		t.Errorf("expected income 2500.00, got %s", output.TotalIncome)
	}
	if !output.TotalExpense.Equal(decimal.RequireFromString("900.50")) {
		t.Errorf("expected expense 900.50, got %s", output.TotalExpense)
	}
	if !output.Balance.Equal(decimal.RequireFromString("1599.50")) {
		t.Errorf("expected balance 1599.50, got %s", output.Balance)
	}

	if len(output.MonthlySummary) != entity.MonthlySummaryMonths {
		t.Errorf("expected %d summary months, got %d", entity.MonthlySummaryMonths, len(output.MonthlySummary))
	}
	if len(output.TopCategories) != 1 || output.TopCategories[0].CategoryName != "Food" {
		t.Errorf("unexpected top categories: %+v", output.TopCategories)
	}
}

func TestGetSummaryUseCaseMonthEndClock(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2025, time.October, 31, 18, 0, 0, 0, time.UTC)}

	repo := &dashboardRepoStub{
		sums: map[string]decimal.Decimal{
			"income:2025-10":  decimal.RequireFromString("300.00"),
			"expense:2025-10": decimal.RequireFromString("120.00"),
		},
	}

	uc := NewGetSummaryUseCase(
		repo,
		report.NewMonthlySummaryUseCase(repo, clock),
		report.NewTopCategoriesUseCase(repo),
		clock,
	)

	output, err := uc.Execute(ctx, GetSummaryInput{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Balance.Equal(decimal.RequireFromString("180.00")) {
		t.Errorf("expected balance 180.00, got %s", output.Balance)
	}

	want := []int{5, 6, 7, 8, 9, 10}
	for i, month := range output.MonthlySummary {
		if month.Year != 2025 || month.Month != want[i] {
			t.Errorf("position %d: expected 2025-%02d, got %d-%02d", i, want[i], month.Year, month.Month)
		}
	}
}

func TestGetSummaryUseCaseNegativeBalance(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2025, time.March, 20, 9, 0, 0, 0, time.UTC)}

	repo := &dashboardRepoStub{
		sums: map[string]decimal.Decimal{
			"income:2025-03":  decimal.RequireFromString("100.00"),
			"expense:2025-03": decimal.RequireFromString("250.00"),
		},
	}

	uc := NewGetSummaryUseCase(
		repo,
		report.NewMonthlySummaryUseCase(repo, clock),
		report.NewTopCategoriesUseCase(repo),
		clock,
	)

	output, err := uc.Execute(ctx, GetSummaryInput{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Balance.Equal(decimal.RequireFromString("-150.00")) {
		t.Errorf("expected balance -150.00, got %s", output.Balance)
	}
}
