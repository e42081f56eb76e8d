package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// fixedClock returns a constant time.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// reportRepoStub implements the TransactionRepository methods the reporting
// use cases touch; everything else panics.
type reportRepoStub struct {
	adapter.TransactionRepository

	// sums maps "type:2006-01" to a total.
	sums map[string]decimal.Decimal
	rows []adapter.CategoryAmountRow

	sumCalls []string
}

func (r *reportRepoStub) SumByTypeAndPeriod(_ context.Context, _ string, transactionType entity.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	key := fmt.Sprintf("%s:%s", transactionType, start.Format("2006-01"))
	r.sumCalls = append(r.sumCalls, fmt.Sprintf("%s..%s", start.Format("2006-01-02"), end.Format("2006-01-02")))
	if total, ok := r.sums[key]; ok {
		return total, nil
	}
	return decimal.Zero, nil
}

func (r *reportRepoStub) ListExpenseAmountsByCategory(_ context.Context, _ string) ([]adapter.CategoryAmountRow, error) {
	return r.rows, nil
}

func money(raw string) decimal.Decimal { return decimal.RequireFromString(raw) }

func strptr(s string) *string { return &s }

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		date      time.Time
		wantStart string
		wantEnd   string
	}{
		{time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC), "2025-03-01", "2025-03-31"},
		{time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), "2025-02-01", "2025-02-28"},
		{time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		{time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), "2025-12-01", "2025-12-31"},
	}

	for _, tc := range cases {
		start, end := MonthBounds(tc.date)
		if got := start.Format("2006-01-02"); got != tc.wantStart {
			t.Errorf("MonthBounds(%s) start = %s, want %s", tc.date, got, tc.wantStart)
		}
		if got := end.Format("2006-01-02"); got != tc.wantEnd {
			t.Errorf("MonthBounds(%s) end = %s, want %s", tc.date, got, tc.wantEnd)
		}
	}
}

func TestMonthlySummaryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("returns six months oldest first", func(t *testing.T) {
		repo := &reportRepoStub{sums: map[string]decimal.Decimal{
			"income:2025-03":  money("1000.00"),
			"expense:2025-03": money("400.00"),
			"income:2024-10":  money("50.00"),
		}}
		clock := fixedClock{now: time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)}
		uc := NewMonthlySummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx, MonthlySummaryInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Months) != entity.MonthlySummaryMonths {
			t.Fatalf("expected %d months, got %d", entity.MonthlySummaryMonths, len(output.Months))
		}

		first := output.Months[0]
		if first.Year != 2024 || first.Month != 10 {
			t.Errorf("expected first month 2024-10, got %d-%02d", first.Year, first.Month)
		}
		if !first.Income.Equal(money("50.00")) {
			t.Errorf("expected October income 50.00, got %s", first.Income)
		}

		last := output.Months[5]
		if last.Year != 2025 || last.Month != 3 {
			t.Errorf("expected last month 2025-03, got %d-%02d", last.Year, last.Month)
		}
		if !last.Income.Equal(money("1000.00")) || !last.Expense.Equal(money("400.00")) {
			t.Errorf("unexpected March totals: income %s expense %s", last.Income, last.Expense)
		}
	})

	t.Run("empty months yield zero totals", func(t *testing.T) {
		repo := &reportRepoStub{sums: map[string]decimal.Decimal{}}
		clock := fixedClock{now: time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)}
		uc := NewMonthlySummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx, MonthlySummaryInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, month := range output.Months {
			if !month.Income.IsZero() || !month.Expense.IsZero() {
				t.Errorf("expected zero totals for %d-%02d", month.Year, month.Month)
			}
		}
	})

	t.Run("covers each month once from a month-end reference date", func(t *testing.T) {
		repo := &reportRepoStub{sums: map[string]decimal.Decimal{}}
		clock := fixedClock{now: time.Date(2025, time.October, 31, 23, 0, 0, 0, time.UTC)}
		uc := NewMonthlySummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx, MonthlySummaryInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int{5, 6, 7, 8, 9, 10}
		for i, month := range output.Months {
			if month.Year != 2025 || month.Month != want[i] {
				t.Errorf("position %d: expected 2025-%02d, got %d-%02d", i, want[i], month.Year, month.Month)
			}
		}
	})

	t.Run("walks back across a year boundary", func(t *testing.T) {
		repo := &reportRepoStub{sums: map[string]decimal.Decimal{}}
		clock := fixedClock{now: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)}
		uc := NewMonthlySummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx, MonthlySummaryInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := output.Months[0]
		if first.Year != 2024 || first.Month != 8 {
			t.Errorf("expected first month 2024-08, got %d-%02d", first.Year, first.Month)
		}
	})

	t.Run("honors an explicit reference month", func(t *testing.T) {
		repo := &reportRepoStub{sums: map[string]decimal.Decimal{}}
		clock := fixedClock{now: time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)}
		uc := NewMonthlySummaryUseCase(repo, clock)

		output, err := uc.Execute(ctx, MonthlySummaryInput{
			UserID:         "user-1",
			ReferenceMonth: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := output.Months[5]
		if last.Year != 2025 || last.Month != 3 {
			t.Errorf("expected last month 2025-03, got %d-%02d", last.Year, last.Month)
		}
	})
}

func TestTopCategoriesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("groups and sums per category", func(t *testing.T) {
		repo := &reportRepoStub{rows: []adapter.CategoryAmountRow{
			{CategoryName: strptr("Food"), Amount: money("30.00")},
			{CategoryName: strptr("Food"), Amount: money("20.00")},
			{CategoryName: strptr("Travel"), Amount: money("10.00")},
		}}
		uc := NewTopCategoriesUseCase(repo)

		output, err := uc.Execute(ctx, TopCategoriesInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(output.Categories))
		}
		if output.Categories[0].CategoryName != "Food" || !output.Categories[0].Total.Equal(money("50.00")) {
			t.Errorf("unexpected first group: %+v", output.Categories[0])
		}
	})

	t.Run("groups dangling references under Unknown", func(t *testing.T) {
		repo := &reportRepoStub{rows: []adapter.CategoryAmountRow{
			{CategoryName: nil, Amount: money("15.00")},
			{CategoryName: nil, Amount: money("5.00")},
			{CategoryName: strptr("Food"), Amount: money("10.00")},
		}}
		uc := NewTopCategoriesUseCase(repo)

		output, err := uc.Execute(ctx, TopCategoriesInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Categories[0].CategoryName != entity.UnknownCategoryLabel {
			t.Errorf("expected Unknown first, got %s", output.Categories[0].CategoryName)
		}
		if !output.Categories[0].Total.Equal(money("20.00")) {
			t.Errorf("expected Unknown total 20.00, got %s", output.Categories[0].Total)
		}
	})

	t.Run("breaks ties by name ascending", func(t *testing.T) {
		repo := &reportRepoStub{rows: []adapter.CategoryAmountRow{
			{CategoryName: strptr("Travel"), Amount: money("25.00")},
			{CategoryName: strptr("Bills"), Amount: money("25.00")},
			{CategoryName: strptr("Food"), Amount: money("25.00")},
		}}
		uc := NewTopCategoriesUseCase(repo)

		output, err := uc.Execute(ctx, TopCategoriesInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"Bills", "Food", "Travel"}
		for i, group := range output.Categories {
			if group.CategoryName != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], group.CategoryName)
			}
		}
	})

	t.Run("truncates to the top five", func(t *testing.T) {
		rows := make([]adapter.CategoryAmountRow, 0, 7)
		for i := 0; i < 7; i++ {
			name := fmt.Sprintf("Category %d", i)
			rows = append(rows, adapter.CategoryAmountRow{
				CategoryName: &name,
				Amount:       money(fmt.Sprintf("%d.00", (i+1)*10)),
			})
		}
		repo := &reportRepoStub{rows: rows}
		uc := NewTopCategoriesUseCase(repo)

		output, err := uc.Execute(ctx, TopCategoriesInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != entity.TopCategoriesLimit {
			t.Fatalf("expected %d groups, got %d", entity.TopCategoriesLimit, len(output.Categories))
		}
		if output.Categories[0].CategoryName != "Category 6" {
			t.Errorf("expected largest group first, got %s", output.Categories[0].CategoryName)
		}
		for _, group := range output.Categories {
			if group.CategoryName == "Category 0" || group.CategoryName == "Category 1" {
				t.Errorf("expected %s to be cut off", group.CategoryName)
			}
		}
	})

	t.Run("returns an empty ranking without expenses", func(t *testing.T) {
		repo := &reportRepoStub{}
		uc := NewTopCategoriesUseCase(repo)

		output, err := uc.Execute(ctx, TopCategoriesInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 0 {
			t.Errorf("expected no groups, got %d", len(output.Categories))
		}
	})
}
