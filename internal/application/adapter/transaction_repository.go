// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions. All
// filters are optional; date bounds are inclusive on both ends.
type TransactionFilter struct {
	UserID     string
	Type       *entity.TransactionType
	CategoryID *uint
	StartDate  *time.Time
	EndDate    *time.Time
}

// CategoryAmountRow is one expense transaction amount with the name of its
// category, or nil when the reference no longer resolves.
type CategoryAmountRow struct {
	CategoryName *string
	Amount       decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence
// operations. Every operation takes the acting user's ID.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction by ID scoped to the owning user.
	// Returns ErrTransactionNotFound when absent or owned by someone else.
	FindByIDAndUser(ctx context.Context, userID string, id uint) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter with their
	// categories, ordered by date descending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Update persists an edit using optimistic locking on the version column.
	// Returns ErrTransactionConflict on a lost race and ErrTransactionNotFound
	// when the row was deleted concurrently.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction scoped to the owning user. Returns
	// ErrTransactionNotFound when absent.
	Delete(ctx context.Context, userID string, id uint) error

	// SumByTypeAndPeriod sums the amounts of the user's transactions of the
	// given type whose date falls in [start, end] inclusive. An empty window
	// yields zero, not an error.
	SumByTypeAndPeriod(ctx context.Context, userID string, transactionType entity.TransactionType, start, end time.Time) (decimal.Decimal, error)

	// ListExpenseAmountsByCategory returns one row per expense transaction of
	// the user (no date filter) with the resolved category name, for the top
	// spending categories ranking.
	ListExpenseAmountsByCategory(ctx context.Context, userID string) ([]CategoryAmountRow, error)
}
