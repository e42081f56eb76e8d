// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Every operation takes the acting user's ID; querying by entity ID alone is a
// security defect.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category by ID scoped to the owning user.
	// Returns ErrCategoryNotFound when the row is absent or owned by someone else.
	FindByIDAndUser(ctx context.Context, userID string, id uint) (*entity.Category, error)

	// FindByUser retrieves all categories for a user, ordered by name ascending.
	FindByUser(ctx context.Context, userID string) ([]*entity.Category, error)

	// ListNamesByUser retrieves the names of all categories for a user.
	ListNamesByUser(ctx context.Context, userID string) ([]string, error)

	// ExistsByNameAndUser checks if the user already has a category with the
	// given name (exact, case-sensitive match).
	ExistsByNameAndUser(ctx context.Context, userID, name string) (bool, error)

	// Update persists a rename using optimistic locking on the version column.
	// Returns ErrCategoryConflict on a lost race and ErrCategoryNotFound when
	// the row was deleted concurrently.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category scoped to the owning user. Returns
	// ErrCategoryNotFound when absent and ErrCategoryInUse when transactions
	// still reference it (the foreign key is restricted, never cascading).
	Delete(ctx context.Context, userID string, id uint) error

	// HasTransactions checks whether any transaction of the user references the category.
	HasTransactions(ctx context.Context, userID string, categoryID uint) (bool, error)
}
