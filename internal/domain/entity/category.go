// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 100

// Category represents a transaction category in the Expense Tracker system.
// Every category is exclusively scoped to its owning user; the (UserID, Name)
// pair is unique per user, case-sensitive.
type Category struct {
	ID        uint
	Name      string
	UserID    string
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity owned by the given user.
func NewCategory(userID, name string) *Category {
	now := time.Now().UTC()

	return &Category{
		Name:      name,
		UserID:    userID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryWithUsage represents a category together with a flag indicating
// whether any transaction still references it. Used by the delete
// confirmation flow.
type CategoryWithUsage struct {
	Category        *Category
	HasTransactions bool
}
