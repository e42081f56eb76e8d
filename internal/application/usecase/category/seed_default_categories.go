// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SeedDefaultCategoriesInput represents the input for default category seeding.
type SeedDefaultCategoriesInput struct {
	UserID string
}

// SeedDefaultCategoriesOutput represents the output of default category seeding.
type SeedDefaultCategoriesOutput struct {
	Created int
}

// SeedDefaultCategoriesUseCase idempotently provisions the configured default
// categories for a user. Safe to run on every login: a default is only created
// when no category with that exact name exists yet.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	defaults     []string
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase
// instance. The default name lists come from configuration, income categories
// first.
func NewSeedDefaultCategoriesUseCase(
	categoryRepo adapter.CategoryRepository,
	incomeDefaults []string,
	expenseDefaults []string,
) *SeedDefaultCategoriesUseCase {
	defaults := make([]string, 0, len(incomeDefaults)+len(expenseDefaults))
	defaults = append(defaults, incomeDefaults...)
	defaults = append(defaults, expenseDefaults...)

	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
		defaults:     defaults,
	}
}

// Execute creates each missing default category for the user.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context, input SeedDefaultCategoriesInput) (*SeedDefaultCategoriesOutput, error) {
	names, err := uc.categoryRepo.ListNamesByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing categories: %w", err)
	}

	existing := make(map[string]struct{}, len(names))
	for _, name := range names {
		existing[name] = struct{}{}
	}

	created := 0
	for _, name := range uc.defaults {
		if _, ok := existing[name]; ok {
			continue
		}
		if err := uc.categoryRepo.Create(ctx, entity.NewCategory(input.UserID, name)); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		created++
	}

	return &SeedDefaultCategoriesOutput{
		Created: created,
	}, nil
}

// Seed provisions the defaults for a user. It adapts the use case to the
// auth package's DefaultCategorySeeder interface.
func (uc *SeedDefaultCategoriesUseCase) Seed(ctx context.Context, userID string) error {
	_, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: userID})
	return err
}
