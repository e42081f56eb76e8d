// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for renaming a category.
type UpdateCategoryInput struct {
	UserID     string
	CategoryID uint
	Name       string
}

// UpdateCategoryOutput represents the output of a category rename.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category rename logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the rename. A concurrent delete of the row is reported as
// not-found rather than a conflict.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if err := validateCategoryName(input.Name); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByIDAndUser(ctx, input.UserID, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, categoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if input.Name != category.Name {
		exists, err := uc.categoryRepo.ExistsByNameAndUser(ctx, input.UserID, input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name existence: %w", err)
		}
		if exists {
			return nil, duplicateNameError()
		}
	}

	category.Name = input.Name
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, categoryNotFoundError()
		case errors.Is(err, domainerror.ErrCategoryConflict):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryConflict,
				"category was modified by another operation",
				domainerror.ErrCategoryConflict,
			)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
