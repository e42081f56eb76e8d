// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database. A race on the composite
// unique index is reported as a duplicate name.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	category.ID = categoryModel.ID
	return nil
}

// FindByIDAndUser retrieves a category by ID scoped to the owning user.
func (r *categoryRepository) FindByIDAndUser(ctx context.Context, userID string, id uint) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUser retrieves all categories for a user, ordered by name ascending.
func (r *categoryRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// ListNamesByUser retrieves the names of all categories for a user.
func (r *categoryRepository) ListNamesByUser(ctx context.Context, userID string) ([]string, error) {
	var names []string
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ?", userID).
		Pluck("name", &names)
	if result.Error != nil {
		return nil, result.Error
	}
	return names, nil
}

// ExistsByNameAndUser checks if the user already has a category with the given name.
func (r *categoryRepository) ExistsByNameAndUser(ctx context.Context, userID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update persists a rename using optimistic locking on the version column.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ? AND user_id = ? AND version = ?", category.ID, category.UserID, category.Version).
		Updates(map[string]any{
			"name":       category.Name,
			"version":    category.Version + 1,
			"updated_at": category.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or another writer bumped the version.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.CategoryModel{}).
			Where("id = ? AND user_id = ?", category.ID, category.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerror.ErrCategoryNotFound
		}
		return domainerror.ErrCategoryConflict
	}
	category.Version++
	return nil
}

// Delete removes a category scoped to the owning user. The reference check
// and the delete run in one database transaction so a racing insert cannot
// slip past the guard; the restricted foreign key is the final backstop.
func (r *categoryRepository) Delete(ctx context.Context, userID string, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TransactionModel{}).
			Where("user_id = ? AND category_id = ?", userID, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domainerror.ErrCategoryInUse
		}

		result := tx.Delete(&model.CategoryModel{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			if isForeignKeyViolation(result.Error) {
				return domainerror.ErrCategoryInUse
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCategoryNotFound
		}
		return nil
	})
}

// HasTransactions checks whether any transaction of the user references the category.
func (r *categoryRepository) HasTransactions(ctx context.Context, userID string, categoryID uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
