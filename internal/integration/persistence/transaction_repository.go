// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domainerror.ErrCategoryNotFoundForTransaction
		}
		return result.Error
	}
	transaction.ID = transactionModel.ID
	return nil
}

// FindByIDAndUser retrieves a transaction by ID scoped to the owning user.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, userID string, id uint) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter with their
// categories, ordered by date descending. Date bounds are inclusive.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", filter.UserID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", entity.NormalizeDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", entity.NormalizeDate(*filter.EndDate))
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date DESC, id DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return transactions, nil
}

// Update persists an edit using optimistic locking on the version column.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND user_id = ? AND version = ?", transaction.ID, transaction.UserID, transaction.Version).
		Updates(map[string]any{
			"date":        transaction.Date,
			"amount":      transaction.Amount,
			"description": transaction.Description,
			"type":        string(transaction.Type),
			"category_id": transaction.CategoryID,
			"version":     transaction.Version + 1,
			"updated_at":  transaction.UpdatedAt,
		})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domainerror.ErrCategoryNotFoundForTransaction
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		// A concurrently deleted row is reported as not-found, never as a
		// conflict.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.TransactionModel{}).
			Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return domainerror.ErrTransactionConflict
	}
	transaction.Version++
	return nil
}

// Delete removes a transaction scoped to the owning user.
func (r *transactionRepository) Delete(ctx context.Context, userID string, id uint) error {
	result := r.db.WithContext(ctx).
		Delete(&model.TransactionModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// SumByTypeAndPeriod sums amounts of the user's transactions of the given
// type within [start, end] inclusive. COALESCE keeps empty windows at zero.
func (r *transactionRepository) SumByTypeAndPeriod(ctx context.Context, userID string, transactionType entity.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?",
			userID, string(transactionType), entity.NormalizeDate(start), entity.NormalizeDate(end)).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// ListExpenseAmountsByCategory returns one row per expense transaction with
// the resolved category name. The left join keeps transactions with dangling
// category references; their name comes back NULL.
func (r *transactionRepository) ListExpenseAmountsByCategory(ctx context.Context, userID string) ([]adapter.CategoryAmountRow, error) {
	var rows []adapter.CategoryAmountRow
	result := r.db.WithContext(ctx).
		Table("transactions").
		Select("categories.name AS category_name, transactions.amount AS amount").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id AND categories.user_id = transactions.user_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, string(entity.TransactionTypeExpense)).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
