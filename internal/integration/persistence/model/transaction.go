// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. The
// category foreign key is restricted: a referenced category cannot be deleted
// until its transactions are reassigned or removed.
type TransactionModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	UserID      string          `gorm:"type:varchar(36);not null;index:idx_transactions_user_date"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"type:varchar(500)"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	CategoryID  uint            `gorm:"not null;index"`
	Version     int             `gorm:"not null;default:1"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Loaded with Preload only.
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        m.Date,
		Amount:      m.Amount,
		Description: m.Description,
		Type:        entity.TransactionType(m.Type),
		CategoryID:  m.CategoryID,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its preloaded
// Category to a TransactionWithCategory entity.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Date:        transaction.Date,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Type:        string(transaction.Type),
		CategoryID:  transaction.CategoryID,
		Version:     transaction.Version,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
