// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the two supported transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 500

// MinTransactionAmount is the smallest valid transaction amount.
var MinTransactionAmount = decimal.New(1, -2) // 0.01

// Transaction represents a financial transaction in the Expense Tracker system.
// Amounts are always positive; the sign is carried by Type.
type Transaction struct {
	ID          uint
	UserID      string
	Date        time.Time // Calendar date, no time-of-day component
	Amount      decimal.Decimal
	Description string
	Type        TransactionType
	CategoryID  uint
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity owned by the given user.
// The date is normalized to midnight UTC.
func NewTransaction(
	userID string,
	date time.Time,
	amount decimal.Decimal,
	description string,
	transactionType TransactionType,
	categoryID uint,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		UserID:      userID,
		Date:        NormalizeDate(date),
		Amount:      amount,
		Description: description,
		Type:        transactionType,
		CategoryID:  categoryID,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NormalizeDate strips the time-of-day component from a date.
func NormalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
