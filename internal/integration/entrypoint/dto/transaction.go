// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// DateFormat is the wire format for calendar dates. No time-of-day component.
const DateFormat = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string `json:"date" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
	Type        string `json:"type" binding:"required,oneof=income expense"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date        string `json:"date" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
	Type        string `json:"type" binding:"required,oneof=income expense"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
// Amounts are fixed-point decimals with exactly two fractional digits.
type TransactionResponse struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	Amount       string `json:"amount"`
	Description  string `json:"description,omitempty"`
	Type         string `json:"type"`
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Date:        txn.Date.Format(DateFormat),
		Amount:      txn.Amount.StringFixed(2),
		Description: txn.Description,
		Type:        string(txn.Type),
		CategoryID:  txn.CategoryID,
	}
}

// ToTransactionListResponse converts transactions with their categories to a
// TransactionListResponse.
func ToTransactionListResponse(txns []*entity.TransactionWithCategory) TransactionListResponse {
	transactions := make([]TransactionResponse, len(txns))
	for i, twc := range txns {
		resp := ToTransactionResponse(twc.Transaction)
		if twc.Category != nil {
			resp.CategoryName = twc.Category.Name
		}
		transactions[i] = resp
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
