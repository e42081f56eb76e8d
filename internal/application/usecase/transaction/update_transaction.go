// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	UserID        string
	TransactionID uint
	Date          time.Time
	Amount        decimal.Decimal
	Description   string
	Type          entity.TransactionType
	CategoryID    uint
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update under optimistic concurrency. A row
// deleted between read and write is reported as not-found; a row modified in
// between is reported as a conflict.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionFields(input.Date, input.Amount, input.Description, input.Type); err != nil {
		return nil, err
	}

	transaction, err := uc.transactionRepo.FindByIDAndUser(ctx, input.UserID, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, transactionNotFoundError()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if _, err := uc.categoryRepo.FindByIDAndUser(ctx, input.UserID, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, transactionCategoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	transaction.Date = entity.NormalizeDate(input.Date)
	transaction.Amount = input.Amount
	transaction.Description = input.Description
	transaction.Type = input.Type
	transaction.CategoryID = input.CategoryID
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrTransactionNotFound):
			return nil, transactionNotFoundError()
		case errors.Is(err, domainerror.ErrTransactionConflict):
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionConflict,
				"transaction was modified by another operation",
				domainerror.ErrTransactionConflict,
			)
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
