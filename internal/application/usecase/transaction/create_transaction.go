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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Type        entity.TransactionType
	CategoryID  uint
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Date, input.Amount, input.Description, input.Type); err != nil {
		return nil, err
	}

	// The category must resolve to a category owned by the same user.
	if _, err := uc.categoryRepo.FindByIDAndUser(ctx, input.UserID, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, transactionCategoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Date,
		input.Amount,
		input.Description,
		input.Type,
		input.CategoryID,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// validateTransactionFields enforces the shared shape rules for create and update.
func validateTransactionFields(date time.Time, amount decimal.Decimal, description string, transactionType entity.TransactionType) error {
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if !transactionType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	// Amounts are fixed-point with two decimal places; 0.01 is the smallest
	// accepted value. Trailing zeros beyond two places are tolerated ("0.010"),
	// anything that would lose precision is not ("10.125").
	if amount.LessThan(entity.MinTransactionAmount) || !amount.Equal(amount.Truncate(2)) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be at least 0.01 with at most two decimal places",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if len(description) > entity.MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", entity.MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func transactionCategoryNotFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTxnCategoryNotFound,
		"category does not exist for this user",
		domainerror.ErrCategoryNotFoundForTransaction,
	)
}

func transactionNotFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
