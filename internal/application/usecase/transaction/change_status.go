package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// ChangeStatusInput represents the input for posting or voiding a transaction.
type ChangeStatusInput struct {
	SchoolID      uuid.UUID
	TransactionID uuid.UUID
	Target        entity.TransactionStatus
}

// ChangeStatusOutput represents the output of a status change.
type ChangeStatusOutput struct {
	Transaction *entity.Transaction
}

// ChangeStatusUseCase moves a transaction through DRAFT -> POSTED -> VOID.
type ChangeStatusUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewChangeStatusUseCase creates a new ChangeStatusUseCase instance.
func NewChangeStatusUseCase(transactionRepo adapter.TransactionRepository) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute applies the transition. Only POSTED transactions are picked up by reports.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, input ChangeStatusInput) (*ChangeStatusOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.SchoolID, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	now := time.Now().UTC()

	switch input.Target {
	case entity.TransactionStatusPosted:
		if !transaction.CanPost() {
			return nil, invalidTransition(transaction.Status, input.Target)
		}
		transaction.PostedAt = &now
	case entity.TransactionStatusVoid:
		if !transaction.CanVoid() {
			return nil, invalidTransition(transaction.Status, input.Target)
		}
	default:
		return nil, invalidTransition(transaction.Status, input.Target)
	}

	previous := transaction.Status
	transaction.Status = input.Target
	transaction.UpdatedAt = now

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction status changed",
		"transaction_id", transaction.ID,
		"from", previous,
		"to", transaction.Status,
	)

	return &ChangeStatusOutput{
		Transaction: transaction,
	}, nil
}

func invalidTransition(from, to entity.TransactionStatus) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidStatusTransition,
		fmt.Sprintf("cannot change transaction from %s to %s", from, to),
		domainerror.ErrInvalidStatusTransition,
	)
}
