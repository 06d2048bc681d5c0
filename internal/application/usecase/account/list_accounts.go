package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	SchoolID uuid.UUID
	Type     *entity.AccountType // Optional filter
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*entity.FinancialAccount
}

// ListAccountsUseCase handles listing accounts of a school.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves the accounts of the school ordered by code.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			domainerror.ErrInvalidAccountType.Error(),
			domainerror.ErrInvalidAccountType,
		)
	}

	accounts, err := uc.accountRepo.List(ctx, input.SchoolID, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &ListAccountsOutput{
		Accounts: accounts,
	}, nil
}
