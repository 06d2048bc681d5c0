// Package account contains financial account use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	SchoolID       uuid.UUID
	Code           string
	Name           string
	Type           entity.AccountType
	OpeningBalance int64
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.FinancialAccount
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	input.Code = strings.TrimSpace(input.Code)

	if !input.Type.IsValid() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			domainerror.ErrInvalidAccountType.Error(),
			domainerror.ErrInvalidAccountType,
		)
	}

	exists, err := uc.accountRepo.ExistsByCode(ctx, input.SchoolID, input.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check account code existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountCodeExists,
			"an account with this code already exists",
			domainerror.ErrAccountCodeExists,
		)
	}

	account := entity.NewFinancialAccount(input.SchoolID, input.Code, strings.TrimSpace(input.Name), input.Type, input.OpeningBalance)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
