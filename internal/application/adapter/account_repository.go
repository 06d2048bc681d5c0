package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// AccountRepository defines the interface for financial account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.FinancialAccount) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*entity.FinancialAccount, error)

	// FindByIDs retrieves the accounts with the given IDs.
	FindByIDs(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) ([]*entity.FinancialAccount, error)

	// FindActiveByTypes retrieves active accounts of the given types, ordered by code.
	FindActiveByTypes(ctx context.Context, schoolID uuid.UUID, types []entity.AccountType) ([]*entity.FinancialAccount, error)

	// List retrieves accounts with an optional type filter.
	List(ctx context.Context, schoolID uuid.UUID, accountType *entity.AccountType) ([]*entity.FinancialAccount, error)

	// ExistsByCode checks if an account with the given code exists for the school.
	ExistsByCode(ctx context.Context, schoolID uuid.UUID, code string) (bool, error)
}
