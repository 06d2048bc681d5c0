package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a budget together with its items.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget with its items.
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*entity.Budget, error)

	// List retrieves the budgets of a school, newest first, without items.
	List(ctx context.Context, schoolID uuid.UUID) ([]*entity.Budget, error)
}
