// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// CategoryRepository defines the interface for financial category persistence operations.
// Every lookup is scoped to a school.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.FinancialCategory) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*entity.FinancialCategory, error)

	// FindByIDs retrieves the categories with the given IDs, active or not.
	FindByIDs(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) ([]*entity.FinancialCategory, error)

	// FindActiveByTypes retrieves active categories of the given types, ordered by code then name.
	FindActiveByTypes(ctx context.Context, schoolID uuid.UUID, types []entity.CategoryType) ([]*entity.FinancialCategory, error)

	// List retrieves categories with optional type and active filters.
	List(ctx context.Context, schoolID uuid.UUID, categoryType *entity.CategoryType, active *bool) ([]*entity.FinancialCategory, error)

	// ExistsByCode checks if a category with the given code exists for the school.
	ExistsByCode(ctx context.Context, schoolID uuid.UUID, code string) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.FinancialCategory) error
}
