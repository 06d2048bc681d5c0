// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// CreateBudgetItemInput is one planned amount of a budget.
type CreateBudgetItemInput struct {
	CategoryID   uuid.UUID
	BudgetAmount int64
	Notes        string
}

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	SchoolID  uuid.UUID
	UserID    uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Items     []CreateBudgetItemInput
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute validates and stores a budget with its items.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	categoryIDs := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		categoryIDs = append(categoryIDs, item.CategoryID)
	}

	found, err := uc.categoryRepo.FindByIDs(ctx, input.SchoolID, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget categories: %w", err)
	}
	if len(found) != len(categoryIDs) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnknownBudgetCategory,
			"one or more budget categories do not exist",
			domainerror.ErrCategoryNotFound,
		)
	}

	items := make([]*entity.BudgetItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, &entity.BudgetItem{
			CategoryID:   item.CategoryID,
			BudgetAmount: item.BudgetAmount,
			Notes:        item.Notes,
		})
	}

	budget := entity.NewBudget(
		input.SchoolID,
		strings.TrimSpace(input.Name),
		input.StartDate,
		input.EndDate,
		items,
		input.UserID,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}

// validateInput validates the input parameters.
func (uc *CreateBudgetUseCase) validateInput(input CreateBudgetInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetName,
			domainerror.ErrMissingBudgetName.Error(),
			domainerror.ErrMissingBudgetName,
		)
	}

	if input.StartDate.IsZero() || input.EndDate.IsZero() || !input.EndDate.After(input.StartDate) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDateRange,
			"endDate must be after startDate",
			domainerror.ErrInvalidDateRange,
		)
	}

	if len(input.Items) == 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudget,
			domainerror.ErrEmptyBudget.Error(),
			domainerror.ErrEmptyBudget,
		)
	}

	seen := make(map[uuid.UUID]struct{}, len(input.Items))
	for _, item := range input.Items {
		if item.BudgetAmount < 0 {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeNegativeBudgetAmount,
				domainerror.ErrNegativeBudgetAmount.Error(),
				domainerror.ErrNegativeBudgetAmount,
			)
		}
		if _, dup := seen[item.CategoryID]; dup {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateBudgetCategory,
				domainerror.ErrDuplicateBudgetCategory.Error(),
				domainerror.ErrDuplicateBudgetCategory,
			)
		}
		seen[item.CategoryID] = struct{}{}
	}

	return nil
}
