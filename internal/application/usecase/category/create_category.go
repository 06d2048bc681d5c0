// Package category contains financial category use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 100

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	SchoolID    uuid.UUID
	Code        string
	Name        string
	Description string
	Type        entity.CategoryType
	AccountID   *uuid.UUID
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.FinancialCategory
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	accountRepo  adapter.AccountRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, accountRepo adapter.AccountRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.TrimSpace(input.Code)

	if input.Name == "" || input.Code == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"code and name are required",
			nil,
		)
	}

	if len(input.Name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			domainerror.ErrInvalidCategoryType.Error(),
			domainerror.ErrInvalidCategoryType,
		)
	}

	exists, err := uc.categoryRepo.ExistsByCode(ctx, input.SchoolID, input.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check category code existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryCodeExists,
			"a category with this code already exists",
			domainerror.ErrCategoryCodeExists,
		)
	}

	if err := ensureAccountExists(ctx, uc.accountRepo, input.SchoolID, input.AccountID); err != nil {
		return nil, err
	}

	category := entity.NewFinancialCategory(input.SchoolID, input.Code, input.Name, input.Description, input.Type, input.AccountID)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// ensureAccountExists checks that a linked account belongs to the school.
func ensureAccountExists(ctx context.Context, accountRepo adapter.AccountRepository, schoolID uuid.UUID, accountID *uuid.UUID) error {
	if accountID == nil {
		return nil
	}

	if _, err := accountRepo.FindByID(ctx, schoolID, *accountID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryAccountLink,
				"linked account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return fmt.Errorf("failed to find account: %w", err)
	}
	return nil
}
