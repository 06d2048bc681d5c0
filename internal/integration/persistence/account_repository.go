package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.FinancialAccount) error {
	return r.db.WithContext(ctx).Create(model.FinancialAccountFromEntity(account)).Error
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*entity.FinancialAccount, error) {
	var accountModel model.FinancialAccountModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByIDs retrieves the accounts with the given IDs.
func (r *accountRepository) FindByIDs(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) ([]*entity.FinancialAccount, error) {
	if len(ids) == 0 {
		return []*entity.FinancialAccount{}, nil
	}

	var accountModels []model.FinancialAccountModel
	result := r.db.WithContext(ctx).
		Where("school_id = ? AND id IN ?", schoolID, ids).
		Order("code ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toAccountEntities(accountModels), nil
}

// FindActiveByTypes retrieves active accounts of the given types, ordered by code.
func (r *accountRepository) FindActiveByTypes(ctx context.Context, schoolID uuid.UUID, types []entity.AccountType) ([]*entity.FinancialAccount, error) {
	typeValues := make([]string, 0, len(types))
	for _, t := range types {
		typeValues = append(typeValues, string(t))
	}

	var accountModels []model.FinancialAccountModel
	result := r.db.WithContext(ctx).
		Where("school_id = ? AND is_active = ? AND type IN ?", schoolID, true, typeValues).
		Order("code ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toAccountEntities(accountModels), nil
}

// List retrieves accounts with an optional type filter.
func (r *accountRepository) List(ctx context.Context, schoolID uuid.UUID, accountType *entity.AccountType) ([]*entity.FinancialAccount, error) {
	query := r.db.WithContext(ctx).Where("school_id = ?", schoolID)
	if accountType != nil {
		query = query.Where("type = ?", string(*accountType))
	}

	var accountModels []model.FinancialAccountModel
	if err := query.Order("code ASC").Find(&accountModels).Error; err != nil {
		return nil, err
	}
	return toAccountEntities(accountModels), nil
}

// ExistsByCode checks if an account with the given code exists for the school.
func (r *accountRepository) ExistsByCode(ctx context.Context, schoolID uuid.UUID, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FinancialAccountModel{}).
		Where("school_id = ? AND code = ?", schoolID, code).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func toAccountEntities(models []model.FinancialAccountModel) []*entity.FinancialAccount {
	accounts := make([]*entity.FinancialAccount, len(models))
	for i := range models {
		accounts[i] = models[i].ToEntity()
	}
	return accounts
}
