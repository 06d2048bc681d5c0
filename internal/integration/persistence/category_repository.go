// Package persistence implements repository interfaces for database operations.
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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.FinancialCategory) error {
	categoryModel := model.FinancialCategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*entity.FinancialCategory, error) {
	var categoryModel model.FinancialCategoryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByIDs retrieves the categories with the given IDs, active or not.
func (r *categoryRepository) FindByIDs(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) ([]*entity.FinancialCategory, error) {
	if len(ids) == 0 {
		return []*entity.FinancialCategory{}, nil
	}

	var categoryModels []model.FinancialCategoryModel
	result := r.db.WithContext(ctx).
		Where("school_id = ? AND id IN ?", schoolID, ids).
		Order("code ASC, name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCategoryEntities(categoryModels), nil
}

// FindActiveByTypes retrieves active categories of the given types, ordered by code then name.
func (r *categoryRepository) FindActiveByTypes(ctx context.Context, schoolID uuid.UUID, types []entity.CategoryType) ([]*entity.FinancialCategory, error) {
	typeValues := make([]string, 0, len(types))
	for _, t := range types {
		typeValues = append(typeValues, string(t))
	}

	var categoryModels []model.FinancialCategoryModel
	result := r.db.WithContext(ctx).
		Where("school_id = ? AND is_active = ? AND type IN ?", schoolID, true, typeValues).
		Order("code ASC, name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCategoryEntities(categoryModels), nil
}

// List retrieves categories with optional type and active filters.
func (r *categoryRepository) List(ctx context.Context, schoolID uuid.UUID, categoryType *entity.CategoryType, active *bool) ([]*entity.FinancialCategory, error) {
	query := r.db.WithContext(ctx).Where("school_id = ?", schoolID)
	if categoryType != nil {
		query = query.Where("type = ?", string(*categoryType))
	}
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}

	var categoryModels []model.FinancialCategoryModel
	if err := query.Order("code ASC, name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	return toCategoryEntities(categoryModels), nil
}

// ExistsByCode checks if a category with the given code exists for the school.
func (r *categoryRepository) ExistsByCode(ctx context.Context, schoolID uuid.UUID, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FinancialCategoryModel{}).
		Where("school_id = ? AND code = ?", schoolID, code).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.FinancialCategory) error {
	categoryModel := model.FinancialCategoryFromEntity(category)
	return r.db.WithContext(ctx).Save(categoryModel).Error
}

func toCategoryEntities(models []model.FinancialCategoryModel) []*entity.FinancialCategory {
	categories := make([]*entity.FinancialCategory, len(models))
	for i := range models {
		categories[i] = models[i].ToEntity()
	}
	return categories
}
