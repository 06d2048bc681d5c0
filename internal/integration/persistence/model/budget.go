package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	SchoolID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name      string            `gorm:"type:varchar(150);not null"`
	StartDate time.Time         `gorm:"type:date;not null"`
	EndDate   time.Time         `gorm:"type:date;not null"`
	Items     []BudgetItemModel `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE"`
	CreatedBy uuid.UUID         `gorm:"type:uuid;not null"`
	CreatedAt time.Time         `gorm:"not null"`
	UpdatedAt time.Time         `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// BudgetItemModel represents the budget_items table in the database.
type BudgetItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BudgetID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_budget_items_budget_category"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_budget_items_budget_category"`
	BudgetAmount int64     `gorm:"not null;default:0"`
	Notes        string    `gorm:"type:text"`
	Position     int       `gorm:"not null;default:0"`
}

// TableName returns the table name for the BudgetItemModel.
func (BudgetItemModel) TableName() string {
	return "budget_items"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	items := make([]*entity.BudgetItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, &entity.BudgetItem{
			ID:           item.ID,
			BudgetID:     item.BudgetID,
			CategoryID:   item.CategoryID,
			BudgetAmount: item.BudgetAmount,
			Notes:        item.Notes,
		})
	}

	return &entity.Budget{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		Name:      m.Name,
		StartDate: m.StartDate.UTC(),
		EndDate:   m.EndDate.UTC(),
		Items:     items,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel with its items from a domain Budget entity.
// Item order is kept through the Position column.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	items := make([]BudgetItemModel, 0, len(budget.Items))
	for i, item := range budget.Items {
		items = append(items, BudgetItemModel{
			ID:           item.ID,
			BudgetID:     budget.ID,
			CategoryID:   item.CategoryID,
			BudgetAmount: item.BudgetAmount,
			Notes:        item.Notes,
			Position:     i,
		})
	}

	return &BudgetModel{
		ID:        budget.ID,
		SchoolID:  budget.SchoolID,
		Name:      budget.Name,
		StartDate: budget.StartDate,
		EndDate:   budget.EndDate,
		Items:     items,
		CreatedBy: budget.CreatedBy,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
