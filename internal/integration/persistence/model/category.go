// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// FinancialCategoryModel represents the financial_categories table in the database.
type FinancialCategoryModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SchoolID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_financial_categories_school_code;index:idx_financial_categories_school_type"`
	Code        string         `gorm:"type:varchar(30);not null;uniqueIndex:idx_financial_categories_school_code"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	Type        string         `gorm:"type:varchar(10);not null;index:idx_financial_categories_school_type"`
	AccountID   *uuid.UUID     `gorm:"type:uuid;index"`
	IsActive    bool           `gorm:"not null;default:true"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the FinancialCategoryModel.
func (FinancialCategoryModel) TableName() string {
	return "financial_categories"
}

// ToEntity converts a FinancialCategoryModel to a domain FinancialCategory entity.
func (m *FinancialCategoryModel) ToEntity() *entity.FinancialCategory {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.FinancialCategory{
		ID:          m.ID,
		SchoolID:    m.SchoolID,
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		Type:        entity.CategoryType(m.Type),
		AccountID:   m.AccountID,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// FinancialCategoryFromEntity creates a FinancialCategoryModel from a domain FinancialCategory entity.
func FinancialCategoryFromEntity(category *entity.FinancialCategory) *FinancialCategoryModel {
	var deletedAt gorm.DeletedAt
	if category.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *category.DeletedAt, Valid: true}
	}

	return &FinancialCategoryModel{
		ID:          category.ID,
		SchoolID:    category.SchoolID,
		Code:        category.Code,
		Name:        category.Name,
		Description: category.Description,
		Type:        string(category.Type),
		AccountID:   category.AccountID,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
