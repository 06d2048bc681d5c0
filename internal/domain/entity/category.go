// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the classification of a financial category.
type CategoryType string

const (
	CategoryTypeIncome   CategoryType = "INCOME"
	CategoryTypeExpense  CategoryType = "EXPENSE"
	CategoryTypeDonation CategoryType = "DONATION"
)

// IsValid reports whether the category type is one of the known values.
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeDonation:
		return true
	}
	return false
}

// IsInflow reports whether money booked on this category type enters the school.
// Donations (infaq, zakat, wakaf) are reported on the income side.
func (t CategoryType) IsInflow() bool {
	return t == CategoryTypeIncome || t == CategoryTypeDonation
}

// InflowCategoryTypes are the category types reported as income.
var InflowCategoryTypes = []CategoryType{CategoryTypeIncome, CategoryTypeDonation}

// OutflowCategoryTypes are the category types reported as expenses.
var OutflowCategoryTypes = []CategoryType{CategoryTypeExpense}

// FinancialCategory classifies transactions of a school (SPP, Infaq, salaries, utilities...).
type FinancialCategory struct {
	ID          uuid.UUID
	SchoolID    uuid.UUID
	Code        string
	Name        string
	Description string
	Type        CategoryType
	AccountID   *uuid.UUID
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewFinancialCategory creates a new active FinancialCategory.
func NewFinancialCategory(schoolID uuid.UUID, code, name, description string, categoryType CategoryType, accountID *uuid.UUID) *FinancialCategory {
	now := time.Now().UTC()

	return &FinancialCategory{
		ID:          uuid.New(),
		SchoolID:    schoolID,
		Code:        code,
		Name:        name,
		Description: description,
		Type:        categoryType,
		AccountID:   accountID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
