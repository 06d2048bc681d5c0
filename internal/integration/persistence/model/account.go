package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// FinancialAccountModel represents the financial_accounts table in the database.
type FinancialAccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_financial_accounts_school_code"`
	Code      string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_financial_accounts_school_code"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Type      string    `gorm:"type:varchar(10);not null;index"`
	Balance   int64     `gorm:"not null;default:0"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the FinancialAccountModel.
func (FinancialAccountModel) TableName() string {
	return "financial_accounts"
}

// ToEntity converts a FinancialAccountModel to a domain FinancialAccount entity.
func (m *FinancialAccountModel) ToEntity() *entity.FinancialAccount {
	return &entity.FinancialAccount{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		Code:      m.Code,
		Name:      m.Name,
		Type:      entity.AccountType(m.Type),
		Balance:   m.Balance,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FinancialAccountFromEntity creates a FinancialAccountModel from a domain FinancialAccount entity.
func FinancialAccountFromEntity(account *entity.FinancialAccount) *FinancialAccountModel {
	return &FinancialAccountModel{
		ID:        account.ID,
		SchoolID:  account.SchoolID,
		Code:      account.Code,
		Name:      account.Name,
		Type:      string(account.Type),
		Balance:   account.Balance,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
