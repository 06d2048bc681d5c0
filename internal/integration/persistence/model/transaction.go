package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// TransactionModel represents the finance_transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_finance_transactions_report,priority:1"`
	CategoryID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_finance_transactions_report,priority:3"`
	Date        time.Time  `gorm:"type:date;not null;index:idx_finance_transactions_report,priority:4"`
	Amount      int64      `gorm:"not null"`
	Status      string     `gorm:"type:varchar(10);not null;default:'DRAFT';index:idx_finance_transactions_report,priority:2"`
	Description string     `gorm:"type:varchar(255)"`
	Reference   string     `gorm:"type:varchar(100)"`
	PostedAt    *time.Time `gorm:"column:posted_at"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "finance_transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		SchoolID:    m.SchoolID,
		CategoryID:  m.CategoryID,
		Date:        m.Date.UTC(),
		Amount:      m.Amount,
		Status:      entity.TransactionStatus(m.Status),
		Description: m.Description,
		Reference:   m.Reference,
		PostedAt:    m.PostedAt,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		SchoolID:    transaction.SchoolID,
		CategoryID:  transaction.CategoryID,
		Date:        transaction.Date,
		Amount:      transaction.Amount,
		Status:      string(transaction.Status),
		Description: transaction.Description,
		Reference:   transaction.Reference,
		PostedAt:    transaction.PostedAt,
		CreatedBy:   transaction.CreatedBy,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
