package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// FinancialReportModel represents the financial_reports table in the database.
// Data holds the JSON report document as text.
type FinancialReportModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_financial_reports_school_created,priority:1"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Type      string     `gorm:"type:varchar(20);not null;index"`
	Period    string     `gorm:"type:varchar(10);not null"`
	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   time.Time  `gorm:"type:date;not null"`
	BudgetID  *uuid.UUID `gorm:"type:uuid"`
	Status    string     `gorm:"type:varchar(10);not null;default:'GENERATED'"`
	Format    string     `gorm:"type:varchar(10);not null;default:'JSON'"`
	Data      string     `gorm:"type:text;not null"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt time.Time  `gorm:"not null;index:idx_financial_reports_school_created,priority:2"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the FinancialReportModel.
func (FinancialReportModel) TableName() string {
	return "financial_reports"
}

// ToEntity converts a FinancialReportModel to a domain FinancialReport entity.
func (m *FinancialReportModel) ToEntity() *entity.FinancialReport {
	return &entity.FinancialReport{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		Name:      m.Name,
		Type:      entity.ReportType(m.Type),
		Period:    entity.ReportPeriod(m.Period),
		StartDate: m.StartDate.UTC(),
		EndDate:   m.EndDate.UTC(),
		BudgetID:  m.BudgetID,
		Status:    entity.ReportStatus(m.Status),
		Format:    entity.ReportFormat(m.Format),
		Data:      m.Data,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FinancialReportFromEntity creates a FinancialReportModel from a domain FinancialReport entity.
func FinancialReportFromEntity(report *entity.FinancialReport) *FinancialReportModel {
	return &FinancialReportModel{
		ID:        report.ID,
		SchoolID:  report.SchoolID,
		Name:      report.Name,
		Type:      string(report.Type),
		Period:    string(report.Period),
		StartDate: report.StartDate,
		EndDate:   report.EndDate,
		BudgetID:  report.BudgetID,
		Status:    string(report.Status),
		Format:    string(report.Format),
		Data:      report.Data,
		CreatedBy: report.CreatedBy,
		CreatedAt: report.CreatedAt,
		UpdatedAt: report.UpdatedAt,
	}
}

// AllModels returns every model managed by auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&FinancialAccountModel{},
		&FinancialCategoryModel{},
		&TransactionModel{},
		&BudgetModel{},
		&BudgetItemModel{},
		&FinancialReportModel{},
	}
}
