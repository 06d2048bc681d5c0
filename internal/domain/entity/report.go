package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportType represents the kind of financial report.
type ReportType string

const (
	ReportTypeIncomeStatement ReportType = "INCOME_STATEMENT"
	ReportTypeBalanceSheet    ReportType = "BALANCE_SHEET"
	ReportTypeCashFlow        ReportType = "CASH_FLOW"
	ReportTypeBudgetVariance  ReportType = "BUDGET_VARIANCE"
)

// IsValid reports whether the report type is one of the known values.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeIncomeStatement, ReportTypeBalanceSheet, ReportTypeCashFlow, ReportTypeBudgetVariance:
		return true
	}
	return false
}

// ReportPeriod is the reporting period label chosen by the user.
type ReportPeriod string

const (
	ReportPeriodMonthly   ReportPeriod = "MONTHLY"
	ReportPeriodQuarterly ReportPeriod = "QUARTERLY"
	ReportPeriodSemester  ReportPeriod = "SEMESTER"
	ReportPeriodYearly    ReportPeriod = "YEARLY"
	ReportPeriodCustom    ReportPeriod = "CUSTOM"
)

// IsValid reports whether the period is one of the known values.
func (p ReportPeriod) IsValid() bool {
	switch p {
	case ReportPeriodMonthly, ReportPeriodQuarterly, ReportPeriodSemester, ReportPeriodYearly, ReportPeriodCustom:
		return true
	}
	return false
}

// ReportStatus is the lifecycle state of a stored report.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "DRAFT"
	ReportStatusGenerated ReportStatus = "GENERATED"
	ReportStatusExported  ReportStatus = "EXPORTED"
)

// IsValid reports whether the status is one of the known values.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusGenerated, ReportStatusExported:
		return true
	}
	return false
}

// ReportFormat is the output format requested for a report.
// Reports are always computed as JSON; other formats are rendered by downstream exporters.
type ReportFormat string

const (
	ReportFormatJSON  ReportFormat = "JSON"
	ReportFormatPDF   ReportFormat = "PDF"
	ReportFormatExcel ReportFormat = "EXCEL"
)

// IsValid reports whether the format is one of the known values.
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportFormatJSON, ReportFormatPDF, ReportFormatExcel:
		return true
	}
	return false
}

// FinancialReport is a generated report stored with its serialized document.
type FinancialReport struct {
	ID        uuid.UUID
	SchoolID  uuid.UUID
	Name      string
	Type      ReportType
	Period    ReportPeriod
	StartDate time.Time
	EndDate   time.Time
	BudgetID  *uuid.UUID
	Status    ReportStatus
	Format    ReportFormat
	Data      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFinancialReport creates a GENERATED report holding the serialized document.
func NewFinancialReport(
	schoolID uuid.UUID,
	name string,
	reportType ReportType,
	period ReportPeriod,
	startDate, endDate time.Time,
	budgetID *uuid.UUID,
	format ReportFormat,
	data string,
	createdBy uuid.UUID,
) *FinancialReport {
	now := time.Now().UTC()

	return &FinancialReport{
		ID:        uuid.New(),
		SchoolID:  schoolID,
		Name:      name,
		Type:      reportType,
		Period:    period,
		StartDate: startDate,
		EndDate:   endDate,
		BudgetID:  budgetID,
		Status:    ReportStatusGenerated,
		Format:    format,
		Data:      data,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReportFilter holds the filters for listing reports.
type ReportFilter struct {
	SchoolID uuid.UUID
	Type     *ReportType
	Period   *ReportPeriod
	Status   *ReportStatus
	Year     *int
	Page     int
	Limit    int
}

// ReportListResult represents a page of stored reports.
type ReportListResult struct {
	Reports    []*FinancialReport
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
