package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// ReportRepository defines the interface for financial report persistence operations.
type ReportRepository interface {
	// Create stores a generated report.
	Create(ctx context.Context, report *entity.FinancialReport) error

	// FindByID retrieves a report by its ID.
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*entity.FinancialReport, error)

	// FindByFilter retrieves a page of reports, newest first.
	FindByFilter(ctx context.Context, filter *entity.ReportFilter) (*entity.ReportListResult, error)
}

// ReportSources groups the repositories a report generation reads from.
type ReportSources struct {
	Categories   CategoryRepository
	Accounts     AccountRepository
	Transactions TransactionRepository
	Budgets      BudgetRepository
}

// ReportReader runs the reads of one report generation.
// Implementations may bind the sources to a single read-only snapshot.
type ReportReader interface {
	Read(ctx context.Context, fn func(ctx context.Context, sources ReportSources) error) error
}
