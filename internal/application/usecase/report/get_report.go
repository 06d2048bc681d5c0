package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// GetReportInput represents the input for fetching a single report.
type GetReportInput struct {
	SchoolID uuid.UUID
	ReportID uuid.UUID
}

// GetReportUseCase fetches a stored report of a school.
type GetReportUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(reportRepo adapter.ReportRepository) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute returns the report with its parsed document.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*ReportView, error) {
	report, err := uc.reportRepo.FindByID(ctx, input.SchoolID, input.ReportID)
	if err != nil {
		if errors.Is(err, domainerror.ErrReportNotFound) {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeReportNotFound,
				"report not found",
				domainerror.ErrReportNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	view := decodeReportView(ctx, report)
	return &view, nil
}
