package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// ReportView is the API representation of a stored report.
type ReportView struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Type      entity.ReportType      `json:"type"`
	Period    entity.ReportPeriod    `json:"period"`
	StartDate string                 `json:"startDate"`
	EndDate   string                 `json:"endDate"`
	BudgetID  *uuid.UUID             `json:"budgetId"`
	Status    entity.ReportStatus    `json:"status"`
	Format    entity.ReportFormat    `json:"format"`
	Data      *entity.ReportDocument `json:"data"`
	CreatedBy uuid.UUID              `json:"createdBy"`
	CreatedAt time.Time              `json:"createdAt"`
}

// newReportView builds the view of a stored report with an already decoded document.
func newReportView(report *entity.FinancialReport, doc *entity.ReportDocument) ReportView {
	return ReportView{
		ID:        report.ID,
		Name:      report.Name,
		Type:      report.Type,
		Period:    report.Period,
		StartDate: report.StartDate.Format(DateLayout),
		EndDate:   report.EndDate.Format(DateLayout),
		BudgetID:  report.BudgetID,
		Status:    report.Status,
		Format:    report.Format,
		Data:      doc,
		CreatedBy: report.CreatedBy,
		CreatedAt: report.CreatedAt,
	}
}

// decodeReportView decodes the stored document of a report.
// A document that cannot be decoded yields a view with no data instead of an error.
func decodeReportView(ctx context.Context, report *entity.FinancialReport) ReportView {
	doc, err := DecodeDocument(report.Data)
	if err != nil {
		slog.WarnContext(ctx, "Failed to decode stored report document",
			"report_id", report.ID,
			"error", err,
		)
		return newReportView(report, nil)
	}
	return newReportView(report, doc)
}
