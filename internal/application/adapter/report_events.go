package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// ReportGeneratedEvent is announced after a report has been stored.
type ReportGeneratedEvent struct {
	ReportID  uuid.UUID           `json:"reportId"`
	SchoolID  uuid.UUID           `json:"schoolId"`
	Type      entity.ReportType   `json:"type"`
	Format    entity.ReportFormat `json:"format"`
	CreatedBy uuid.UUID           `json:"createdBy"`
	CreatedAt time.Time           `json:"createdAt"`
}

// ReportEventPublisher announces report lifecycle events to other services.
type ReportEventPublisher interface {
	PublishReportGenerated(ctx context.Context, event ReportGeneratedEvent) error
}
