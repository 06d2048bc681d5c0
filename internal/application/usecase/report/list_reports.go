package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// Default pagination values for report listing.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListReportsInput represents the input for listing reports.
// Empty strings and nil pointers mean "no filter".
type ListReportsInput struct {
	SchoolID uuid.UUID
	Type     string
	Period   string
	Status   string
	Year     *int
	Page     int
	Limit    int
}

// Pagination describes the page returned by a list operation.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListReportsOutput represents the output of listing reports.
type ListReportsOutput struct {
	Reports    []ReportView `json:"reports"`
	Pagination Pagination   `json:"pagination"`
}

// ListReportsUseCase lists stored reports with their parsed documents.
type ListReportsUseCase struct {
	reportRepo adapter.ReportRepository
	cache      adapter.ReportListCache
	metrics    adapter.ReportMetrics
	maxLimit   int
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(
	reportRepo adapter.ReportRepository,
	cache adapter.ReportListCache,
	metrics adapter.ReportMetrics,
	maxLimit int,
) *ListReportsUseCase {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	return &ListReportsUseCase{
		reportRepo: reportRepo,
		cache:      cache,
		metrics:    metrics,
		maxLimit:   maxLimit,
	}
}

// Execute returns one page of reports, served from the list cache when possible.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	filter, err := uc.buildFilter(input)
	if err != nil {
		return nil, err
	}

	key := cacheKey(filter)
	cached, generation, ok := uc.cache.Get(ctx, filter.SchoolID, key)
	if ok {
		var output ListReportsOutput
		if err := json.Unmarshal(cached, &output); err == nil {
			uc.metrics.RecordCacheLookup(true)
			return &output, nil
		}
		slog.WarnContext(ctx, "Discarding unreadable cached report page", "school_id", filter.SchoolID)
	}
	uc.metrics.RecordCacheLookup(false)

	result, err := uc.reportRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	output := &ListReportsOutput{
		Reports: make([]ReportView, 0, len(result.Reports)),
		Pagination: Pagination{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for _, r := range result.Reports {
		output.Reports = append(output.Reports, decodeReportView(ctx, r))
	}

	if encoded, err := json.Marshal(output); err == nil {
		uc.cache.Set(ctx, filter.SchoolID, key, generation, encoded)
	}

	return output, nil
}

// buildFilter validates the query and applies pagination defaults.
func (uc *ListReportsUseCase) buildFilter(input ListReportsInput) (*entity.ReportFilter, error) {
	filter := &entity.ReportFilter{
		SchoolID: input.SchoolID,
		Year:     input.Year,
		Page:     input.Page,
		Limit:    input.Limit,
	}

	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > uc.maxLimit {
		filter.Limit = uc.maxLimit
	}

	if input.Type != "" {
		t := entity.ReportType(input.Type)
		if !t.IsValid() {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidReportType,
				domainerror.ErrInvalidReportType.Error(),
				domainerror.ErrInvalidReportType,
			)
		}
		filter.Type = &t
	}

	if input.Period != "" {
		p := entity.ReportPeriod(input.Period)
		if !p.IsValid() {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidReportPeriod,
				domainerror.ErrInvalidReportPeriod.Error(),
				domainerror.ErrInvalidReportPeriod,
			)
		}
		filter.Period = &p
	}

	if input.Status != "" {
		s := entity.ReportStatus(input.Status)
		if !s.IsValid() {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidReportStatus,
				domainerror.ErrInvalidReportStatus.Error(),
				domainerror.ErrInvalidReportStatus,
			)
		}
		filter.Status = &s
	}

	if input.Year != nil && (*input.Year < 1900 || *input.Year > 9999) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportQuery,
			"year must be a four digit year",
			nil,
		)
	}

	return filter, nil
}

// cacheKey identifies a list query inside a school's cache namespace.
func cacheKey(filter *entity.ReportFilter) string {
	var reportType, period, status string
	var year int
	if filter.Type != nil {
		reportType = string(*filter.Type)
	}
	if filter.Period != nil {
		period = string(*filter.Period)
	}
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	if filter.Year != nil {
		year = *filter.Year
	}
	return fmt.Sprintf("page=%d:limit=%d:type=%s:period=%s:year=%d:status=%s",
		filter.Page, filter.Limit, reportType, period, year, status)
}
