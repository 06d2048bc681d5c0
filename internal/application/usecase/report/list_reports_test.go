package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

func storedReport(schoolID uuid.UUID, reportType entity.ReportType, createdAt time.Time) *entity.FinancialReport {
	data, _ := EncodeDocument(&entity.ReportDocument{Type: reportType})
	r := entity.NewFinancialReport(schoolID, "Laporan", reportType, entity.ReportPeriodMonthly,
		date(2025, 1, 1), date(2025, 1, 31), nil, entity.ReportFormatJSON, data, uuid.New())
	r.CreatedAt = createdAt
	return r
}

func TestListReports(t *testing.T) {
	schoolID := uuid.New()
	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

	s := &store{}
	for i := 0; i < 12; i++ {
		s.reports = append(s.reports, storedReport(schoolID, entity.ReportTypeIncomeStatement, base.Add(time.Duration(i)*time.Hour)))
	}
	s.reports = append(s.reports, storedReport(uuid.New(), entity.ReportTypeIncomeStatement, base))

	t.Run("applies default pagination and orders newest first", func(t *testing.T) {
		uc := NewListReportsUseCase(&fakeReportRepo{s}, newMemoryCache(), &recordingMetrics{}, 0)

		output, err := uc.Execute(context.Background(), ListReportsInput{SchoolID: schoolID})
		require.NoError(t, err)

		assert.Len(t, output.Reports, DefaultLimit)
		assert.Equal(t, int64(12), output.Pagination.Total)
		assert.Equal(t, 2, output.Pagination.TotalPages)
		assert.True(t, output.Reports[0].CreatedAt.After(output.Reports[1].CreatedAt))
		require.NotNil(t, output.Reports[0].Data)
		assert.Equal(t, entity.ReportTypeIncomeStatement, output.Reports[0].Data.Type)
	})

	t.Run("caps the page size", func(t *testing.T) {
		uc := NewListReportsUseCase(&fakeReportRepo{s}, newMemoryCache(), &recordingMetrics{}, 5)

		output, err := uc.Execute(context.Background(), ListReportsInput{SchoolID: schoolID, Limit: 500})
		require.NoError(t, err)

		assert.Equal(t, 5, output.Pagination.Limit)
	})

	t.Run("rejects unknown filters", func(t *testing.T) {
		uc := NewListReportsUseCase(&fakeReportRepo{s}, newMemoryCache(), &recordingMetrics{}, 0)

		_, err := uc.Execute(context.Background(), ListReportsInput{SchoolID: schoolID, Status: "ARCHIVED"})

		var reportErr *domainerror.ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, domainerror.ErrCodeInvalidReportStatus, reportErr.Code)
	})

	t.Run("repeated reads return identical pages and hit the cache", func(t *testing.T) {
		metrics := &recordingMetrics{}
		uc := NewListReportsUseCase(&fakeReportRepo{s}, newMemoryCache(), metrics, 0)
		input := ListReportsInput{SchoolID: schoolID, Page: 2}

		first, err := uc.Execute(context.Background(), input)
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), input)
		require.NoError(t, err)

		firstJSON, _ := json.Marshal(first)
		secondJSON, _ := json.Marshal(second)
		assert.JSONEq(t, string(firstJSON), string(secondJSON))
		assert.Equal(t, 1, metrics.cacheMisses)
		assert.Equal(t, 1, metrics.cacheHits)
	})

	t.Run("a page read before an invalidation is not served after it", func(t *testing.T) {
		racing := &store{reports: []*entity.FinancialReport{storedReport(schoolID, entity.ReportTypeIncomeStatement, base)}}
		listCache := newMemoryCache()
		metrics := &recordingMetrics{}
		uc := NewListReportsUseCase(&fakeReportRepo{racing}, listCache, metrics, 0)

		racing.onFindByFilter = func() {
			racing.onFindByFilter = nil
			racing.reports = append(racing.reports, storedReport(schoolID, entity.ReportTypeCashFlow, base.Add(time.Hour)))
			require.NoError(t, listCache.Invalidate(context.Background(), schoolID))
		}
		first, err := uc.Execute(context.Background(), ListReportsInput{SchoolID: schoolID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.Pagination.Total)

		second, err := uc.Execute(context.Background(), ListReportsInput{SchoolID: schoolID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.Pagination.Total)
		assert.Equal(t, 2, metrics.cacheMisses)
		assert.Equal(t, 0, metrics.cacheHits)
	})

	t.Run("keeps rows whose document cannot be decoded", func(t *testing.T) {
		broken := &store{reports: []*entity.FinancialReport{storedReport(schoolID, entity.ReportTypeCashFlow, base)}}
		broken.reports[0].Data = `{"legacy":true}`
		uc := NewListReportsUseCase(&fakeReportRepo{broken}, newMemoryCache(), &recordingMetrics{}, 0)

		output, err := uc.Execute(context.Background(), ListReportsInput{SchoolID: schoolID})
		require.NoError(t, err)

		require.Len(t, output.Reports, 1)
		assert.Nil(t, output.Reports[0].Data)
	})
}

func TestGetReport(t *testing.T) {
	schoolID := uuid.New()
	report := storedReport(schoolID, entity.ReportTypeBalanceSheet, time.Now())
	uc := NewGetReportUseCase(&fakeReportRepo{&store{reports: []*entity.FinancialReport{report}}})

	t.Run("returns the report of the school", func(t *testing.T) {
		view, err := uc.Execute(context.Background(), GetReportInput{SchoolID: schoolID, ReportID: report.ID})
		require.NoError(t, err)

		assert.Equal(t, report.ID, view.ID)
		assert.Equal(t, entity.ReportTypeBalanceSheet, view.Data.Type)
	})

	t.Run("hides reports of other schools", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetReportInput{SchoolID: uuid.New(), ReportID: report.ID})

		var reportErr *domainerror.ReportError
		require.True(t, errors.As(err, &reportErr))
		assert.Equal(t, domainerror.ErrCodeReportNotFound, reportErr.Code)
	})
}
