package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/domain/valueobject"
)

// MaxReportNameLength is the maximum length of a report name.
const MaxReportNameLength = 255

// GenerateReportInput represents the input for generating a report.
type GenerateReportInput struct {
	SchoolID       uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           entity.ReportType
	Period         entity.ReportPeriod
	StartDate      time.Time
	EndDate        time.Time
	BudgetID       *uuid.UUID
	IncludeDetails bool
	Format         entity.ReportFormat
}

// GenerateReportUseCase computes a financial report and stores it.
type GenerateReportUseCase struct {
	reader     adapter.ReportReader
	reportRepo adapter.ReportRepository
	cache      adapter.ReportListCache
	publisher  adapter.ReportEventPublisher
	metrics    adapter.ReportMetrics
	policy     valueobject.VariancePolicy
	now        func() time.Time
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	reader adapter.ReportReader,
	reportRepo adapter.ReportRepository,
	cache adapter.ReportListCache,
	publisher adapter.ReportEventPublisher,
	metrics adapter.ReportMetrics,
	policy valueobject.VariancePolicy,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		reader:     reader,
		reportRepo: reportRepo,
		cache:      cache,
		publisher:  publisher,
		metrics:    metrics,
		policy:     policy,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute validates the request, computes the report and persists it.
// Nothing is stored unless every stage succeeds.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*ReportView, error) {
	started := time.Now()

	view, err := uc.generate(ctx, input)
	uc.metrics.ObserveGeneration(string(input.Type), generationOutcome(err), time.Since(started))

	return view, err
}

func (uc *GenerateReportUseCase) generate(ctx context.Context, input GenerateReportInput) (*ReportView, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Format == "" {
		input.Format = entity.ReportFormatJSON
	}

	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	startDate := DateOnly(input.StartDate)
	endDate := DateOnly(input.EndDate)

	doc := &entity.ReportDocument{
		SchemaVersion: entity.ReportSchemaVersion,
		Type:          input.Type,
		GeneratedAt:   uc.now(),
		Period: entity.ReportWindow{
			StartDate: startDate.Format(DateLayout),
			EndDate:   endDate.Format(DateLayout),
		},
	}

	err := uc.reader.Read(ctx, func(ctx context.Context, sources adapter.ReportSources) error {
		return uc.buildBody(ctx, sources, input, startDate, endDate, doc)
	})
	if err != nil {
		return nil, err
	}

	data, err := EncodeDocument(doc)
	if err != nil {
		return nil, err
	}

	report := entity.NewFinancialReport(
		input.SchoolID,
		input.Name,
		input.Type,
		input.Period,
		startDate,
		endDate,
		input.BudgetID,
		input.Format,
		data,
		input.UserID,
	)

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	slog.InfoContext(ctx, "Financial report generated",
		"report_id", report.ID,
		"school_id", report.SchoolID,
		"type", report.Type,
		"start_date", doc.Period.StartDate,
		"end_date", doc.Period.EndDate,
	)

	uc.afterStore(ctx, report)

	view := newReportView(report, doc)
	return &view, nil
}

// buildBody runs the loader, fetcher, aggregator and variance stages for the report type.
func (uc *GenerateReportUseCase) buildBody(
	ctx context.Context,
	sources adapter.ReportSources,
	input GenerateReportInput,
	startDate, endDate time.Time,
	doc *entity.ReportDocument,
) error {
	switch input.Type {
	case entity.ReportTypeIncomeStatement, entity.ReportTypeCashFlow:
		types := append(append([]entity.CategoryType{}, entity.InflowCategoryTypes...), entity.OutflowCategoryTypes...)
		set, err := loadCategorySet(ctx, sources, input.SchoolID, types)
		if err != nil {
			return err
		}

		transactions, err := fetchPosted(ctx, sources, adapter.PostedTransactionQuery{
			SchoolID:    input.SchoolID,
			CategoryIDs: set.ids(),
			StartDate:   startDate,
			EndDate:     endDate,
			WithDetails: input.IncludeDetails,
		})
		if err != nil {
			return err
		}

		if input.Type == entity.ReportTypeIncomeStatement {
			doc.IncomeStatement = buildIncomeStatement(set, transactions, input.IncludeDetails)
		} else {
			doc.CashFlow = buildCashFlow(set, transactions, input.IncludeDetails, startDate, endDate)
		}
		return nil

	case entity.ReportTypeBalanceSheet:
		accounts, err := sources.Accounts.FindActiveByTypes(ctx, input.SchoolID, entity.BalanceSheetAccountTypes)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		doc.BalanceSheet = buildBalanceSheet(accounts, endDate)
		return nil

	case entity.ReportTypeBudgetVariance:
		budget, err := sources.Budgets.FindByID(ctx, input.SchoolID, *input.BudgetID)
		if err != nil {
			if errors.Is(err, domainerror.ErrBudgetNotFound) {
				return domainerror.NewBudgetError(
					domainerror.ErrCodeBudgetNotFound,
					"budget not found",
					domainerror.ErrBudgetNotFound,
				)
			}
			return fmt.Errorf("failed to load budget: %w", err)
		}

		categoryIDs := budget.CategoryIDs()
		categories := make(map[uuid.UUID]*entity.FinancialCategory, len(categoryIDs))
		if len(categoryIDs) > 0 {
			found, err := sources.Categories.FindByIDs(ctx, input.SchoolID, categoryIDs)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}
			for _, c := range found {
				categories[c.ID] = c
			}
		}

		transactions, err := fetchPosted(ctx, sources, adapter.PostedTransactionQuery{
			SchoolID:    input.SchoolID,
			CategoryIDs: categoryIDs,
			StartDate:   startDate,
			EndDate:     endDate,
		})
		if err != nil {
			return err
		}

		doc.BudgetVariance = buildBudgetVariance(budget, categories, transactions, uc.policy)
		return nil
	}

	return domainerror.NewReportError(
		domainerror.ErrCodeInvalidReportType,
		domainerror.ErrInvalidReportType.Error(),
		domainerror.ErrInvalidReportType,
	)
}

// afterStore invalidates cached lists and announces the new report.
// Failures here are logged and never fail the request.
func (uc *GenerateReportUseCase) afterStore(ctx context.Context, report *entity.FinancialReport) {
	if err := uc.cache.Invalidate(ctx, report.SchoolID); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate report list cache",
			"school_id", report.SchoolID,
			"error", err,
		)
	}

	err := uc.publisher.PublishReportGenerated(ctx, adapter.ReportGeneratedEvent{
		ReportID:  report.ID,
		SchoolID:  report.SchoolID,
		Type:      report.Type,
		Format:    report.Format,
		CreatedBy: report.CreatedBy,
		CreatedAt: report.CreatedAt,
	})
	uc.metrics.RecordEventPublish(err == nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to publish report generated event",
			"report_id", report.ID,
			"error", err,
		)
	}
}

// validateInput validates the input parameters.
func (uc *GenerateReportUseCase) validateInput(input GenerateReportInput) error {
	if input.Name == "" || len(input.Name) > MaxReportNameLength {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingReportName,
			"name is required and must be at most 255 characters",
			domainerror.ErrMissingReportName,
		)
	}

	if !input.Type.IsValid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			domainerror.ErrInvalidReportType.Error(),
			domainerror.ErrInvalidReportType,
		)
	}

	if !input.Period.IsValid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportPeriod,
			domainerror.ErrInvalidReportPeriod.Error(),
			domainerror.ErrInvalidReportPeriod,
		)
	}

	if !input.Format.IsValid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFormat,
			domainerror.ErrInvalidReportFormat.Error(),
			domainerror.ErrInvalidReportFormat,
		)
	}

	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateFormat,
			"startDate and endDate are required",
			domainerror.ErrInvalidDateFormat,
		)
	}

	if !DateOnly(input.EndDate).After(DateOnly(input.StartDate)) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			domainerror.ErrInvalidDateRange.Error(),
			domainerror.ErrInvalidDateRange,
		)
	}

	if input.Type == entity.ReportTypeBudgetVariance && (input.BudgetID == nil || *input.BudgetID == uuid.Nil) {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingBudgetID,
			domainerror.ErrMissingBudgetID.Error(),
			domainerror.ErrMissingBudgetID,
		)
	}

	return nil
}

// generationOutcome classifies a generation result for metrics.
func generationOutcome(err error) string {
	if err == nil {
		return adapter.OutcomeSuccess
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) && strings.HasPrefix(string(reportErr.Code), "RPT-01") {
		return adapter.OutcomeValidationError
	}
	if errors.Is(err, domainerror.ErrBudgetNotFound) {
		return adapter.OutcomeNotFound
	}
	return adapter.OutcomeError
}
