package report

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/domain/valueobject"
)

type generateFixture struct {
	store     *store
	cache     *memoryCache
	publisher *recordingPublisher
	metrics   *recordingMetrics
	useCase   *GenerateReportUseCase
	schoolID  uuid.UUID
	userID    uuid.UUID
}

func newGenerateFixture() *generateFixture {
	f := &generateFixture{
		store:     &store{},
		cache:     newMemoryCache(),
		publisher: &recordingPublisher{},
		metrics:   &recordingMetrics{},
		schoolID:  uuid.New(),
		userID:    uuid.New(),
	}
	f.useCase = NewGenerateReportUseCase(
		directReader{f.store},
		&fakeReportRepo{f.store},
		f.cache,
		f.publisher,
		f.metrics,
		valueobject.DefaultVariancePolicy(),
	)
	return f
}

func (f *generateFixture) input(reportType entity.ReportType) GenerateReportInput {
	return GenerateReportInput{
		SchoolID:  f.schoolID,
		UserID:    f.userID,
		Name:      "Laporan Januari",
		Type:      reportType,
		Period:    entity.ReportPeriodMonthly,
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 1, 31),
		Format:    entity.ReportFormatJSON,
	}
}

func (f *generateFixture) category(name string, categoryType entity.CategoryType) *entity.FinancialCategory {
	c := entity.NewFinancialCategory(f.schoolID, "", name, "", categoryType, nil)
	f.store.categories = append(f.store.categories, c)
	return c
}

func (f *generateFixture) transaction(categoryID uuid.UUID, amount int64, day int, status entity.TransactionStatus) {
	t := entity.NewTransaction(f.schoolID, categoryID, date(2025, 1, day), amount, "", "", f.userID)
	t.Status = status
	f.store.transactions = append(f.store.transactions, t)
}

func TestGenerateReport_IncomeStatement(t *testing.T) {
	f := newGenerateFixture()
	spp := f.category("SPP", entity.CategoryTypeIncome)
	infaq := f.category("Infaq", entity.CategoryTypeDonation)
	f.category("Listrik", entity.CategoryTypeExpense)

	f.transaction(spp.ID, 500000, 10, entity.TransactionStatusPosted)
	f.transaction(infaq.ID, 1000000, 12, entity.TransactionStatusPosted)
	f.transaction(spp.ID, 750000, 15, entity.TransactionStatusDraft)
	f.transaction(spp.ID, 900000, 16, entity.TransactionStatusVoid)

	view, err := f.useCase.Execute(context.Background(), f.input(entity.ReportTypeIncomeStatement))
	require.NoError(t, err)

	assert.Equal(t, entity.ReportStatusGenerated, view.Status)
	assert.Equal(t, "2025-01-01", view.StartDate)
	assert.Equal(t, f.userID, view.CreatedBy)
	require.NotNil(t, view.Data)
	require.NotNil(t, view.Data.IncomeStatement)

	statement := view.Data.IncomeStatement
	assert.Equal(t, int64(1500000), statement.Summary.TotalIncome)
	assert.Equal(t, int64(0), statement.Summary.TotalExpenses)
	assert.Equal(t, int64(1500000), statement.Summary.NetIncome)
	require.Len(t, statement.Income, 2)
	assert.Equal(t, 1, statement.Income[0].TransactionCount)
	assert.Equal(t, 1, statement.Income[1].TransactionCount)
	require.Len(t, statement.Expenses, 1)
	assert.Zero(t, statement.Expenses[0].TransactionCount)

	require.Len(t, f.store.reports, 1)
	stored, err := DecodeDocument(f.store.reports[0].Data)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportSchemaVersion, stored.SchemaVersion)
	assert.Equal(t, entity.ReportTypeIncomeStatement, stored.Type)

	assert.Equal(t, []uuid.UUID{f.schoolID}, f.cache.invalidated)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, view.ID, f.publisher.events[0].ReportID)
	assert.Equal(t, []string{adapter.OutcomeSuccess}, f.metrics.outcomes)
}

func TestGenerateReport_FetchesInclusiveWindowAndNarrowColumns(t *testing.T) {
	f := newGenerateFixture()
	spp := f.category("SPP", entity.CategoryTypeIncome)
	f.transaction(spp.ID, 100, 1, entity.TransactionStatusPosted)
	f.transaction(spp.ID, 200, 31, entity.TransactionStatusPosted)

	view, err := f.useCase.Execute(context.Background(), f.input(entity.ReportTypeIncomeStatement))
	require.NoError(t, err)

	assert.Equal(t, int64(300), view.Data.IncomeStatement.Summary.TotalIncome)
	require.Len(t, f.store.postedQueries, 1)
	assert.False(t, f.store.postedQueries[0].WithDetails)
	assert.Equal(t, date(2025, 1, 31), f.store.postedQueries[0].EndDate)
}

func TestGenerateReport_NoCategoriesProducesEmptyReport(t *testing.T) {
	f := newGenerateFixture()

	view, err := f.useCase.Execute(context.Background(), f.input(entity.ReportTypeIncomeStatement))
	require.NoError(t, err)

	assert.Empty(t, view.Data.IncomeStatement.Income)
	assert.Zero(t, view.Data.IncomeStatement.Summary.NetIncome)
	assert.Empty(t, f.store.postedQueries)
	assert.Len(t, f.store.reports, 1)
}

func TestGenerateReport_BalanceSheet(t *testing.T) {
	f := newGenerateFixture()
	f.store.accounts = []*entity.FinancialAccount{
		entity.NewFinancialAccount(f.schoolID, "1-100", "Kas", entity.AccountTypeAsset, 5000000),
		entity.NewFinancialAccount(f.schoolID, "2-100", "Utang", entity.AccountTypeLiability, 1000000),
		entity.NewFinancialAccount(f.schoolID, "3-100", "Modal", entity.AccountTypeEquity, 4000000),
		entity.NewFinancialAccount(f.schoolID, "4-100", "Pendapatan SPP", entity.AccountTypeRevenue, 9000000),
	}

	view, err := f.useCase.Execute(context.Background(), f.input(entity.ReportTypeBalanceSheet))
	require.NoError(t, err)

	sheet := view.Data.BalanceSheet
	require.NotNil(t, sheet)
	assert.Equal(t, int64(5000000), sheet.Summary.TotalAssets)
	assert.True(t, sheet.Summary.IsBalanced)
	assert.Equal(t, sheet.Summary.TotalAssets == sheet.Summary.TotalLiabilities+sheet.Summary.TotalEquity, sheet.Summary.IsBalanced)
}

func TestGenerateReport_BudgetVariance(t *testing.T) {
	f := newGenerateFixture()
	operations := f.category("Operasional", entity.CategoryTypeExpense)
	f.transaction(operations.ID, 1200000, 20, entity.TransactionStatusPosted)

	budget := entity.NewBudget(f.schoolID, "RAPBS Januari", date(2025, 1, 1), date(2025, 1, 31), []*entity.BudgetItem{
		{CategoryID: operations.ID, BudgetAmount: 1000000},
	}, f.userID)
	f.store.budgets = append(f.store.budgets, budget)

	input := f.input(entity.ReportTypeBudgetVariance)
	input.BudgetID = &budget.ID

	view, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)

	variance := view.Data.BudgetVariance
	require.NotNil(t, variance)
	require.Len(t, variance.Items, 1)
	assert.Equal(t, int64(200000), variance.Items[0].Variance)
	assert.InDelta(t, 20.0, variance.Items[0].VariancePercent, 0.0001)
	assert.Equal(t, entity.VarianceStatusSignificant, variance.Items[0].Status)
	assert.Equal(t, &budget.ID, view.BudgetID)
}

func TestGenerateReport_BudgetNotFound(t *testing.T) {
	f := newGenerateFixture()
	input := f.input(entity.ReportTypeBudgetVariance)
	missing := uuid.New()
	input.BudgetID = &missing

	_, err := f.useCase.Execute(context.Background(), input)

	var budgetErr *domainerror.BudgetError
	require.True(t, errors.As(err, &budgetErr))
	assert.Equal(t, domainerror.ErrCodeBudgetNotFound, budgetErr.Code)
	assert.Empty(t, f.store.reports)
	assert.Empty(t, f.publisher.events)
	assert.Equal(t, []string{adapter.OutcomeNotFound}, f.metrics.outcomes)
}

func TestGenerateReport_Validation(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*GenerateReportInput)
		expectedCode domainerror.ReportErrorCode
	}{
		{"missing name", func(in *GenerateReportInput) { in.Name = "   " }, domainerror.ErrCodeMissingReportName},
		{"unknown type", func(in *GenerateReportInput) { in.Type = "PROFIT" }, domainerror.ErrCodeInvalidReportType},
		{"unknown period", func(in *GenerateReportInput) { in.Period = "WEEKLY" }, domainerror.ErrCodeInvalidReportPeriod},
		{"unknown format", func(in *GenerateReportInput) { in.Format = "CSV" }, domainerror.ErrCodeInvalidReportFormat},
		{"end equals start", func(in *GenerateReportInput) { in.EndDate = in.StartDate }, domainerror.ErrCodeInvalidDateRange},
		{"end before start", func(in *GenerateReportInput) { in.EndDate = date(2024, 12, 1) }, domainerror.ErrCodeInvalidDateRange},
		{"budget variance without budget", func(in *GenerateReportInput) { in.Type = entity.ReportTypeBudgetVariance }, domainerror.ErrCodeMissingBudgetID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGenerateFixture()
			input := f.input(entity.ReportTypeIncomeStatement)
			tt.mutate(&input)

			_, err := f.useCase.Execute(context.Background(), input)

			var reportErr *domainerror.ReportError
			require.True(t, errors.As(err, &reportErr))
			assert.Equal(t, tt.expectedCode, reportErr.Code)
			assert.Empty(t, f.store.reports)
			assert.Equal(t, []string{adapter.OutcomeValidationError}, f.metrics.outcomes)
		})
	}
}

func TestGenerateReport_DefaultsFormatToJSON(t *testing.T) {
	f := newGenerateFixture()
	input := f.input(entity.ReportTypeCashFlow)
	input.Format = ""

	view, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, entity.ReportFormatJSON, view.Format)
	require.NotNil(t, view.Data.CashFlow)
	assert.Len(t, view.Data.CashFlow.Monthly, 1)
}

func TestGenerateReport_StoreFailureIsReturned(t *testing.T) {
	f := newGenerateFixture()
	f.store.failReportCreate = errors.New("connection reset")

	_, err := f.useCase.Execute(context.Background(), f.input(entity.ReportTypeIncomeStatement))

	require.Error(t, err)
	assert.Empty(t, f.publisher.events)
	assert.Equal(t, []string{adapter.OutcomeError}, f.metrics.outcomes)
}

func TestGenerateReport_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newGenerateFixture()
	f.publisher.err = errors.New("broker unavailable")

	view, err := f.useCase.Execute(context.Background(), f.input(entity.ReportTypeIncomeStatement))

	require.NoError(t, err)
	assert.NotNil(t, view)
	assert.Equal(t, 1, f.metrics.failed)
	assert.Len(t, f.store.reports, 1)
}

func TestGenerateReport_RegenerationCreatesNewRow(t *testing.T) {
	f := newGenerateFixture()
	input := f.input(entity.ReportTypeIncomeStatement)

	first, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)
	second, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.store.reports, 2)
}
