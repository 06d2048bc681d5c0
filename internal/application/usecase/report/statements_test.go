package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrasah-erp/finance/internal/domain/entity"
	"github.com/madrasah-erp/finance/internal/domain/valueobject"
)

func posted(schoolID, categoryID uuid.UUID, amount int64, day int) *entity.Transaction {
	t := entity.NewTransaction(schoolID, categoryID, date(2025, 1, day), amount, "", "", uuid.New())
	t.Status = entity.TransactionStatusPosted
	return t
}

func TestAggregateByCategory(t *testing.T) {
	schoolID := uuid.New()
	accountID := uuid.New()
	spp := entity.NewFinancialCategory(schoolID, "4-100", "SPP", "", entity.CategoryTypeIncome, &accountID)
	infaq := entity.NewFinancialCategory(schoolID, "4-200", "Infaq", "", entity.CategoryTypeDonation, nil)
	salaries := entity.NewFinancialCategory(schoolID, "5-100", "Gaji Guru", "", entity.CategoryTypeExpense, nil)

	set := &categorySet{
		categories: []*entity.FinancialCategory{spp, infaq, salaries},
		accounts: map[uuid.UUID]*entity.FinancialAccount{
			accountID: {ID: accountID, Code: "1-100", Name: "Kas"},
		},
	}

	t.Run("sums amounts and counts per category", func(t *testing.T) {
		transactions := []*entity.Transaction{
			posted(schoolID, spp.ID, 500000, 5),
			posted(schoolID, spp.ID, 250000, 6),
			posted(schoolID, infaq.ID, 1000000, 7),
		}

		lines := aggregateByCategory(set, transactions, false)

		require.Len(t, lines, 3)
		assert.Equal(t, int64(750000), lines[0].Total)
		assert.Equal(t, 2, lines[0].TransactionCount)
		assert.Equal(t, "1-100", lines[0].AccountCode)
		assert.Equal(t, "Kas", lines[0].AccountName)
		assert.Equal(t, int64(1000000), lines[1].Total)
		assert.Equal(t, 1, lines[1].TransactionCount)
		assert.Nil(t, lines[0].Transactions)
	})

	t.Run("categories without transactions get a zero bucket", func(t *testing.T) {
		lines := aggregateByCategory(set, nil, false)

		require.Len(t, lines, 3)
		for _, line := range lines {
			assert.Zero(t, line.Total)
			assert.Zero(t, line.TransactionCount)
		}
	})

	t.Run("includes transaction lines when details are requested", func(t *testing.T) {
		tx := posted(schoolID, salaries.ID, 3000000, 25)
		tx.Description = "Gaji Januari"

		lines := aggregateByCategory(set, []*entity.Transaction{tx}, true)

		require.Len(t, lines[2].Transactions, 1)
		assert.Equal(t, tx.ID, lines[2].Transactions[0].ID)
		assert.Equal(t, "2025-01-25", lines[2].Transactions[0].Date)
		assert.Equal(t, "Gaji Januari", lines[2].Transactions[0].Description)
	})

	t.Run("ignores transactions of unknown categories", func(t *testing.T) {
		lines := aggregateByCategory(set, []*entity.Transaction{posted(schoolID, uuid.New(), 999, 1)}, false)

		assert.Zero(t, sumLines(lines))
	})
}

func TestBuildIncomeStatement(t *testing.T) {
	schoolID := uuid.New()
	spp := entity.NewFinancialCategory(schoolID, "4-100", "SPP", "", entity.CategoryTypeIncome, nil)
	infaq := entity.NewFinancialCategory(schoolID, "4-200", "Infaq", "", entity.CategoryTypeDonation, nil)
	utilities := entity.NewFinancialCategory(schoolID, "5-200", "Listrik", "", entity.CategoryTypeExpense, nil)
	set := &categorySet{
		categories: []*entity.FinancialCategory{spp, infaq, utilities},
		accounts:   map[uuid.UUID]*entity.FinancialAccount{},
	}

	statement := buildIncomeStatement(set, []*entity.Transaction{
		posted(schoolID, spp.ID, 500000, 3),
		posted(schoolID, infaq.ID, 1000000, 4),
		posted(schoolID, utilities.ID, 400000, 10),
	}, false)

	require.Len(t, statement.Income, 2)
	require.Len(t, statement.Expenses, 1)
	assert.Equal(t, int64(1500000), statement.Summary.TotalIncome)
	assert.Equal(t, int64(400000), statement.Summary.TotalExpenses)
	assert.Equal(t, int64(1100000), statement.Summary.NetIncome)
	assert.Equal(t, sumLines(statement.Income), statement.Summary.TotalIncome)
	assert.Equal(t, sumLines(statement.Expenses), statement.Summary.TotalExpenses)
	assert.InDelta(t, 33.33, statement.Income[0].Share, 0.001)
	assert.InDelta(t, 66.67, statement.Income[1].Share, 0.001)
}

func TestBuildBalanceSheet(t *testing.T) {
	schoolID := uuid.New()

	t.Run("balanced when assets equal liabilities plus equity", func(t *testing.T) {
		sheet := buildBalanceSheet([]*entity.FinancialAccount{
			entity.NewFinancialAccount(schoolID, "1-100", "Kas", entity.AccountTypeAsset, 7000000),
			entity.NewFinancialAccount(schoolID, "1-200", "Bank", entity.AccountTypeAsset, 3000000),
			entity.NewFinancialAccount(schoolID, "2-100", "Utang Usaha", entity.AccountTypeLiability, 2000000),
			entity.NewFinancialAccount(schoolID, "3-100", "Modal Yayasan", entity.AccountTypeEquity, 8000000),
		}, date(2025, 6, 30))

		assert.Equal(t, "2025-06-30", sheet.AsOf)
		assert.Len(t, sheet.Assets, 2)
		assert.Equal(t, int64(10000000), sheet.Summary.TotalAssets)
		assert.Equal(t, int64(10000000), sheet.Summary.TotalLiabilitiesAndEquity)
		assert.True(t, sheet.Summary.IsBalanced)
	})

	t.Run("not balanced when the equation does not hold", func(t *testing.T) {
		sheet := buildBalanceSheet([]*entity.FinancialAccount{
			entity.NewFinancialAccount(schoolID, "1-100", "Kas", entity.AccountTypeAsset, 5000000),
			entity.NewFinancialAccount(schoolID, "3-100", "Modal Yayasan", entity.AccountTypeEquity, 4000000),
		}, date(2025, 6, 30))

		assert.False(t, sheet.Summary.IsBalanced)
	})

	t.Run("empty school is trivially balanced", func(t *testing.T) {
		sheet := buildBalanceSheet(nil, date(2025, 6, 30))

		assert.NotNil(t, sheet.Assets)
		assert.True(t, sheet.Summary.IsBalanced)
	})
}

func TestBuildCashFlow(t *testing.T) {
	schoolID := uuid.New()
	spp := entity.NewFinancialCategory(schoolID, "4-100", "SPP", "", entity.CategoryTypeIncome, nil)
	repairs := entity.NewFinancialCategory(schoolID, "5-300", "Perbaikan", "", entity.CategoryTypeExpense, nil)
	set := &categorySet{
		categories: []*entity.FinancialCategory{spp, repairs},
		accounts:   map[uuid.UUID]*entity.FinancialAccount{},
	}

	march := posted(schoolID, repairs.ID, 200000, 1)
	march.Date = date(2025, 3, 15)

	flow := buildCashFlow(set, []*entity.Transaction{
		posted(schoolID, spp.ID, 500000, 10),
		march,
	}, false, date(2025, 1, 1), date(2025, 3, 31))

	require.Len(t, flow.Monthly, 3)
	assert.Equal(t, "Jan 2025", flow.Monthly[0].Label)
	assert.Equal(t, int64(500000), flow.Monthly[0].Inflow)
	assert.Zero(t, flow.Monthly[1].Inflow)
	assert.Zero(t, flow.Monthly[1].Outflow)
	assert.Equal(t, int64(-200000), flow.Monthly[2].Net)
	assert.Equal(t, int64(300000), flow.Summary.NetCashFlow)
}

func TestBuildBudgetVariance(t *testing.T) {
	schoolID := uuid.New()
	operations := entity.NewFinancialCategory(schoolID, "5-100", "Operasional", "", entity.CategoryTypeExpense, nil)
	events := entity.NewFinancialCategory(schoolID, "5-400", "Kegiatan", "", entity.CategoryTypeExpense, nil)

	budget := entity.NewBudget(schoolID, "RAPBS 2025", date(2025, 1, 1), date(2025, 12, 31), []*entity.BudgetItem{
		{CategoryID: operations.ID, BudgetAmount: 1000000},
		{CategoryID: events.ID, BudgetAmount: 0},
	}, uuid.New())

	report := buildBudgetVariance(budget, map[uuid.UUID]*entity.FinancialCategory{
		operations.ID: operations,
		events.ID:     events,
	}, []*entity.Transaction{
		posted(schoolID, operations.ID, 1200000, 20),
		posted(schoolID, events.ID, 50000, 21),
	}, valueobject.DefaultVariancePolicy())

	require.Len(t, report.Items, 2)

	item := report.Items[0]
	assert.Equal(t, "Operasional", item.CategoryName)
	assert.Equal(t, int64(200000), item.Variance)
	assert.InDelta(t, 20.0, item.VariancePercent, 0.0001)
	assert.Equal(t, entity.VarianceStatusSignificant, item.Status)

	zero := report.Items[1]
	assert.Equal(t, int64(50000), zero.Variance)
	assert.Zero(t, zero.VariancePercent)
	assert.Equal(t, entity.VarianceStatusNormal, zero.Status)

	assert.Equal(t, int64(1000000), report.Summary.TotalBudget)
	assert.Equal(t, int64(1250000), report.Summary.TotalActual)
	assert.Equal(t, 1, report.Summary.SignificantItems)
	assert.InDelta(t, 25.0, report.Summary.VariancePercent, 0.0001)
	assert.Equal(t, 10.0, report.Threshold)
}

func TestGenerateMonthSeries(t *testing.T) {
	series := GenerateMonthSeries(date(2024, 11, 15), date(2025, 2, 3))

	require.Len(t, series, 4)
	assert.Equal(t, "Nov 2024", series[0].PeriodLabel)
	assert.Equal(t, "Des 2024", series[1].PeriodLabel)
	assert.Equal(t, date(2025, 2, 1), series[3].PeriodStart)
	assert.Equal(t, date(2025, 2, 28), series[3].PeriodEnd)
}
