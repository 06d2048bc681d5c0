package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/madrasah-erp/finance/internal/domain/entity"
	"github.com/madrasah-erp/finance/internal/domain/valueobject"
)

// buildIncomeStatement aggregates income and expense categories.
func buildIncomeStatement(set *categorySet, transactions []*entity.Transaction, includeDetails bool) *entity.IncomeStatement {
	income, expenses := splitByDirection(aggregateByCategory(set, transactions, includeDetails))

	totalIncome := sumLines(income)
	totalExpenses := sumLines(expenses)
	applyShares(income, totalIncome)
	applyShares(expenses, totalExpenses)

	return &entity.IncomeStatement{
		Income:   income,
		Expenses: expenses,
		Summary: entity.IncomeStatementSummary{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			NetIncome:     totalIncome - totalExpenses,
		},
	}
}

// buildBalanceSheet lists balance sheet accounts with their running balances.
func buildBalanceSheet(accounts []*entity.FinancialAccount, asOf time.Time) *entity.BalanceSheet {
	sheet := &entity.BalanceSheet{
		AsOf:        asOf.Format(DateLayout),
		Assets:      make([]entity.AccountLine, 0),
		Liabilities: make([]entity.AccountLine, 0),
		Equity:      make([]entity.AccountLine, 0),
	}

	for _, a := range accounts {
		line := entity.AccountLine{
			AccountID: a.ID,
			Code:      a.Code,
			Name:      a.Name,
			Balance:   a.Balance,
		}

		switch a.Type {
		case entity.AccountTypeAsset:
			sheet.Assets = append(sheet.Assets, line)
			sheet.Summary.TotalAssets += a.Balance
		case entity.AccountTypeLiability:
			sheet.Liabilities = append(sheet.Liabilities, line)
			sheet.Summary.TotalLiabilities += a.Balance
		case entity.AccountTypeEquity:
			sheet.Equity = append(sheet.Equity, line)
			sheet.Summary.TotalEquity += a.Balance
		}
	}

	sheet.Summary.TotalLiabilitiesAndEquity = sheet.Summary.TotalLiabilities + sheet.Summary.TotalEquity
	sheet.Summary.IsBalanced = sheet.Summary.TotalAssets == sheet.Summary.TotalLiabilitiesAndEquity

	return sheet
}

// buildCashFlow aggregates inflows and outflows per category and per calendar month.
func buildCashFlow(set *categorySet, transactions []*entity.Transaction, includeDetails bool, startDate, endDate time.Time) *entity.CashFlowStatement {
	inflows, outflows := splitByDirection(aggregateByCategory(set, transactions, includeDetails))

	direction := make(map[uuid.UUID]entity.CategoryType, len(set.categories))
	for _, c := range set.categories {
		direction[c.ID] = c.Type
	}

	series := GenerateMonthSeries(startDate, endDate)
	buckets := make([]entity.CashFlowBucket, len(series))
	bucketIndex := make(map[string]int, len(series))
	for i, p := range series {
		buckets[i] = entity.CashFlowBucket{
			PeriodStart: p.PeriodStart.Format(DateLayout),
			Label:       p.PeriodLabel,
		}
		bucketIndex[MonthKey(p.PeriodStart)] = i
	}

	for _, t := range transactions {
		categoryType, ok := direction[t.CategoryID]
		if !ok {
			continue
		}
		i, ok := bucketIndex[MonthKey(t.Date)]
		if !ok {
			continue
		}
		if categoryType.IsInflow() {
			buckets[i].Inflow += t.Amount
		} else {
			buckets[i].Outflow += t.Amount
		}
	}
	for i := range buckets {
		buckets[i].Net = buckets[i].Inflow - buckets[i].Outflow
	}

	totalInflow := sumLines(inflows)
	totalOutflow := sumLines(outflows)
	applyShares(inflows, totalInflow)
	applyShares(outflows, totalOutflow)

	return &entity.CashFlowStatement{
		Inflows:  inflows,
		Outflows: outflows,
		Monthly:  buckets,
		Summary: entity.CashFlowSummary{
			TotalInflow:  totalInflow,
			TotalOutflow: totalOutflow,
			NetCashFlow:  totalInflow - totalOutflow,
		},
	}
}

// buildBudgetVariance compares every budget item with the actual amount booked on its category.
func buildBudgetVariance(
	budget *entity.Budget,
	categories map[uuid.UUID]*entity.FinancialCategory,
	transactions []*entity.Transaction,
	policy valueobject.VariancePolicy,
) *entity.BudgetVarianceReport {
	actuals := actualsByCategory(transactions)

	report := &entity.BudgetVarianceReport{
		BudgetID:   budget.ID,
		BudgetName: budget.Name,
		Threshold:  policy.ThresholdFloat(),
		Items:      make([]entity.BudgetVarianceItem, 0, len(budget.Items)),
	}

	for _, item := range budget.Items {
		name := item.CategoryID.String()
		var categoryType entity.CategoryType
		if c, ok := categories[item.CategoryID]; ok {
			name = c.Name
			categoryType = c.Type
		}

		line := policy.Evaluate(item.CategoryID, name, item.BudgetAmount, actuals[item.CategoryID])
		line.CategoryType = categoryType
		report.Items = append(report.Items, line)

		report.Summary.TotalBudget += line.BudgetAmount
		report.Summary.TotalActual += line.ActualAmount
		if line.Status == entity.VarianceStatusSignificant {
			report.Summary.SignificantItems++
		}
	}

	report.Summary.TotalVariance = report.Summary.TotalActual - report.Summary.TotalBudget
	report.Summary.VariancePercent = policy.Percent(report.Summary.TotalVariance, report.Summary.TotalBudget).InexactFloat64()

	return report
}

// applyShares sets each line's share of the section total, in percent.
func applyShares(lines []entity.CategoryLine, total int64) {
	for i := range lines {
		lines[i].Share = percentOf(lines[i].Total, total)
	}
}

// percentOf returns part / whole * 100 rounded to two places, or zero for an empty whole.
func percentOf(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(whole)).
		Round(2).
		InexactFloat64()
}
