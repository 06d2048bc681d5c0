package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportSchemaVersion is the version written into every new report document.
// Bump it whenever the layout of a report body changes incompatibly.
const ReportSchemaVersion = 1

// ReportDocument is the tagged envelope persisted in FinancialReport.Data.
// Exactly one of the body fields is set, matching Type.
type ReportDocument struct {
	SchemaVersion   int                   `json:"schemaVersion"`
	Type            ReportType            `json:"type"`
	GeneratedAt     time.Time             `json:"generatedAt"`
	Period          ReportWindow          `json:"period"`
	IncomeStatement *IncomeStatement      `json:"incomeStatement,omitempty"`
	BalanceSheet    *BalanceSheet         `json:"balanceSheet,omitempty"`
	CashFlow        *CashFlowStatement    `json:"cashFlow,omitempty"`
	BudgetVariance  *BudgetVarianceReport `json:"budgetVariance,omitempty"`
}

// ReportWindow is the inclusive date window a report covers, as YYYY-MM-DD.
type ReportWindow struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CategoryLine is the aggregate of one category inside a report section.
type CategoryLine struct {
	CategoryID       uuid.UUID         `json:"categoryId"`
	CategoryName     string            `json:"categoryName"`
	CategoryType     CategoryType      `json:"categoryType"`
	AccountID        *uuid.UUID        `json:"accountId,omitempty"`
	AccountCode      string            `json:"accountCode,omitempty"`
	AccountName      string            `json:"accountName,omitempty"`
	Total            int64             `json:"total"`
	Share            float64           `json:"share"`
	TransactionCount int               `json:"transactionCount"`
	Transactions     []TransactionLine `json:"transactions,omitempty"`
}

// TransactionLine is a single transaction listed when details are requested.
type TransactionLine struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
}

// IncomeStatement lists income and expense categories for the window.
type IncomeStatement struct {
	Income   []CategoryLine         `json:"income"`
	Expenses []CategoryLine         `json:"expenses"`
	Summary  IncomeStatementSummary `json:"summary"`
}

// IncomeStatementSummary holds the grand totals of an income statement.
type IncomeStatementSummary struct {
	TotalIncome   int64 `json:"totalIncome"`
	TotalExpenses int64 `json:"totalExpenses"`
	NetIncome     int64 `json:"netIncome"`
}

// AccountLine is one account with its balance on a balance sheet.
type AccountLine struct {
	AccountID uuid.UUID `json:"accountId"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
}

// BalanceSheet lists asset, liability and equity accounts.
type BalanceSheet struct {
	AsOf        string              `json:"asOf"`
	Assets      []AccountLine       `json:"assets"`
	Liabilities []AccountLine       `json:"liabilities"`
	Equity      []AccountLine       `json:"equity"`
	Summary     BalanceSheetSummary `json:"summary"`
}

// BalanceSheetSummary holds the totals and the accounting equation check.
type BalanceSheetSummary struct {
	TotalAssets               int64 `json:"totalAssets"`
	TotalLiabilities          int64 `json:"totalLiabilities"`
	TotalEquity               int64 `json:"totalEquity"`
	TotalLiabilitiesAndEquity int64 `json:"totalLiabilitiesAndEquity"`
	IsBalanced                bool  `json:"isBalanced"`
}

// CashFlowStatement lists inflows and outflows per category and per month.
type CashFlowStatement struct {
	Inflows  []CategoryLine   `json:"inflows"`
	Outflows []CategoryLine   `json:"outflows"`
	Monthly  []CashFlowBucket `json:"monthly"`
	Summary  CashFlowSummary  `json:"summary"`
}

// CashFlowBucket is the cash movement of one calendar month.
type CashFlowBucket struct {
	PeriodStart string `json:"periodStart"`
	Label       string `json:"label"`
	Inflow      int64  `json:"inflow"`
	Outflow     int64  `json:"outflow"`
	Net         int64  `json:"net"`
}

// CashFlowSummary holds the grand totals of a cash flow statement.
type CashFlowSummary struct {
	TotalInflow  int64 `json:"totalInflow"`
	TotalOutflow int64 `json:"totalOutflow"`
	NetCashFlow  int64 `json:"netCashFlow"`
}

// VarianceStatus flags how far an actual amount deviates from its budget.
type VarianceStatus string

const (
	VarianceStatusNormal      VarianceStatus = "NORMAL"
	VarianceStatusSignificant VarianceStatus = "SIGNIFICANT"
)

// BudgetVarianceItem compares one budget item with the actual amount booked.
type BudgetVarianceItem struct {
	CategoryID      uuid.UUID      `json:"categoryId"`
	CategoryName    string         `json:"categoryName"`
	CategoryType    CategoryType   `json:"categoryType,omitempty"`
	BudgetAmount    int64          `json:"budgetAmount"`
	ActualAmount    int64          `json:"actualAmount"`
	Variance        int64          `json:"variance"`
	VariancePercent float64        `json:"variancePercent"`
	Status          VarianceStatus `json:"status"`
}

// BudgetVarianceReport compares a budget with actuals for the window.
type BudgetVarianceReport struct {
	BudgetID   uuid.UUID             `json:"budgetId"`
	BudgetName string                `json:"budgetName"`
	Threshold  float64               `json:"threshold"`
	Items      []BudgetVarianceItem  `json:"items"`
	Summary    BudgetVarianceSummary `json:"summary"`
}

// BudgetVarianceSummary holds the totals of a budget variance report.
type BudgetVarianceSummary struct {
	TotalBudget      int64   `json:"totalBudget"`
	TotalActual      int64   `json:"totalActual"`
	TotalVariance    int64   `json:"totalVariance"`
	VariancePercent  float64 `json:"variancePercent"`
	SignificantItems int     `json:"significantItems"`
}
