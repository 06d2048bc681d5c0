package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents the ledger classification of a financial account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the known values.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// BalanceSheetAccountTypes are the account types that appear on a balance sheet.
var BalanceSheetAccountTypes = []AccountType{AccountTypeAsset, AccountTypeLiability, AccountTypeEquity}

// FinancialAccount is a ledger account of a school.
// Balance is in minor currency units and is maintained by the posting process.
type FinancialAccount struct {
	ID        uuid.UUID
	SchoolID  uuid.UUID
	Code      string
	Name      string
	Type      AccountType
	Balance   int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFinancialAccount creates a new active FinancialAccount with an opening balance.
func NewFinancialAccount(schoolID uuid.UUID, code, name string, accountType AccountType, openingBalance int64) *FinancialAccount {
	now := time.Now().UTC()

	return &FinancialAccount{
		ID:        uuid.New(),
		SchoolID:  schoolID,
		Code:      code,
		Name:      name,
		Type:      accountType,
		Balance:   openingBalance,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
