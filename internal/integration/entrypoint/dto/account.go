package dto

import (
	"time"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Code           string `json:"code" binding:"required,max=30"`
	Name           string `json:"name" binding:"required,max=100"`
	Type           string `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	OpeningBalance int64  `json:"openingBalance"`
}

// ListAccountsQuery represents the query parameters for listing accounts.
type ListAccountsQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   int64     `json:"balance"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain FinancialAccount entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.FinancialAccount) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Code:      account.Code,
		Name:      account.Name,
		Type:      string(account.Type),
		Balance:   account.Balance,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToAccountListResponse converts a list of accounts to AccountListResponse.
func ToAccountListResponse(accounts []*entity.FinancialAccount) AccountListResponse {
	response := AccountListResponse{
		Accounts: make([]AccountResponse, 0, len(accounts)),
	}
	for _, account := range accounts {
		response.Accounts = append(response.Accounts, ToAccountResponse(account))
	}
	return response
}
