package dto

import (
	"time"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	CategoryID  string `json:"categoryId" binding:"required,uuid"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=255"`
	Reference   string `json:"reference,omitempty" binding:"max=100"`
}

// ListTransactionsQuery represents the query parameters for listing transactions.
type ListTransactionsQuery struct {
	Status     string `form:"status"`
	CategoryID string `form:"categoryId" binding:"omitempty,uuid"`
	StartDate  string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string     `json:"id"`
	CategoryID  string     `json:"categoryId"`
	Date        string     `json:"date"`
	Amount      int64      `json:"amount"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	Reference   string     `json:"reference"`
	PostedAt    *time.Time `json:"postedAt"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PaginationResponse represents pagination metadata.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		CategoryID:  transaction.CategoryID.String(),
		Date:        transaction.Date.Format("2006-01-02"),
		Amount:      transaction.Amount,
		Status:      string(transaction.Status),
		Description: transaction.Description,
		Reference:   transaction.Reference,
		PostedAt:    transaction.PostedAt,
		CreatedBy:   transaction.CreatedBy.String(),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

// ToTransactionListResponse converts a page of transactions to TransactionListResponse.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(result.Transactions)),
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for _, transaction := range result.Transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(transaction))
	}
	return response
}
