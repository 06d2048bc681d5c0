package dto

import (
	"time"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// BudgetItemRequest represents one planned category amount.
type BudgetItemRequest struct {
	CategoryID   string `json:"categoryId" binding:"required,uuid"`
	BudgetAmount int64  `json:"budgetAmount" binding:"gte=0"`
	Notes        string `json:"notes,omitempty"`
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name      string              `json:"name" binding:"required,max=150"`
	StartDate string              `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string              `json:"endDate" binding:"required,datetime=2006-01-02"`
	Items     []BudgetItemRequest `json:"items" binding:"required,min=1,dive"`
}

// BudgetItemResponse represents one budget item in API responses.
type BudgetItemResponse struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	BudgetAmount int64  `json:"budgetAmount"`
	Notes        string `json:"notes"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	StartDate   string               `json:"startDate"`
	EndDate     string               `json:"endDate"`
	TotalAmount int64                `json:"totalAmount"`
	Items       []BudgetItemResponse `json:"items,omitempty"`
	CreatedBy   string               `json:"createdBy"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:        budget.ID.String(),
		Name:      budget.Name,
		StartDate: budget.StartDate.Format("2006-01-02"),
		EndDate:   budget.EndDate.Format("2006-01-02"),
		Items:     make([]BudgetItemResponse, 0, len(budget.Items)),
		CreatedBy: budget.CreatedBy.String(),
		CreatedAt: budget.CreatedAt,
	}
	for _, item := range budget.Items {
		response.TotalAmount += item.BudgetAmount
		response.Items = append(response.Items, BudgetItemResponse{
			ID:           item.ID.String(),
			CategoryID:   item.CategoryID.String(),
			BudgetAmount: item.BudgetAmount,
			Notes:        item.Notes,
		})
	}
	return response
}

// ToBudgetListResponse converts a list of budgets to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	response := BudgetListResponse{
		Budgets: make([]BudgetResponse, 0, len(budgets)),
	}
	for _, budget := range budgets {
		response.Budgets = append(response.Budgets, ToBudgetResponse(budget))
	}
	return response
}
