package dto

import (
	"time"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Code        string  `json:"code" binding:"required,max=30"`
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type" binding:"required,oneof=INCOME EXPENSE DONATION"`
	AccountID   *string `json:"accountId,omitempty" binding:"omitempty,uuid"`
}

// UpdateCategoryRequest represents the request body for category update.
// An empty accountId unlinks the account.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	AccountID   *string `json:"accountId,omitempty" binding:"omitempty,uuid"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ListCategoriesQuery represents the query parameters for listing categories.
type ListCategoriesQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE DONATION"`
	Active *bool  `form:"active"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	AccountID   *string   `json:"accountId"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain FinancialCategory entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.FinancialCategory) CategoryResponse {
	response := CategoryResponse{
		ID:          category.ID.String(),
		Code:        category.Code,
		Name:        category.Name,
		Description: category.Description,
		Type:        string(category.Type),
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
	if category.AccountID != nil {
		accountID := category.AccountID.String()
		response.AccountID = &accountID
	}
	return response
}

// ToCategoryListResponse converts a list of categories to CategoryListResponse.
func ToCategoryListResponse(categories []*entity.FinancialCategory) CategoryListResponse {
	response := CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, category := range categories {
		response.Categories = append(response.Categories, ToCategoryResponse(category))
	}
	return response
}
