package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madrasah-erp/finance/internal/application/usecase/category"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /api/finance/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	var query dto.ListCategoriesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeInvalidCategoryType)))
		return
	}

	input := category.ListCategoriesInput{
		SchoolID: schoolID,
		Active:   query.Active,
	}
	if query.Type != "" {
		categoryType := entity.CategoryType(query.Type)
		input.Type = &categoryType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeCategoryInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /api/finance/categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeMissingCategoryFields)))
		return
	}

	accountID, err := parseOptionalUUID(req.AccountID)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "accountId must be a valid UUID", string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		SchoolID:    schoolID,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Type:        entity.CategoryType(req.Type),
		AccountID:   accountID,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeCategoryInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /api/finance/categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	categoryID, ok := pathID(ctx, string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeMissingCategoryFields)))
		return
	}

	input := category.UpdateCategoryInput{
		SchoolID:    schoolID,
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if req.AccountID != nil {
		if *req.AccountID == "" {
			input.UnlinkAccount = true
		} else {
			accountID, err := parseOptionalUUID(req.AccountID)
			if err != nil {
				writeError(ctx, http.StatusBadRequest, "accountId must be a valid UUID", string(domainerror.ErrCodeMissingCategoryFields))
				return
			}
			input.AccountID = accountID
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeCategoryInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}
