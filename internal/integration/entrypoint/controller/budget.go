package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/usecase/budget"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	createUseCase *budget.CreateBudgetUseCase
	getUseCase    *budget.GetBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
	}
}

// List handles GET /api/finance/budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{SchoolID: schoolID})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeBudgetInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Create handles POST /api/finance/budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	schoolID, userID, ok := tenant(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeInvalidBudgetBody)))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "startDate must be a date in YYYY-MM-DD format", string(domainerror.ErrCodeInvalidBudgetBody))
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "endDate must be a date in YYYY-MM-DD format", string(domainerror.ErrCodeInvalidBudgetBody))
		return
	}

	items := make([]budget.CreateBudgetItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		categoryID, err := uuid.Parse(item.CategoryID)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, "categoryId must be a valid UUID", string(domainerror.ErrCodeInvalidBudgetBody))
			return
		}
		items = append(items, budget.CreateBudgetItemInput{
			CategoryID:   categoryID,
			BudgetAmount: item.BudgetAmount,
			Notes:        item.Notes,
		})
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		SchoolID:  schoolID,
		UserID:    userID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Items:     items,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeBudgetInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /api/finance/budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	budgetID, ok := pathID(ctx, string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		SchoolID: schoolID,
		BudgetID: budgetID,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeBudgetInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}
