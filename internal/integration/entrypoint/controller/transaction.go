package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/usecase/transaction"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase         *transaction.ListTransactionsUseCase
	createUseCase       *transaction.CreateTransactionUseCase
	changeStatusUseCase *transaction.ChangeStatusUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	changeStatusUseCase *transaction.ChangeStatusUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		changeStatusUseCase: changeStatusUseCase,
	}
}

// List handles GET /api/finance/transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	var query dto.ListTransactionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeInvalidTransactionBody)))
		return
	}

	input := transaction.ListTransactionsInput{
		SchoolID: schoolID,
		Status:   query.Status,
		Page:     query.Page,
		Limit:    query.Limit,
	}
	if query.CategoryID != "" {
		categoryID, err := uuid.Parse(query.CategoryID)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, "categoryId must be a valid UUID", string(domainerror.ErrCodeInvalidTransactionBody))
			return
		}
		input.CategoryID = &categoryID
	}

	var err error
	if input.StartDate, err = parseOptionalDate(query.StartDate); err != nil {
		writeError(ctx, http.StatusBadRequest, "startDate must be a date in YYYY-MM-DD format", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}
	if input.EndDate, err = parseOptionalDate(query.EndDate); err != nil {
		writeError(ctx, http.StatusBadRequest, "endDate must be a date in YYYY-MM-DD format", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Result))
}

// Create handles POST /api/finance/transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	schoolID, userID, ok := tenant(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeInvalidTransactionBody)))
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "categoryId must be a valid UUID", string(domainerror.ErrCodeInvalidTransactionBody))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "date must be a date in YYYY-MM-DD format", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		SchoolID:    schoolID,
		UserID:      userID,
		CategoryID:  categoryID,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
		Reference:   req.Reference,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Post handles POST /api/finance/transactions/:id/post requests.
func (c *TransactionController) Post(ctx *gin.Context) {
	c.changeStatus(ctx, entity.TransactionStatusPosted)
}

// Void handles POST /api/finance/transactions/:id/void requests.
func (c *TransactionController) Void(ctx *gin.Context) {
	c.changeStatus(ctx, entity.TransactionStatusVoid)
}

func (c *TransactionController) changeStatus(ctx *gin.Context, target entity.TransactionStatus) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	transactionID, ok := pathID(ctx, string(domainerror.ErrCodeTransactionNotFound))
	if !ok {
		return
	}

	output, err := c.changeStatusUseCase.Execute(ctx.Request.Context(), transaction.ChangeStatusInput{
		SchoolID:      schoolID,
		TransactionID: transactionID,
		Target:        target,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeTransactionInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}
