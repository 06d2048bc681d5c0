package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madrasah-erp/finance/internal/application/usecase/account"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/dto"
)

// AccountController handles chart of accounts endpoints.
type AccountController struct {
	listUseCase   *account.ListAccountsUseCase
	createUseCase *account.CreateAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(listUseCase *account.ListAccountsUseCase, createUseCase *account.CreateAccountUseCase) *AccountController {
	return &AccountController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /api/finance/accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	var query dto.ListAccountsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeInvalidAccountType)))
		return
	}

	input := account.ListAccountsInput{SchoolID: schoolID}
	if query.Type != "" {
		accountType := entity.AccountType(query.Type)
		input.Type = &accountType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeAccountInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// Create handles POST /api/finance/accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeInvalidAccountBody)))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		SchoolID:       schoolID,
		Code:           req.Code,
		Name:           req.Name,
		Type:           entity.AccountType(req.Type),
		OpeningBalance: req.OpeningBalance,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeAccountInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}
