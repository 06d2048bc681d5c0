package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/dto"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/middleware"
)

const dateLayout = "2006-01-02"

// handleError maps domain errors to HTTP responses. Anything unrecognized is a 500.
func handleError(ctx *gin.Context, err error, internalCode string) {
	var (
		reportErr      *domainerror.ReportError
		budgetErr      *domainerror.BudgetError
		categoryErr    *domainerror.CategoryError
		accountErr     *domainerror.AccountError
		transactionErr *domainerror.TransactionError
	)

	switch {
	case errors.As(err, &reportErr):
		writeError(ctx, statusForReportError(reportErr.Code), reportErr.Message, string(reportErr.Code))
	case errors.As(err, &budgetErr):
		writeError(ctx, statusForBudgetError(budgetErr.Code), budgetErr.Message, string(budgetErr.Code))
	case errors.As(err, &categoryErr):
		writeError(ctx, statusForCategoryError(categoryErr.Code), categoryErr.Message, string(categoryErr.Code))
	case errors.As(err, &accountErr):
		writeError(ctx, statusForAccountError(accountErr.Code), accountErr.Message, string(accountErr.Code))
	case errors.As(err, &transactionErr):
		writeError(ctx, statusForTransactionError(transactionErr.Code), transactionErr.Message, string(transactionErr.Code))
	default:
		_ = ctx.Error(err)
		slog.ErrorContext(ctx.Request.Context(), "Request failed",
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  internalCode,
		})
	}
}

func writeError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func statusForReportError(code domainerror.ReportErrorCode) int {
	switch {
	case code == domainerror.ErrCodeReportNotFound:
		return http.StatusNotFound
	case code == domainerror.ErrCodeGenerationRateLimited:
		return http.StatusTooManyRequests
	case strings.HasPrefix(string(code), "RPT-01"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForBudgetError(code domainerror.BudgetErrorCode) int {
	if code == domainerror.ErrCodeBudgetNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func statusForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryCodeExists:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func statusForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountCodeExists:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound, domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidStatusTransition:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// tenant returns the school and user of the authenticated request, or writes a 401.
func tenant(ctx *gin.Context) (schoolID, userID uuid.UUID, ok bool) {
	schoolID, schoolOK := middleware.GetSchoolIDFromContext(ctx)
	userID, userOK := middleware.GetUserIDFromContext(ctx)
	if !schoolOK || !userOK {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, uuid.Nil, false
	}
	return schoolID, userID, true
}

// pathID parses the :id path parameter, writing a 400 with code on failure.
func pathID(ctx *gin.Context, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid ID format", code)
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD value as midnight UTC.
func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, value, time.UTC)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
