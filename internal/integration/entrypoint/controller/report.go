package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madrasah-erp/finance/internal/application/usecase/report"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/entrypoint/dto"
)

// ReportController handles financial report endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
	listUseCase     *report.ListReportsUseCase
	getUseCase      *report.GetReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateReportUseCase,
	listUseCase *report.ListReportsUseCase,
	getUseCase *report.GetReportUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
	}
}

// Generate handles POST /api/finance/reports requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	schoolID, userID, ok := tenant(ctx)
	if !ok {
		return
	}

	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeInvalidReportBody)))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, domainerror.ErrInvalidDateFormat.Error(), string(domainerror.ErrCodeInvalidDateFormat))
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, domainerror.ErrInvalidDateFormat.Error(), string(domainerror.ErrCodeInvalidDateFormat))
		return
	}
	budgetID, err := parseOptionalUUID(req.BudgetID)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "budgetId must be a valid UUID", string(domainerror.ErrCodeInvalidReportBody))
		return
	}

	view, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		SchoolID:       schoolID,
		UserID:         userID,
		Name:           req.Name,
		Type:           entity.ReportType(req.Type),
		Period:         entity.ReportPeriod(req.Period),
		StartDate:      startDate,
		EndDate:        endDate,
		BudgetID:       budgetID,
		IncludeDetails: req.IncludeDetails,
		Format:         entity.ReportFormat(req.Format),
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeReportInternalError))
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

// List handles GET /api/finance/reports requests.
func (c *ReportController) List(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	var query dto.ListReportsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err, string(domainerror.ErrCodeInvalidReportQuery)))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), report.ListReportsInput{
		SchoolID: schoolID,
		Type:     query.Type,
		Period:   query.Period,
		Status:   query.Status,
		Year:     query.Year,
		Page:     query.Page,
		Limit:    query.Limit,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeReportInternalError))
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Get handles GET /api/finance/reports/:id requests.
func (c *ReportController) Get(ctx *gin.Context) {
	schoolID, _, ok := tenant(ctx)
	if !ok {
		return
	}

	reportID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidReportQuery))
	if !ok {
		return
	}

	view, err := c.getUseCase.Execute(ctx.Request.Context(), report.GetReportInput{
		SchoolID: schoolID,
		ReportID: reportID,
	})
	if err != nil {
		handleError(ctx, err, string(domainerror.ErrCodeReportInternalError))
		return
	}

	ctx.JSON(http.StatusOK, view)
}
