package dto

// GenerateReportRequest represents the request body for report generation.
type GenerateReportRequest struct {
	Name           string  `json:"name" binding:"required,max=255"`
	Type           string  `json:"type" binding:"required,oneof=INCOME_STATEMENT BALANCE_SHEET CASH_FLOW BUDGET_VARIANCE"`
	Period         string  `json:"period" binding:"required,oneof=MONTHLY QUARTERLY SEMESTER YEARLY CUSTOM"`
	StartDate      string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate        string  `json:"endDate" binding:"required,datetime=2006-01-02"`
	BudgetID       *string `json:"budgetId,omitempty" binding:"omitempty,uuid"`
	IncludeDetails bool    `json:"includeDetails"`
	Format         string  `json:"format,omitempty" binding:"omitempty,oneof=JSON PDF EXCEL"`
}

// ListReportsQuery represents the query parameters for listing reports.
type ListReportsQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
	Type   string `form:"type"`
	Period string `form:"period"`
	Year   *int   `form:"year"`
	Status string `form:"status"`
}
