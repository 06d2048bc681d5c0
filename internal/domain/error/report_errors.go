package error

import "errors"

// Report domain errors.
var (
	// ErrReportNotFound is returned when a report is not found for the school.
	ErrReportNotFound = errors.New("report not found")

	// ErrMissingReportName is returned when the report name is empty.
	ErrMissingReportName = errors.New("name is required")

	// ErrInvalidReportType is returned when the report type is not recognized.
	ErrInvalidReportType = errors.New("type must be one of INCOME_STATEMENT, BALANCE_SHEET, CASH_FLOW, BUDGET_VARIANCE")

	// ErrInvalidReportPeriod is returned when the report period is not recognized.
	ErrInvalidReportPeriod = errors.New("period must be one of MONTHLY, QUARTERLY, SEMESTER, YEARLY, CUSTOM")

	// ErrInvalidReportFormat is returned when the report format is not recognized.
	ErrInvalidReportFormat = errors.New("format must be one of JSON, PDF, EXCEL")

	// ErrInvalidReportStatus is returned when a status filter is not recognized.
	ErrInvalidReportStatus = errors.New("status must be one of DRAFT, GENERATED, EXPORTED")

	// ErrInvalidDateFormat is returned when a date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when the end date is not after the start date.
	ErrInvalidDateRange = errors.New("endDate must be after startDate")

	// ErrMissingBudgetID is returned when a budget variance report has no budget.
	ErrMissingBudgetID = errors.New("budgetId is required for BUDGET_VARIANCE reports")

	// ErrUnsupportedSchemaVersion is returned when a stored report document has an unknown schema version.
	ErrUnsupportedSchemaVersion = errors.New("unsupported report schema version")

	// ErrGenerationRateLimited is returned when a user generates reports too quickly.
	ErrGenerationRateLimited = errors.New("too many report generation requests")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingReportName   ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportType   ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange    ReportErrorCode = "RPT-010003"
	ErrCodeMissingBudgetID     ReportErrorCode = "RPT-010004"
	ErrCodeInvalidReportPeriod ReportErrorCode = "RPT-010005"
	ErrCodeInvalidReportFormat ReportErrorCode = "RPT-010006"
	ErrCodeInvalidDateFormat   ReportErrorCode = "RPT-010007"
	ErrCodeInvalidReportStatus ReportErrorCode = "RPT-010008"
	ErrCodeInvalidReportQuery  ReportErrorCode = "RPT-010009"
	ErrCodeReportNotFound      ReportErrorCode = "RPT-010010"
	ErrCodeInvalidReportBody   ReportErrorCode = "RPT-010011"

	// Rate limiting errors (02XXXX)
	ErrCodeGenerationRateLimited ReportErrorCode = "RPT-020001"

	// Document errors (03XXXX)
	ErrCodeUnsupportedSchemaVersion ReportErrorCode = "RPT-030001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
