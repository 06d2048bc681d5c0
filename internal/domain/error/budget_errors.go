package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found for the school.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrMissingBudgetName is returned when the budget name is empty.
	ErrMissingBudgetName = errors.New("budget name is required")

	// ErrEmptyBudget is returned when a budget has no items.
	ErrEmptyBudget = errors.New("budget must have at least one item")

	// ErrDuplicateBudgetCategory is returned when two items reference the same category.
	ErrDuplicateBudgetCategory = errors.New("each category may appear only once in a budget")

	// ErrNegativeBudgetAmount is returned when an item has a negative planned amount.
	ErrNegativeBudgetAmount = errors.New("budget amount must not be negative")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBudgetName       BudgetErrorCode = "BDG-010001"
	ErrCodeEmptyBudget             BudgetErrorCode = "BDG-010002"
	ErrCodeDuplicateBudgetCategory BudgetErrorCode = "BDG-010003"
	ErrCodeNegativeBudgetAmount    BudgetErrorCode = "BDG-010004"
	ErrCodeInvalidBudgetDateRange  BudgetErrorCode = "BDG-010005"
	ErrCodeUnknownBudgetCategory   BudgetErrorCode = "BDG-010006"
	ErrCodeInvalidBudgetBody       BudgetErrorCode = "BDG-010007"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BDG-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
