package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found for the school.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountCodeExists is returned when a school already has an account with the same code.
	ErrAccountCodeExists = errors.New("account code already exists")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("account type must be one of ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType AccountErrorCode = "ACC-010001"
	ErrCodeAccountCodeExists  AccountErrorCode = "ACC-010002"
	ErrCodeAccountNotFound    AccountErrorCode = "ACC-010003"
	ErrCodeInvalidAccountBody AccountErrorCode = "ACC-010004"

	// Internal errors (99XXXX)
	ErrCodeAccountInternalError AccountErrorCode = "ACC-990001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
