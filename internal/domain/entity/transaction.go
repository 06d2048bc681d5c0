package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusDraft  TransactionStatus = "DRAFT"
	TransactionStatusPosted TransactionStatus = "POSTED"
	TransactionStatusVoid   TransactionStatus = "VOID"
)

// IsValid reports whether the status is one of the known values.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusDraft, TransactionStatusPosted, TransactionStatusVoid:
		return true
	}
	return false
}

// Transaction is a single money movement booked on a financial category.
// Amount is a positive value in minor currency units; the direction comes from the category type.
type Transaction struct {
	ID          uuid.UUID
	SchoolID    uuid.UUID
	CategoryID  uuid.UUID
	Date        time.Time
	Amount      int64
	Status      TransactionStatus
	Description string
	Reference   string
	PostedAt    *time.Time
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new DRAFT transaction.
func NewTransaction(schoolID, categoryID uuid.UUID, date time.Time, amount int64, description, reference string, createdBy uuid.UUID) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		SchoolID:    schoolID,
		CategoryID:  categoryID,
		Date:        date,
		Amount:      amount,
		Status:      TransactionStatusDraft,
		Description: description,
		Reference:   reference,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CanPost reports whether the transaction may move to POSTED.
func (t *Transaction) CanPost() bool {
	return t.Status == TransactionStatusDraft
}

// CanVoid reports whether the transaction may move to VOID.
func (t *Transaction) CanVoid() bool {
	return t.Status == TransactionStatusDraft || t.Status == TransactionStatusPosted
}

// TransactionFilter holds the filters for listing transactions.
type TransactionFilter struct {
	SchoolID   uuid.UUID
	Status     *TransactionStatus
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
