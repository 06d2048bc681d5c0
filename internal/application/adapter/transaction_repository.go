package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// PostedTransactionQuery selects the posted transactions a report aggregates.
// StartDate and EndDate are both inclusive.
type PostedTransactionQuery struct {
	SchoolID    uuid.UUID
	CategoryIDs []uuid.UUID
	StartDate   time.Time
	EndDate     time.Time

	// WithDetails loads description and reference; otherwise only the columns aggregation needs are read.
	WithDetails bool
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// FindByFilter retrieves a page of transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter *entity.TransactionFilter) (*entity.TransactionListResult, error)

	// FindPosted retrieves every POSTED transaction matching the query, ordered by date.
	FindPosted(ctx context.Context, query PostedTransactionQuery) ([]*entity.Transaction, error)
}
