package entity

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a spending and income plan of a school for a period, broken down per category.
type Budget struct {
	ID        uuid.UUID
	SchoolID  uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Items     []*BudgetItem
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BudgetItem is the planned amount of one category inside a budget.
type BudgetItem struct {
	ID           uuid.UUID
	BudgetID     uuid.UUID
	CategoryID   uuid.UUID
	BudgetAmount int64
	Notes        string
}

// NewBudget creates a new Budget and assigns the budget id to every item.
func NewBudget(schoolID uuid.UUID, name string, startDate, endDate time.Time, items []*BudgetItem, createdBy uuid.UUID) *Budget {
	now := time.Now().UTC()
	id := uuid.New()

	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.BudgetID = id
	}

	return &Budget{
		ID:        id,
		SchoolID:  schoolID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Items:     items,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryIDs returns the category ids referenced by the budget items, in item order.
func (b *Budget) CategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Items))
	for _, item := range b.Items {
		ids = append(ids, item.CategoryID)
	}
	return ids
}
