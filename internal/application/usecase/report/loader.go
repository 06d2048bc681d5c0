package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// categorySet is the output of the category/account loader.
type categorySet struct {
	categories []*entity.FinancialCategory
	accounts   map[uuid.UUID]*entity.FinancialAccount
}

// ids returns the category ids in load order.
func (s *categorySet) ids() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.categories))
	for _, c := range s.categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// loadCategorySet loads the active categories of the given types and then their linked accounts.
// An empty result is not an error.
func loadCategorySet(ctx context.Context, sources adapter.ReportSources, schoolID uuid.UUID, types []entity.CategoryType) (*categorySet, error) {
	categories, err := sources.Categories.FindActiveByTypes(ctx, schoolID, types)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	set := &categorySet{
		categories: categories,
		accounts:   make(map[uuid.UUID]*entity.FinancialAccount),
	}

	seen := make(map[uuid.UUID]struct{})
	accountIDs := make([]uuid.UUID, 0, len(categories))
	for _, c := range categories {
		if c.AccountID == nil {
			continue
		}
		if _, ok := seen[*c.AccountID]; ok {
			continue
		}
		seen[*c.AccountID] = struct{}{}
		accountIDs = append(accountIDs, *c.AccountID)
	}

	if len(accountIDs) == 0 {
		return set, nil
	}

	accounts, err := sources.Accounts.FindByIDs(ctx, schoolID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, a := range accounts {
		set.accounts[a.ID] = a
	}

	return set, nil
}

// fetchPosted loads the POSTED transactions of the given categories inside the inclusive window.
func fetchPosted(ctx context.Context, sources adapter.ReportSources, query adapter.PostedTransactionQuery) ([]*entity.Transaction, error) {
	if len(query.CategoryIDs) == 0 {
		return nil, nil
	}

	transactions, err := sources.Transactions.FindPosted(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return transactions, nil
}
