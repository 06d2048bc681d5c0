package report

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// store is an in-memory backing for the fake repositories.
type store struct {
	categories   []*entity.FinancialCategory
	accounts     []*entity.FinancialAccount
	transactions []*entity.Transaction
	budgets      []*entity.Budget
	reports      []*entity.FinancialReport

	failReportCreate error
	onFindByFilter   func()
	postedQueries    []adapter.PostedTransactionQuery
}

func (s *store) sources() adapter.ReportSources {
	return adapter.ReportSources{
		Categories:   &fakeCategoryRepo{s},
		Accounts:     &fakeAccountRepo{s},
		Transactions: &fakeTransactionRepo{s},
		Budgets:      &fakeBudgetRepo{s},
	}
}

type directReader struct{ s *store }

func (r directReader) Read(ctx context.Context, fn func(ctx context.Context, sources adapter.ReportSources) error) error {
	return fn(ctx, r.s.sources())
}

type fakeCategoryRepo struct{ s *store }

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.FinancialCategory) error {
	r.s.categories = append(r.s.categories, c)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, schoolID, id uuid.UUID) (*entity.FinancialCategory, error) {
	for _, c := range r.s.categories {
		if c.SchoolID == schoolID && c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByIDs(_ context.Context, schoolID uuid.UUID, ids []uuid.UUID) ([]*entity.FinancialCategory, error) {
	var out []*entity.FinancialCategory
	for _, c := range r.s.categories {
		if c.SchoolID == schoolID && containsID(ids, c.ID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindActiveByTypes(_ context.Context, schoolID uuid.UUID, types []entity.CategoryType) ([]*entity.FinancialCategory, error) {
	var out []*entity.FinancialCategory
	for _, c := range r.s.categories {
		if c.SchoolID != schoolID || !c.IsActive {
			continue
		}
		for _, t := range types {
			if c.Type == t {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) List(_ context.Context, schoolID uuid.UUID, _ *entity.CategoryType, _ *bool) ([]*entity.FinancialCategory, error) {
	return r.s.categories, nil
}

func (r *fakeCategoryRepo) ExistsByCode(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, _ *entity.FinancialCategory) error {
	return nil
}

type fakeAccountRepo struct{ s *store }

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.FinancialAccount) error {
	r.s.accounts = append(r.s.accounts, a)
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, schoolID, id uuid.UUID) (*entity.FinancialAccount, error) {
	for _, a := range r.s.accounts {
		if a.SchoolID == schoolID && a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByIDs(_ context.Context, schoolID uuid.UUID, ids []uuid.UUID) ([]*entity.FinancialAccount, error) {
	var out []*entity.FinancialAccount
	for _, a := range r.s.accounts {
		if a.SchoolID == schoolID && containsID(ids, a.ID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) FindActiveByTypes(_ context.Context, schoolID uuid.UUID, types []entity.AccountType) ([]*entity.FinancialAccount, error) {
	var out []*entity.FinancialAccount
	for _, a := range r.s.accounts {
		if a.SchoolID != schoolID || !a.IsActive {
			continue
		}
		for _, t := range types {
			if a.Type == t {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) List(_ context.Context, _ uuid.UUID, _ *entity.AccountType) ([]*entity.FinancialAccount, error) {
	return r.s.accounts, nil
}

func (r *fakeAccountRepo) ExistsByCode(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, nil
}

type fakeTransactionRepo struct{ s *store }

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.s.transactions = append(r.s.transactions, t)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, _, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.s.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, _ *entity.TransactionFilter) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{Transactions: r.s.transactions}, nil
}

func (r *fakeTransactionRepo) FindPosted(_ context.Context, query adapter.PostedTransactionQuery) ([]*entity.Transaction, error) {
	r.s.postedQueries = append(r.s.postedQueries, query)

	var out []*entity.Transaction
	for _, t := range r.s.transactions {
		if t.SchoolID != query.SchoolID || t.Status != entity.TransactionStatusPosted {
			continue
		}
		if !containsID(query.CategoryIDs, t.CategoryID) {
			continue
		}
		if t.Date.Before(query.StartDate) || t.Date.After(query.EndDate) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type fakeBudgetRepo struct{ s *store }

func (r *fakeBudgetRepo) Create(_ context.Context, b *entity.Budget) error {
	r.s.budgets = append(r.s.budgets, b)
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, schoolID, id uuid.UUID) (*entity.Budget, error) {
	for _, b := range r.s.budgets {
		if b.SchoolID == schoolID && b.ID == id {
			return b, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *fakeBudgetRepo) List(_ context.Context, _ uuid.UUID) ([]*entity.Budget, error) {
	return r.s.budgets, nil
}

type fakeReportRepo struct{ s *store }

func (r *fakeReportRepo) Create(_ context.Context, report *entity.FinancialReport) error {
	if r.s.failReportCreate != nil {
		return r.s.failReportCreate
	}
	r.s.reports = append(r.s.reports, report)
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, schoolID, id uuid.UUID) (*entity.FinancialReport, error) {
	for _, report := range r.s.reports {
		if report.SchoolID == schoolID && report.ID == id {
			return report, nil
		}
	}
	return nil, domainerror.ErrReportNotFound
}

func (r *fakeReportRepo) FindByFilter(_ context.Context, filter *entity.ReportFilter) (*entity.ReportListResult, error) {
	if r.s.onFindByFilter != nil {
		r.s.onFindByFilter()
	}

	var matched []*entity.FinancialReport
	for _, report := range r.s.reports {
		if report.SchoolID != filter.SchoolID {
			continue
		}
		if filter.Type != nil && report.Type != *filter.Type {
			continue
		}
		matched = append(matched, report)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return &entity.ReportListResult{
		Reports:    matched[offset:end],
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// memoryCache is a ReportListCache backed by a map, with one generation per school.
type memoryCache struct {
	mu          sync.Mutex
	pages       map[string][]byte
	generations map[uuid.UUID]adapter.CacheGeneration
	invalidated []uuid.UUID
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		pages:       make(map[string][]byte),
		generations: make(map[uuid.UUID]adapter.CacheGeneration),
	}
}

func memoryCacheKey(schoolID uuid.UUID, generation adapter.CacheGeneration, key string) string {
	return fmt.Sprintf("%s|%d|%s", schoolID, generation, key)
}

func (c *memoryCache) Get(_ context.Context, schoolID uuid.UUID, key string) ([]byte, adapter.CacheGeneration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	generation := c.generations[schoolID]
	page, ok := c.pages[memoryCacheKey(schoolID, generation, key)]
	return page, generation, ok
}

func (c *memoryCache) Set(_ context.Context, schoolID uuid.UUID, key string, generation adapter.CacheGeneration, page []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[memoryCacheKey(schoolID, generation, key)] = page
}

func (c *memoryCache) Invalidate(_ context.Context, schoolID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, schoolID)
	c.generations[schoolID]++
	return nil
}

type recordingPublisher struct {
	events []adapter.ReportGeneratedEvent
	err    error
}

func (p *recordingPublisher) PublishReportGenerated(_ context.Context, event adapter.ReportGeneratedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type recordingMetrics struct {
	outcomes    []string
	cacheHits   int
	cacheMisses int
	published   int
	failed      int
}

func (m *recordingMetrics) ObserveGeneration(_ string, outcome string, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) RecordCacheLookup(hit bool) {
	if hit {
		m.cacheHits++
		return
	}
	m.cacheMisses++
}

func (m *recordingMetrics) RecordEventPublish(success bool) {
	if success {
		m.published++
		return
	}
	m.failed++
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
