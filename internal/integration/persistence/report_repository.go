package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create stores a generated report.
func (r *reportRepository) Create(ctx context.Context, report *entity.FinancialReport) error {
	return r.db.WithContext(ctx).Create(model.FinancialReportFromEntity(report)).Error
}

// FindByID retrieves a report by its ID.
func (r *reportRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*entity.FinancialReport, error) {
	var reportModel model.FinancialReportModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND school_id = ?", id, schoolID).
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}

// FindByFilter retrieves a page of reports, newest first.
func (r *reportRepository) FindByFilter(ctx context.Context, filter *entity.ReportFilter) (*entity.ReportListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.FinancialReportModel{}).
		Where("school_id = ?", filter.SchoolID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Period != nil {
		query = query.Where("period = ?", string(*filter.Period))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Year != nil {
		from := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("start_date >= ? AND start_date < ?", from, from.AddDate(1, 0, 0))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filter.Page - 1) * filter.Limit
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var reportModels []model.FinancialReportModel
	result := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.FinancialReport, len(reportModels))
	for i := range reportModels {
		reports[i] = reportModels[i].ToEntity()
	}

	return &entity.ReportListResult{
		Reports:    reports,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// reportReader implements the adapter.ReportReader interface.
type reportReader struct {
	db       *gorm.DB
	snapshot bool
}

// NewReportReader creates a reader over the given database.
// With snapshot enabled every read of one generation shares a read-only REPEATABLE READ transaction.
func NewReportReader(db *gorm.DB, snapshot bool) adapter.ReportReader {
	return &reportReader{
		db:       db,
		snapshot: snapshot,
	}
}

// Read runs fn with repositories bound to the database or to a snapshot transaction.
func (r *reportReader) Read(ctx context.Context, fn func(ctx context.Context, sources adapter.ReportSources) error) error {
	if !r.snapshot {
		return fn(ctx, sourcesFor(r.db))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, sourcesFor(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func sourcesFor(db *gorm.DB) adapter.ReportSources {
	return adapter.ReportSources{
		Categories:   NewCategoryRepository(db),
		Accounts:     NewAccountRepository(db),
		Transactions: NewTransactionRepository(db),
		Budgets:      NewBudgetRepository(db),
	}
}
