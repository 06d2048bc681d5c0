package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
	"github.com/madrasah-erp/finance/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedCategory(t *testing.T, repo adapter.CategoryRepository, schoolID uuid.UUID, code string, categoryType entity.CategoryType) *entity.FinancialCategory {
	t.Helper()
	category := entity.NewFinancialCategory(schoolID, code, "Category "+code, "", categoryType, nil)
	require.NoError(t, repo.Create(context.Background(), category))
	return category
}

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, schoolID, categoryID uuid.UUID, date time.Time, amount int64, status entity.TransactionStatus) *entity.Transaction {
	t.Helper()
	transaction := entity.NewTransaction(schoolID, categoryID, date, amount, "tuition", "REF-1", uuid.New())
	transaction.Status = status
	require.NoError(t, repo.Create(context.Background(), transaction))
	return transaction
}

func TestCategoryRepository_FindActiveByTypes(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	schoolID := uuid.New()

	seedCategory(t, repo, schoolID, "4200", entity.CategoryTypeDonation)
	seedCategory(t, repo, schoolID, "4100", entity.CategoryTypeIncome)
	seedCategory(t, repo, schoolID, "5100", entity.CategoryTypeExpense)
	inactive := seedCategory(t, repo, schoolID, "4300", entity.CategoryTypeIncome)
	seedCategory(t, repo, uuid.New(), "4000", entity.CategoryTypeIncome)

	inactive.IsActive = false
	require.NoError(t, repo.Update(ctx, inactive))

	found, err := repo.FindActiveByTypes(ctx, schoolID, entity.InflowCategoryTypes)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "4100", found[0].Code)
	assert.Equal(t, "4200", found[1].Code)

	exists, err := repo.ExistsByCode(ctx, schoolID, "5100")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, uuid.New(), inactive.ID)
	assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)
}

func TestTransactionRepository_FindPosted(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	schoolID := uuid.New()

	tuition := seedCategory(t, categories, schoolID, "4100", entity.CategoryTypeIncome)
	salaries := seedCategory(t, categories, schoolID, "5100", entity.CategoryTypeExpense)

	first := seedTransaction(t, repo, schoolID, tuition.ID, day(2025, time.January, 1), 100, entity.TransactionStatusPosted)
	last := seedTransaction(t, repo, schoolID, tuition.ID, day(2025, time.January, 31), 200, entity.TransactionStatusPosted)
	seedTransaction(t, repo, schoolID, tuition.ID, day(2025, time.February, 1), 400, entity.TransactionStatusPosted)
	seedTransaction(t, repo, schoolID, tuition.ID, day(2025, time.January, 15), 800, entity.TransactionStatusDraft)
	seedTransaction(t, repo, schoolID, tuition.ID, day(2025, time.January, 16), 1600, entity.TransactionStatusVoid)
	seedTransaction(t, repo, schoolID, salaries.ID, day(2025, time.January, 10), 3200, entity.TransactionStatusPosted)
	seedTransaction(t, repo, uuid.New(), tuition.ID, day(2025, time.January, 10), 6400, entity.TransactionStatusPosted)

	t.Run("inclusive window and posted only", func(t *testing.T) {
		found, err := repo.FindPosted(ctx, adapter.PostedTransactionQuery{
			SchoolID:    schoolID,
			CategoryIDs: []uuid.UUID{tuition.ID},
			StartDate:   day(2025, time.January, 1),
			EndDate:     day(2025, time.January, 31),
			WithDetails: true,
		})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, first.ID, found[0].ID)
		assert.Equal(t, last.ID, found[1].ID)
		assert.Equal(t, "tuition", found[0].Description)
	})

	t.Run("aggregation columns only", func(t *testing.T) {
		found, err := repo.FindPosted(ctx, adapter.PostedTransactionQuery{
			SchoolID:    schoolID,
			CategoryIDs: []uuid.UUID{tuition.ID, salaries.ID},
			StartDate:   day(2025, time.January, 1),
			EndDate:     day(2025, time.January, 31),
		})
		require.NoError(t, err)
		require.Len(t, found, 3)

		var total int64
		for _, txn := range found {
			total += txn.Amount
			assert.Empty(t, txn.Description)
		}
		assert.Equal(t, int64(3500), total)
	})

	t.Run("no categories", func(t *testing.T) {
		found, err := repo.FindPosted(ctx, adapter.PostedTransactionQuery{
			SchoolID:  schoolID,
			StartDate: day(2025, time.January, 1),
			EndDate:   day(2025, time.January, 31),
		})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	schoolID := uuid.New()

	tuition := seedCategory(t, categories, schoolID, "4100", entity.CategoryTypeIncome)
	for i := 1; i <= 5; i++ {
		seedTransaction(t, repo, schoolID, tuition.ID, day(2025, time.March, i), int64(i*100), entity.TransactionStatusDraft)
	}
	seedTransaction(t, repo, schoolID, tuition.ID, day(2025, time.March, 9), 900, entity.TransactionStatusPosted)

	draft := entity.TransactionStatusDraft
	result, err := repo.FindByFilter(ctx, &entity.TransactionFilter{
		SchoolID: schoolID,
		Status:   &draft,
		Page:     1,
		Limit:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, int64(500), result.Transactions[0].Amount)
}

func TestBudgetRepository_KeepsItemOrder(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewBudgetRepository(db)
	ctx := context.Background()
	schoolID := uuid.New()

	salaries := seedCategory(t, categories, schoolID, "5100", entity.CategoryTypeExpense)
	tuition := seedCategory(t, categories, schoolID, "4100", entity.CategoryTypeIncome)

	budget := entity.NewBudget(schoolID, "2025 plan", day(2025, time.January, 1), day(2025, time.December, 31), []*entity.BudgetItem{
		{CategoryID: salaries.ID, BudgetAmount: 1000},
		{CategoryID: tuition.ID, BudgetAmount: 5000},
	}, uuid.New())
	require.NoError(t, repo.Create(ctx, budget))

	found, err := repo.FindByID(ctx, schoolID, budget.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.Equal(t, salaries.ID, found.Items[0].CategoryID)
	assert.Equal(t, tuition.ID, found.Items[1].CategoryID)

	_, err = repo.FindByID(ctx, uuid.New(), budget.ID)
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)

	budgets, err := repo.List(ctx, schoolID)
	require.NoError(t, err)
	assert.Len(t, budgets, 1)
}

func TestReportRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	schoolID := uuid.New()
	userID := uuid.New()

	store := func(name string, reportType entity.ReportType, start time.Time, createdAt time.Time) *entity.FinancialReport {
		report := entity.NewFinancialReport(schoolID, name, reportType, entity.ReportPeriodMonthly,
			start, start.AddDate(0, 1, -1), nil, entity.ReportFormatJSON, "{}", userID)
		report.CreatedAt = createdAt
		require.NoError(t, repo.Create(ctx, report))
		return report
	}

	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	store("January", entity.ReportTypeIncomeStatement, day(2025, time.January, 1), base)
	feb := store("February", entity.ReportTypeCashFlow, day(2025, time.February, 1), base.Add(time.Hour))
	march := store("March", entity.ReportTypeIncomeStatement, day(2025, time.March, 1), base.Add(2*time.Hour))
	store("Last year", entity.ReportTypeIncomeStatement, day(2024, time.December, 1), base.Add(3*time.Hour))

	t.Run("newest first with pagination", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, &entity.ReportFilter{SchoolID: schoolID, Page: 1, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(4), result.Total)
		assert.Equal(t, 2, result.TotalPages)
		require.Len(t, result.Reports, 3)
		assert.Equal(t, "Last year", result.Reports[0].Name)
		assert.Equal(t, march.ID, result.Reports[1].ID)
	})

	t.Run("type and year", func(t *testing.T) {
		reportType := entity.ReportTypeIncomeStatement
		year := 2025
		result, err := repo.FindByFilter(ctx, &entity.ReportFilter{SchoolID: schoolID, Type: &reportType, Year: &year, Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, result.Reports, 2)
		assert.Equal(t, march.ID, result.Reports[0].ID)
	})

	t.Run("other school sees nothing", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, &entity.ReportFilter{SchoolID: uuid.New(), Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, result.Reports)
		assert.Equal(t, 1, result.TotalPages)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, schoolID, feb.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ReportTypeCashFlow, found.Type)

		_, err = repo.FindByID(ctx, schoolID, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrReportNotFound)
	})
}

func TestReportReader_SharesRepositories(t *testing.T) {
	db := newTestDB(t)
	reader := NewReportReader(db, false)
	schoolID := uuid.New()
	seedCategory(t, NewCategoryRepository(db), schoolID, "4100", entity.CategoryTypeIncome)

	err := reader.Read(context.Background(), func(ctx context.Context, sources adapter.ReportSources) error {
		found, err := sources.Categories.FindActiveByTypes(ctx, schoolID, entity.InflowCategoryTypes)
		if err != nil {
			return err
		}
		assert.Len(t, found, 1)
		return nil
	})
	require.NoError(t, err)
}
