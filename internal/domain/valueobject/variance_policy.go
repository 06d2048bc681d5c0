// Package valueobject contains domain value objects for the school finance service.
package valueobject

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// DefaultSignificanceThresholdPercent is the variance, in percent, above which a budget item is flagged.
const DefaultSignificanceThresholdPercent = 10

// VariancePolicy decides how budget deviations are measured and flagged.
type VariancePolicy struct {
	// SignificanceThresholdPercent is compared strictly: 10 means "more than 10%".
	SignificanceThresholdPercent decimal.Decimal

	// PercentPlaces is the number of decimal places kept in variance percentages.
	PercentPlaces int32
}

// DefaultVariancePolicy returns the policy used when nothing is configured.
func DefaultVariancePolicy() VariancePolicy {
	return VariancePolicy{
		SignificanceThresholdPercent: decimal.NewFromInt(DefaultSignificanceThresholdPercent),
		PercentPlaces:                2,
	}
}

// NewVariancePolicy returns a policy with the given threshold in percent.
func NewVariancePolicy(thresholdPercent float64) VariancePolicy {
	p := DefaultVariancePolicy()
	p.SignificanceThresholdPercent = decimal.NewFromFloat(thresholdPercent)
	return p
}

// Percent returns variance / budget * 100, rounded, or zero when the budget is not positive.
func (p VariancePolicy) Percent(variance, budgetAmount int64) decimal.Decimal {
	if budgetAmount <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(variance).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(budgetAmount)).
		Round(p.PercentPlaces)
}

// Status flags a percentage as SIGNIFICANT when its magnitude exceeds the threshold.
func (p VariancePolicy) Status(percent decimal.Decimal) entity.VarianceStatus {
	if percent.Abs().GreaterThan(p.SignificanceThresholdPercent) {
		return entity.VarianceStatusSignificant
	}
	return entity.VarianceStatusNormal
}

// Evaluate compares a planned amount with the actual amount booked on a category.
func (p VariancePolicy) Evaluate(categoryID uuid.UUID, categoryName string, budgetAmount, actualAmount int64) entity.BudgetVarianceItem {
	variance := actualAmount - budgetAmount
	percent := p.Percent(variance, budgetAmount)

	return entity.BudgetVarianceItem{
		CategoryID:      categoryID,
		CategoryName:    categoryName,
		BudgetAmount:    budgetAmount,
		ActualAmount:    actualAmount,
		Variance:        variance,
		VariancePercent: percent.InexactFloat64(),
		Status:          p.Status(percent),
	}
}

// ThresholdFloat returns the threshold as a float for presentation.
func (p VariancePolicy) ThresholdFloat() float64 {
	return p.SignificanceThresholdPercent.InexactFloat64()
}
