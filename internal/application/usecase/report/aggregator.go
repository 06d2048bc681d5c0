package report

import (
	"github.com/google/uuid"

	"github.com/madrasah-erp/finance/internal/domain/entity"
)

// aggregateByCategory groups transactions by category in a single pass.
// Every category gets a line, in category order, even when it has no transactions.
func aggregateByCategory(set *categorySet, transactions []*entity.Transaction, includeDetails bool) []entity.CategoryLine {
	lines := make([]entity.CategoryLine, len(set.categories))
	index := make(map[uuid.UUID]int, len(set.categories))

	for i, c := range set.categories {
		line := entity.CategoryLine{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			CategoryType: c.Type,
		}
		if c.AccountID != nil {
			line.AccountID = c.AccountID
			if account, ok := set.accounts[*c.AccountID]; ok {
				line.AccountCode = account.Code
				line.AccountName = account.Name
			}
		}
		lines[i] = line
		index[c.ID] = i
	}

	for _, t := range transactions {
		i, ok := index[t.CategoryID]
		if !ok {
			continue
		}
		lines[i].Total += t.Amount
		lines[i].TransactionCount++
		if includeDetails {
			lines[i].Transactions = append(lines[i].Transactions, entity.TransactionLine{
				ID:          t.ID,
				Date:        t.Date.Format(DateLayout),
				Amount:      t.Amount,
				Description: t.Description,
				Reference:   t.Reference,
			})
		}
	}

	return lines
}

// splitByDirection separates inflow lines (income, donation) from outflow lines (expense).
func splitByDirection(lines []entity.CategoryLine) (inflows, outflows []entity.CategoryLine) {
	inflows = make([]entity.CategoryLine, 0)
	outflows = make([]entity.CategoryLine, 0)
	for _, line := range lines {
		if line.CategoryType.IsInflow() {
			inflows = append(inflows, line)
		} else {
			outflows = append(outflows, line)
		}
	}
	return inflows, outflows
}

// sumLines returns the sum of the line totals.
func sumLines(lines []entity.CategoryLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.Total
	}
	return total
}

// actualsByCategory sums transaction amounts per category.
func actualsByCategory(transactions []*entity.Transaction) map[uuid.UUID]int64 {
	actuals := make(map[uuid.UUID]int64)
	for _, t := range transactions {
		actuals[t.CategoryID] += t.Amount
	}
	return actuals
}
