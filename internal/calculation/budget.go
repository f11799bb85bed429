package calculation

import (
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// AggregateBudget sums lines by classification and groups expenses by
// category in first-seen order. Amounts are assumed validated at entry.
func AggregateBudget(lines []domain.BudgetLine) domain.BudgetSummary {
	summary := domain.BudgetSummary{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		ExpenseByCategory: []domain.CategoryTotal{},
	}
	index := make(map[string]int)

	for _, line := range lines {
		switch line.Classification {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(line.Amount)
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(line.Amount)
			if i, ok := index[line.Category]; ok {
				summary.ExpenseByCategory[i].Amount = summary.ExpenseByCategory[i].Amount.Add(line.Amount)
				continue
			}
			index[line.Category] = len(summary.ExpenseByCategory)
			summary.ExpenseByCategory = append(summary.ExpenseByCategory, domain.CategoryTotal{
				Category: line.Category,
				Amount:   line.Amount,
			})
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}
