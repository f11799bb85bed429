package output

import (
	"sort"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation names the strongest retirement plan in a report.
type Recommendation struct {
	ScenarioName        string
	BalanceAtRetirement decimal.Decimal
	FinalBalance        decimal.Decimal
	SavingsWillLast     bool
	DepletionAge        int
}

// AnalyzeScenarios ranks the scenarios that carry a retirement projection.
// Plans whose savings last rank first, then later depletion, then the larger
// final balance. The zero value is returned when no scenario has one.
func AnalyzeScenarios(report *domain.Report) Recommendation {
	var ranks []Recommendation
	for _, sc := range report.Scenarios {
		rp := sc.Retirement
		if rp == nil {
			continue
		}
		ranks = append(ranks, Recommendation{
			ScenarioName:        sc.Name,
			BalanceAtRetirement: rp.BalanceAtRetirement,
			FinalBalance:        rp.FinalBalance,
			SavingsWillLast:     rp.SavingsWillLast,
			DepletionAge:        rp.DepletionAge,
		})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if a.SavingsWillLast != b.SavingsWillLast {
			return a.SavingsWillLast
		}
		if !a.SavingsWillLast && a.DepletionAge != b.DepletionAge {
			return a.DepletionAge > b.DepletionAge
		}
		return a.FinalBalance.GreaterThan(b.FinalBalance)
	})
	return ranks[0]
}

// retirementCount returns how many scenarios carry a retirement projection.
func retirementCount(report *domain.Report) int {
	n := 0
	for _, sc := range report.Scenarios {
		if sc.Retirement != nil {
			n++
		}
	}
	return n
}
