package output

import "github.com/rpgo/finplan/internal/domain"

// DefaultAssumptions lists the modeling conventions rendered when a report carries none.
var DefaultAssumptions = []string{
	"Growth projections compound each period, with the contribution added before interest",
	"Retirement projections compound once per year, with contributions added before growth",
	"Withdrawals start at the required income at retirement and rise with inflation each year",
	"Balances shown are floored at zero; solvency uses the unfloored balance",
}

func assumptionsFor(report *domain.Report) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
