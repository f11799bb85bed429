package output

import (
	"fmt"
	"time"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
)

// SweepReport wraps return-rate sweep results as a report with one scenario
// per rate, so every formatter can render a sensitivity table.
func SweepReport(results []calculation.SweepResult, generatedAt time.Time) *domain.Report {
	report := &domain.Report{
		Title:       "Return Rate Sensitivity",
		GeneratedAt: generatedAt,
		Scenarios:   make([]domain.ScenarioResult, 0, len(results)),
	}
	for _, r := range results {
		report.Scenarios = append(report.Scenarios, domain.ScenarioResult{
			Name:       fmt.Sprintf("Return %s", FormatRate(r.ReturnPercent)),
			Retirement: r.Projection,
		})
	}
	if len(results) > 0 {
		in := results[0].Projection.Input
		report.Assumptions = []string{
			fmt.Sprintf("Every run holds the other inputs fixed: age %d retiring at %d, %s inflation, %s income replacement",
				in.CurrentAge, in.RetirementAge, FormatRate(in.InflationPercent), FormatRate(in.IncomeReplacementPercent)),
			"Returns compound once per year, with contributions added before each year's return",
		}
	}
	return report
}
