package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/finplan/internal/domain"
	fin "github.com/rpgo/finplan/pkg/decimal"
)

// CalculationEngine runs the calculators a scenario configures
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario runs every calculator present in the scenario
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if scenario.Growth == nil && scenario.Retirement == nil && scenario.Budget == nil {
		return nil, &domain.ValidationError{Field: "scenario", Reason: "must configure growth, retirement or budget"}
	}

	result := &domain.ScenarioResult{
		Name:        scenario.Name,
		Description: scenario.Description,
	}

	if g := scenario.Growth; g != nil {
		gp, err := ProjectGrowthSummary(g.ProjectionInput, g.Target)
		if err != nil {
			return nil, fmt.Errorf("growth projection: %w", err)
		}
		result.Growth = gp
		ce.Logger.Infof("%s: growth over %d years ends at %s", scenario.Name, g.Years, gp.FinalBalance.StringFixed(2))
		if ce.Debug {
			for _, p := range gp.Points {
				ce.Logger.Debugf("  year %2d contributions=%s interest=%s balance=%s",
					p.Year, p.Contributions.StringFixed(2), p.Interest.StringFixed(2), p.Balance.StringFixed(2))
			}
		}
	}

	if r := scenario.Retirement; r != nil {
		rp, err := ProjectRetirement(*r)
		if err != nil {
			return nil, fmt.Errorf("retirement projection: %w", err)
		}
		result.Retirement = rp
		ce.Logger.Infof("%s: balance at retirement %s, savings last: %t",
			scenario.Name, rp.BalanceAtRetirement.StringFixed(2), rp.SavingsWillLast)
		if !rp.SavingsWillLast {
			ce.Logger.Warnf("%s: savings run out at age %d", scenario.Name, rp.DepletionAge)
		}
		if ce.Debug {
			for _, p := range rp.Points {
				ce.Logger.Debugf("  age %3d %-12s balance=%s withdrawal=%s",
					p.Age, p.Phase, p.Balance.StringFixed(2), p.Withdrawal.StringFixed(2))
			}
		}
	}

	if b := scenario.Budget; b != nil {
		for i, line := range b.Lines {
			if err := line.Validate(); err != nil {
				return nil, fmt.Errorf("budget line %d (%s): %w", i, line.Name, err)
			}
		}
		summary := AggregateBudget(b.Lines)
		result.BudgetLines = append([]domain.BudgetLine(nil), b.Lines...)
		result.Budget = &summary
		ce.Logger.Infof("%s: budget balance %s", scenario.Name, summary.Balance.StringFixed(2))
	}

	return result, nil
}

// RunScenarios runs all scenarios and returns a report
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.Report, error) {
	results := make([]domain.ScenarioResult, 0, len(config.Scenarios))

	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		result, err := ce.RunScenario(ctx, scenario)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		results = append(results, *result)
	}

	return &domain.Report{
		Title:       config.Name,
		GeneratedAt: nowFunc(),
		Scenarios:   results,
		Assumptions: GenerateAssumptions(config),
	}, nil
}

// GenerateAssumptions lists the modeling conventions behind the scenarios' numbers
func GenerateAssumptions(config *domain.Configuration) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, sc := range config.Scenarios {
		if g := sc.Growth; g != nil {
			add(fmt.Sprintf("Growth: interest compounds %s at %s%% per year; each contribution is added before that period's interest",
				domain.FrequencyName(g.CompoundingFrequency), g.AnnualRatePercent.String()))
		}
		if r := sc.Retirement; r != nil {
			add(fmt.Sprintf("Retirement: returns of %s%% compound once per year; contributions are added before each year's return",
				r.ExpectedReturnPercent.String()))
			add(fmt.Sprintf("Retirement: withdrawals start at %s%% of today's income and grow with %s%% inflation",
				r.IncomeReplacementPercent.String(), r.InflationPercent.String()))
		}
	}
	add(fmt.Sprintf("Amounts carry %d decimal places between periods; display values are rounded to whole units", fin.InternalScale))
	add("Results are estimates for illustration only; taxes and fees are not modeled")
	return out
}
