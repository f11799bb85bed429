package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Common compounding frequencies (periods per year). Any positive value is accepted.
const (
	CompoundAnnually     = 1
	CompoundSemiAnnually = 2
	CompoundQuarterly    = 4
	CompoundMonthly      = 12
	CompoundDaily        = 365
)

// FrequencyName returns a label for a compounding frequency
func FrequencyName(periods int) string {
	switch periods {
	case CompoundAnnually:
		return "annually"
	case CompoundSemiAnnually:
		return "semi-annually"
	case CompoundQuarterly:
		return "quarterly"
	case CompoundMonthly:
		return "monthly"
	case CompoundDaily:
		return "daily"
	default:
		return fmt.Sprintf("%d times per year", periods)
	}
}

// ProjectionInput holds the parameters of a compound growth projection.
// PeriodicContribution is added once per compounding period.
type ProjectionInput struct {
	Principal            decimal.Decimal `yaml:"principal" json:"principal"`
	PeriodicContribution decimal.Decimal `yaml:"periodic_contribution" json:"periodic_contribution"`
	AnnualRatePercent    decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Years                int             `yaml:"years" json:"years"`
	CompoundingFrequency int             `yaml:"compounding_frequency" json:"compounding_frequency"`
}

// Validate checks the input contract. Values are never clamped.
func (in ProjectionInput) Validate() error {
	if in.Principal.IsNegative() {
		return invalid("principal", "cannot be negative (got %s)", in.Principal)
	}
	if in.PeriodicContribution.IsNegative() {
		return invalid("periodic_contribution", "cannot be negative (got %s)", in.PeriodicContribution)
	}
	if in.AnnualRatePercent.IsNegative() {
		return invalid("annual_rate_percent", "cannot be negative (got %s)", in.AnnualRatePercent)
	}
	if in.Years < 1 {
		return invalid("years", "must be at least 1 (got %d)", in.Years)
	}
	if in.CompoundingFrequency < 1 {
		return invalid("compounding_frequency", "must be at least 1 (got %d)", in.CompoundingFrequency)
	}
	return nil
}

// ProjectionPoint is the state at the end of one projected year.
// Balance always equals Contributions + Interest.
type ProjectionPoint struct {
	Year          int             `json:"year" yaml:"year"`
	Contributions decimal.Decimal `json:"contributions" yaml:"contributions"` // principal plus contributions to date
	Interest      decimal.Decimal `json:"interest" yaml:"interest"`           // interest earned to date
	Balance       decimal.Decimal `json:"balance" yaml:"balance"`
}

// GrowthProjection is a projection series plus its derived totals
type GrowthProjection struct {
	Input              ProjectionInput   `json:"input" yaml:"input"`
	Points             []ProjectionPoint `json:"points" yaml:"points"`
	FinalBalance       decimal.Decimal   `json:"final_balance" yaml:"final_balance"`
	TotalContributions decimal.Decimal   `json:"total_contributions" yaml:"total_contributions"`
	TotalInterest      decimal.Decimal   `json:"total_interest" yaml:"total_interest"`

	// Optional savings goal and the first year the balance reached it
	Target     *decimal.Decimal `json:"target,omitempty" yaml:"target,omitempty"`
	TargetYear int              `json:"target_year,omitempty" yaml:"target_year,omitempty"`
}

// GrowthScenario is the scenario-file form of a growth projection
type GrowthScenario struct {
	ProjectionInput `yaml:",inline"`
	Target          *decimal.Decimal `yaml:"target,omitempty" json:"target,omitempty"`
}
