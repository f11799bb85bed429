package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Phase tags a retirement projection point
type Phase string

const (
	PhaseAccumulating Phase = "accumulating"
	PhaseWithdrawing  Phase = "withdrawing"
)

// RetirementInput holds the parameters of a two-phase retirement projection.
// Rates are percentages (7 for 7%).
type RetirementInput struct {
	CurrentAge               int             `yaml:"current_age" json:"current_age"`
	RetirementAge            int             `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy           int             `yaml:"life_expectancy" json:"life_expectancy"`
	CurrentSavings           decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	MonthlyContribution      decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	ExpectedReturnPercent    decimal.Decimal `yaml:"expected_return_percent" json:"expected_return_percent"`
	InflationPercent         decimal.Decimal `yaml:"inflation_percent" json:"inflation_percent"`
	CurrentIncome            decimal.Decimal `yaml:"current_income" json:"current_income"`
	IncomeReplacementPercent decimal.Decimal `yaml:"income_replacement_percent" json:"income_replacement_percent"`

	// Optional; when set, points carry calendar years and a config file may omit current_age.
	BirthDate *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
}

var minusHundred = decimal.NewFromInt(-100)

// Validate checks the ordering and sign constraints. It never clamps.
func (in RetirementInput) Validate() error {
	if in.CurrentAge < 0 {
		return invalid("current_age", "cannot be negative (got %d)", in.CurrentAge)
	}
	if in.RetirementAge <= in.CurrentAge {
		return invalid("retirement_age", "must be after current age (got %d, current age %d)", in.RetirementAge, in.CurrentAge)
	}
	if in.LifeExpectancy <= in.RetirementAge {
		return invalid("life_expectancy", "must be after retirement age (got %d, retirement age %d)", in.LifeExpectancy, in.RetirementAge)
	}
	if in.CurrentSavings.IsNegative() {
		return invalid("current_savings", "cannot be negative (got %s)", in.CurrentSavings)
	}
	if in.MonthlyContribution.IsNegative() {
		return invalid("monthly_contribution", "cannot be negative (got %s)", in.MonthlyContribution)
	}
	if in.ExpectedReturnPercent.LessThanOrEqual(minusHundred) {
		return invalid("expected_return_percent", "must be greater than -100 (got %s)", in.ExpectedReturnPercent)
	}
	if in.InflationPercent.LessThanOrEqual(minusHundred) {
		return invalid("inflation_percent", "must be greater than -100 (got %s)", in.InflationPercent)
	}
	if in.CurrentIncome.IsNegative() {
		return invalid("current_income", "cannot be negative (got %s)", in.CurrentIncome)
	}
	if in.IncomeReplacementPercent.IsNegative() {
		return invalid("income_replacement_percent", "cannot be negative (got %s)", in.IncomeReplacementPercent)
	}
	return nil
}

// YearsUntilRetirement returns the length of the accumulation phase
func (in RetirementInput) YearsUntilRetirement() int { return in.RetirementAge - in.CurrentAge }

// YearsInRetirement returns the length of the withdrawal phase
func (in RetirementInput) YearsInRetirement() int { return in.LifeExpectancy - in.RetirementAge }

// RetirementPoint is the state at the end of one year of age.
// Balance is the raw simulated value and may go negative during withdrawals;
// DisplayBalance is floored at zero and must not be used for solvency.
type RetirementPoint struct {
	Age            int             `json:"age" yaml:"age"`
	CalendarYear   int             `json:"calendar_year,omitempty" yaml:"calendar_year,omitempty"`
	Phase          Phase           `json:"phase" yaml:"phase"`
	Balance        decimal.Decimal `json:"balance" yaml:"balance"`
	DisplayBalance decimal.Decimal `json:"display_balance" yaml:"display_balance"`
	Contribution   decimal.Decimal `json:"contribution" yaml:"contribution"`
	Withdrawal     decimal.Decimal `json:"withdrawal" yaml:"withdrawal"`
}

// RetirementProjection is the full two-phase series plus its summary fields
type RetirementProjection struct {
	Input                RetirementInput   `json:"input" yaml:"input"`
	Points               []RetirementPoint `json:"points" yaml:"points"`
	BalanceAtRetirement  decimal.Decimal   `json:"balance_at_retirement" yaml:"balance_at_retirement"`
	RequiredAnnualIncome decimal.Decimal   `json:"required_annual_income" yaml:"required_annual_income"`
	SavingsWillLast      bool              `json:"savings_will_last" yaml:"savings_will_last"`
	TotalContributions   decimal.Decimal   `json:"total_contributions" yaml:"total_contributions"`
	InvestmentGrowth     decimal.Decimal   `json:"investment_growth" yaml:"investment_growth"`
	YearsUntilRetirement int               `json:"years_until_retirement" yaml:"years_until_retirement"`
	YearsInRetirement    int               `json:"years_in_retirement" yaml:"years_in_retirement"`
	FinalBalance         decimal.Decimal   `json:"final_balance" yaml:"final_balance"` // raw, unfloored
	DepletionAge         int               `json:"depletion_age,omitempty" yaml:"depletion_age,omitempty"`
}

// AccumulationPoints returns the points tagged accumulating
func (rp *RetirementProjection) AccumulationPoints() []RetirementPoint {
	return rp.pointsIn(PhaseAccumulating)
}

// WithdrawalPoints returns the points tagged withdrawing
func (rp *RetirementProjection) WithdrawalPoints() []RetirementPoint {
	return rp.pointsIn(PhaseWithdrawing)
}

func (rp *RetirementProjection) pointsIn(phase Phase) []RetirementPoint {
	var out []RetirementPoint
	for _, p := range rp.Points {
		if p.Phase == phase {
			out = append(out, p)
		}
	}
	return out
}
