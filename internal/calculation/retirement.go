package calculation

import (
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
	fin "github.com/rpgo/finplan/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ProjectRetirement runs the accumulation phase into the withdrawal phase.
//
// Accumulation: each year adds MonthlyContribution*12 and then compounds once
// at ExpectedReturnPercent. Withdrawal: each year takes the inflation-adjusted
// withdrawal and compounds the remainder once. Returns compound annually here,
// unlike the sub-annual loop in ProjectGrowth.
//
// The raw balance is allowed to go negative; only DisplayBalance is floored.
// A negative remainder earns no return, so later withdrawals only add to the
// shortfall and the final balance never rises when the return falls.
// SavingsWillLast is decided on the raw balance.
func ProjectRetirement(in domain.RetirementInput) (*domain.RetirementProjection, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	returnFactor := fin.GrowthFactor(fin.FromPercent(in.ExpectedReturnPercent))
	inflation := fin.FromPercent(in.InflationPercent)
	annualContribution := fin.Annual(in.MonthlyContribution)
	yearsUntil := in.YearsUntilRetirement()
	yearsIn := in.YearsInRetirement()

	proj := &domain.RetirementProjection{
		Input:                in,
		Points:               make([]domain.RetirementPoint, 0, yearsUntil+yearsIn),
		YearsUntilRetirement: yearsUntil,
		YearsInRetirement:    yearsIn,
	}

	balance := in.CurrentSavings
	for year := 1; year <= yearsUntil; year++ {
		balance = fin.Normalize(balance.Add(annualContribution).Mul(returnFactor))
		proj.Points = append(proj.Points, domain.RetirementPoint{
			Age:            in.CurrentAge + year,
			CalendarYear:   calendarYear(in, in.CurrentAge+year),
			Phase:          domain.PhaseAccumulating,
			Balance:        balance,
			DisplayBalance: fin.FloorZero(balance),
			Contribution:   annualContribution,
			Withdrawal:     decimal.Zero,
		})
	}
	proj.BalanceAtRetirement = balance

	// Today's replacement target, inflated forward to the retirement date.
	proj.RequiredAnnualIncome = fin.Normalize(in.CurrentIncome.
		Mul(fin.FromPercent(in.IncomeReplacementPercent)).
		Mul(fin.CompoundFactor(inflation, yearsUntil)))

	proj.SavingsWillLast = true
	for year := 1; year <= yearsIn; year++ {
		withdrawal := fin.Normalize(proj.RequiredAnnualIncome.Mul(fin.CompoundFactor(inflation, year)))
		balance = balance.Sub(withdrawal)
		if !balance.IsNegative() {
			balance = fin.Normalize(balance.Mul(returnFactor))
		}

		age := in.RetirementAge + year
		if balance.IsNegative() && proj.SavingsWillLast {
			proj.SavingsWillLast = false
			proj.DepletionAge = age
		}

		proj.Points = append(proj.Points, domain.RetirementPoint{
			Age:            age,
			CalendarYear:   calendarYear(in, age),
			Phase:          domain.PhaseWithdrawing,
			Balance:        balance,
			DisplayBalance: fin.FloorZero(balance),
			Contribution:   decimal.Zero,
			Withdrawal:     withdrawal,
		})
	}
	proj.FinalBalance = balance

	proj.TotalContributions = in.CurrentSavings.Add(annualContribution.Mul(decimal.NewFromInt(int64(yearsUntil))))
	proj.InvestmentGrowth = proj.BalanceAtRetirement.Sub(proj.TotalContributions)

	return proj, nil
}

func calendarYear(in domain.RetirementInput, age int) int {
	if in.BirthDate == nil {
		return 0
	}
	return dateutil.CalendarYearAtAge(*in.BirthDate, age)
}
