package calculation

import (
	"fmt"

	"github.com/rpgo/finplan/internal/domain"
	fin "github.com/rpgo/finplan/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ProjectGrowth simulates compound growth period by period. Within each
// compounding period the contribution is added first and interest is then
// applied to the balance-after-contribution at AnnualRatePercent/100/frequency.
// One point is emitted per completed year.
//
// This sub-annual loop differs on purpose from the single annual step used by
// ProjectRetirement; the two must not be unified.
func ProjectGrowth(in domain.ProjectionInput) ([]domain.ProjectionPoint, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	factor := fin.GrowthFactor(fin.PeriodicRate(in.AnnualRatePercent, in.CompoundingFrequency))
	contributedPerYear := in.PeriodicContribution.Mul(decimal.NewFromInt(int64(in.CompoundingFrequency)))

	balance := in.Principal
	contributions := in.Principal
	points := make([]domain.ProjectionPoint, 0, in.Years)

	for year := 1; year <= in.Years; year++ {
		for period := 0; period < in.CompoundingFrequency; period++ {
			balance = fin.Normalize(balance.Add(in.PeriodicContribution).Mul(factor))
		}
		contributions = contributions.Add(contributedPerYear)

		points = append(points, domain.ProjectionPoint{
			Year:          year,
			Contributions: contributions,
			Interest:      balance.Sub(contributions),
			Balance:       balance,
		})
	}

	return points, nil
}

// ProjectGrowthSummary runs ProjectGrowth and derives the totals shown in the
// summary panel. target is optional but must be positive when given.
func ProjectGrowthSummary(in domain.ProjectionInput, target *decimal.Decimal) (*domain.GrowthProjection, error) {
	points, err := ProjectGrowth(in)
	if err != nil {
		return nil, err
	}
	if target != nil && !target.IsPositive() {
		return nil, &domain.ValidationError{Field: "target", Reason: fmt.Sprintf("must be positive (got %s)", target.String())}
	}

	last := points[len(points)-1]
	gp := &domain.GrowthProjection{
		Input:              in,
		Points:             points,
		FinalBalance:       last.Balance,
		TotalContributions: last.Contributions,
		TotalInterest:      last.Interest,
	}
	if target != nil {
		t := *target
		gp.Target = &t
		if year, ok := YearsToTarget(points, t); ok {
			gp.TargetYear = year
		}
	}
	return gp, nil
}

// YearsToTarget returns the first projected year whose balance reaches target.
func YearsToTarget(points []domain.ProjectionPoint, target decimal.Decimal) (int, bool) {
	for _, p := range points {
		if p.Balance.GreaterThanOrEqual(target) {
			return p.Year, true
		}
	}
	return 0, false
}
