package decimal

import (
	"github.com/shopspring/decimal"
)

// InternalScale is the number of fractional digits carried between compounding
// steps. Display rounding happens separately in the output layer.
const InternalScale int32 = 12

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// FromPercent converts a percentage (5 for 5%) into a fraction (0.05)
func FromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// PeriodicRate splits an annual percentage evenly across periods per year.
func PeriodicRate(annualPercent decimal.Decimal, periods int) decimal.Decimal {
	return FromPercent(annualPercent).Div(decimal.NewFromInt(int64(periods)))
}

// GrowthFactor returns 1 + rate
func GrowthFactor(rate decimal.Decimal) decimal.Decimal {
	return one.Add(rate)
}

// CompoundFactor returns (1 + rate)^periods
func CompoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods == 0 {
		return one
	}
	return Normalize(GrowthFactor(rate).Pow(decimal.NewFromInt(int64(periods))))
}

// Normalize trims a value to InternalScale so repeated multiplication does not
// grow the coefficient without bound.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(InternalScale)
}

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// Whole rounds to whole currency units for display
func Whole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// FloorZero clamps negative amounts to zero. Use only for display values.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	return Max(d, decimal.Zero)
}
