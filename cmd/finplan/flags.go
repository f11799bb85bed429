package main

import (
	"fmt"
	"time"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// decimalValue adapts a decimal.Decimal to a command-line flag.
type decimalValue struct{ d *decimal.Decimal }

func newDecimalValue(p *decimal.Decimal, def decimal.Decimal) *decimalValue {
	*p = def
	return &decimalValue{d: p}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

func decimalFlag(cmd *cobra.Command, p *decimal.Decimal, name string, def decimal.Decimal, usage string) {
	cmd.Flags().Var(newDecimalValue(p, def), name, usage)
}

// retirementFlags binds the retirement inputs shared by retire, sweep and interactive.
type retirementFlags struct {
	in        domain.RetirementInput
	birthDate string
}

func defaultRetirementInput() domain.RetirementInput {
	return domain.RetirementInput{
		CurrentAge:               30,
		RetirementAge:            65,
		LifeExpectancy:           90,
		CurrentSavings:           decimal.NewFromInt(50000),
		MonthlyContribution:      decimal.NewFromInt(500),
		ExpectedReturnPercent:    decimal.NewFromInt(7),
		InflationPercent:         decimal.RequireFromString("2.5"),
		CurrentIncome:            decimal.NewFromInt(60000),
		IncomeReplacementPercent: decimal.NewFromInt(80),
	}
}

func (rf *retirementFlags) register(cmd *cobra.Command) {
	def := defaultRetirementInput()
	f := cmd.Flags()
	f.IntVar(&rf.in.CurrentAge, "current-age", def.CurrentAge, "Current age in years")
	f.IntVar(&rf.in.RetirementAge, "retirement-age", def.RetirementAge, "Age at retirement")
	f.IntVar(&rf.in.LifeExpectancy, "life-expectancy", def.LifeExpectancy, "Age the plan must last to")
	decimalFlag(cmd, &rf.in.CurrentSavings, "savings", def.CurrentSavings, "Current retirement savings")
	decimalFlag(cmd, &rf.in.MonthlyContribution, "monthly", def.MonthlyContribution, "Monthly contribution until retirement")
	decimalFlag(cmd, &rf.in.ExpectedReturnPercent, "return", def.ExpectedReturnPercent, "Expected annual return in percent")
	decimalFlag(cmd, &rf.in.InflationPercent, "inflation", def.InflationPercent, "Annual inflation in percent")
	decimalFlag(cmd, &rf.in.CurrentIncome, "income", def.CurrentIncome, "Current annual income")
	decimalFlag(cmd, &rf.in.IncomeReplacementPercent, "replacement", def.IncomeReplacementPercent, "Share of income needed in retirement, in percent")
	f.StringVar(&rf.birthDate, "birth-date", "", "Birth date (YYYY-MM-DD); sets the current age and adds calendar years")
}

// input returns the bound inputs, deriving the age from --birth-date when given.
func (rf *retirementFlags) input(cmd *cobra.Command, now time.Time) (domain.RetirementInput, error) {
	in := rf.in
	if rf.birthDate == "" {
		return in, nil
	}
	bd, err := time.Parse("2006-01-02", rf.birthDate)
	if err != nil {
		return in, fmt.Errorf("invalid --birth-date %q: %w", rf.birthDate, err)
	}
	age := dateutil.Age(bd, now)
	if cmd.Flags().Changed("current-age") && in.CurrentAge != age {
		return in, fmt.Errorf("--current-age %d does not match --birth-date %s (age %d)", in.CurrentAge, rf.birthDate, age)
	}
	in.CurrentAge = age
	in.BirthDate = &bd
	return in, nil
}
