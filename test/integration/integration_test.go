package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/config"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = "../testdata/example_config.yaml"

// fixedParser pins "today" so ages derived from birth dates stay stable.
func fixedParser() *config.InputParser {
	parser := config.NewInputParser()
	parser.Now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return parser
}

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	cfg, err := fixedParser().LoadFromFile(exampleConfig)
	require.NoError(t, err)
	return cfg
}

func TestEndToEndCalculation(t *testing.T) {
	cfg := loadExample(t)
	require.Len(t, cfg.Scenarios, 2)

	// Age comes from the birth date.
	assert.Equal(t, 40, cfg.Scenarios[0].Retirement.CurrentAge)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Scenarios, 2)
	assert.Equal(t, "Household Plan", report.Title)

	steady := report.Scenarios[0]
	require.NotNil(t, steady.Growth)
	assert.Len(t, steady.Growth.Points, 18)
	assert.True(t, steady.Growth.FinalBalance.GreaterThan(steady.Growth.TotalContributions))

	rp := steady.Retirement
	require.NotNil(t, rp)
	assert.Len(t, rp.Points, 50)
	assert.Equal(t, 2026, rp.Points[0].CalendarYear)
	// 75% of 90,000, inflated over 25 years.
	assert.True(t, rp.RequiredAnnualIncome.GreaterThan(decimal.NewFromInt(67500)))

	b := steady.Budget
	require.NotNil(t, b)
	assert.True(t, b.TotalIncome.Equal(decimal.NewFromInt(6600)))
	assert.True(t, b.TotalExpenses.Equal(decimal.NewFromInt(3290)))
	assert.True(t, b.Balance.Equal(decimal.NewFromInt(3310)))
	require.Len(t, b.ExpenseByCategory, 3)
	assert.Equal(t, "Housing", b.ExpenseByCategory[0].Category)
	assert.Equal(t, "Food", b.ExpenseByCategory[1].Category)
	assert.Equal(t, "Transportation", b.ExpenseByCategory[2].Category)
	assert.True(t, b.ExpenseByCategory[2].Amount.Equal(decimal.NewFromInt(540)))

	for _, line := range steady.BudgetLines {
		assert.NotEmpty(t, line.ID, "loaded lines get identities")
	}

	late := report.Scenarios[1]
	assert.Nil(t, late.Growth)
	assert.Nil(t, late.Budget)
	require.NotNil(t, late.Retirement)
	assert.Equal(t, 22, late.Retirement.YearsUntilRetirement)
}

func TestSolvencyUsesUnflooredBalance(t *testing.T) {
	cfg := loadExample(t)
	engine := calculation.NewCalculationEngine()
	report, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	for _, sc := range report.Scenarios {
		rp := sc.Retirement
		negative := false
		for _, p := range rp.Points {
			assert.False(t, p.DisplayBalance.IsNegative(), "%s age %d", sc.Name, p.Age)
			if p.Balance.IsNegative() {
				negative = true
			}
		}
		assert.Equal(t, !negative, rp.SavingsWillLast, sc.Name)
		if !rp.SavingsWillLast {
			assert.NotZero(t, rp.DepletionAge)
		}
	}
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	require.NoError(t, parser.ValidateConfiguration(parser.CreateExampleConfiguration()))

	bad := parser.CreateExampleConfiguration()
	bad.Scenarios[0].Retirement.LifeExpectancy = bad.Scenarios[0].Retirement.RetirementAge
	err := parser.ValidateConfiguration(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "life_expectancy")

	assert.Error(t, parser.ValidateConfiguration(&domain.Configuration{}))
}
