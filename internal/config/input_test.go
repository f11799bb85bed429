package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedParser() *InputParser {
	return &InputParser{Now: func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
	assert.NotNil(t, parser.Now)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "name: \"Household\"\n" +
		"scenarios:\n" +
		"  - name: \"Baseline\"\n" +
		"    growth:\n" +
		"      principal: 1000\n" +
		"      periodic_contribution: 100\n" +
		"      annual_rate_percent: 5\n" +
		"      years: 10\n" +
		"      compounding_frequency: 12\n" +
		"      target: 15000\n" +
		"    retirement:\n" +
		"      current_age: 30\n" +
		"      retirement_age: 65\n" +
		"      life_expectancy: 90\n" +
		"      current_savings: 50000\n" +
		"      monthly_contribution: 500\n" +
		"      expected_return_percent: 7\n" +
		"      inflation_percent: 2.5\n" +
		"      current_income: 60000\n" +
		"      income_replacement_percent: 80\n" +
		"    budget:\n" +
		"      lines:\n" +
		"        - name: \"Salary\"\n" +
		"          amount: 3000\n" +
		"          classification: income\n" +
		"          category: Salary\n" +
		"        - name: \"Rent\"\n" +
		"          amount: 1200\n" +
		"          classification: expense\n" +
		"          category: Housing\n"

	config, err := fixedParser().LoadFromFile(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "Household", config.Name)
	require.Len(t, config.Scenarios, 1)
	s := config.Scenarios[0]

	require.NotNil(t, s.Growth)
	assert.Equal(t, 12, s.Growth.CompoundingFrequency)
	assert.True(t, s.Growth.Principal.Equal(decimal.NewFromInt(1000)))
	require.NotNil(t, s.Growth.Target)
	assert.True(t, s.Growth.Target.Equal(decimal.NewFromInt(15000)))

	require.NotNil(t, s.Retirement)
	assert.True(t, s.Retirement.InflationPercent.Equal(decimal.RequireFromString("2.5")))

	require.NotNil(t, s.Budget)
	require.Len(t, s.Budget.Lines, 2)
	for _, line := range s.Budget.Lines {
		assert.NotEmpty(t, line.ID, "lines without an id are assigned one")
	}
	assert.Equal(t, domain.Expense, s.Budget.Lines[1].Classification)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
scenarios:
	- name: "Tabs"
		growth:
			principal: "not-a-number"
`
	config, err := NewInputParser().LoadFromFile(writeConfig(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_BirthDateDerivesAge(t *testing.T) {
	testConfig := `
name: Dated
scenarios:
  - name: From birth date
    retirement:
      birth_date: 1995-03-14
      retirement_age: 65
      life_expectancy: 90
      current_savings: 50000
      monthly_contribution: 500
      expected_return_percent: 7
      inflation_percent: 2.5
      current_income: 60000
      income_replacement_percent: 80
`
	config, err := fixedParser().Parse([]byte(testConfig))
	require.NoError(t, err)

	in := config.Scenarios[0].Retirement
	require.NotNil(t, in.BirthDate)
	assert.Equal(t, 30, in.CurrentAge)
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := fixedParser()
	config := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(config))
}

func TestValidateConfiguration_Errors(t *testing.T) {
	growth := func() *domain.GrowthScenario {
		return &domain.GrowthScenario{ProjectionInput: domain.ProjectionInput{
			Principal:            decimal.NewFromInt(1000),
			PeriodicContribution: decimal.NewFromInt(100),
			AnnualRatePercent:    decimal.NewFromInt(5),
			Years:                10,
			CompoundingFrequency: 12,
		}}
	}
	retirement := func() *domain.RetirementInput {
		return fixedParser().CreateExampleConfiguration().Scenarios[0].Retirement
	}
	birth := func(s string) *time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return &d
	}

	tests := []struct {
		name      string
		scenarios func() []domain.Scenario
		want      string
	}{
		{
			name:      "no scenarios",
			scenarios: func() []domain.Scenario { return nil },
			want:      "no scenarios provided",
		},
		{
			name: "missing name",
			scenarios: func() []domain.Scenario {
				return []domain.Scenario{{Growth: growth()}}
			},
			want: "scenario name is required",
		},
		{
			name: "empty scenario",
			scenarios: func() []domain.Scenario {
				return []domain.Scenario{{Name: "Empty"}}
			},
			want: "has no growth, retirement or budget section",
		},
		{
			name: "duplicate names",
			scenarios: func() []domain.Scenario {
				return []domain.Scenario{{Name: "A", Growth: growth()}, {Name: "A", Growth: growth()}}
			},
			want: "duplicate scenario name",
		},
		{
			name: "zero years",
			scenarios: func() []domain.Scenario {
				g := growth()
				g.Years = 0
				return []domain.Scenario{{Name: "A", Growth: g}}
			},
			want: "growth: invalid input: years",
		},
		{
			name: "non-positive target",
			scenarios: func() []domain.Scenario {
				g := growth()
				zero := decimal.Zero
				g.Target = &zero
				return []domain.Scenario{{Name: "A", Growth: g}}
			},
			want: "target must be positive",
		},
		{
			name: "retirement age not after current age",
			scenarios: func() []domain.Scenario {
				r := retirement()
				r.RetirementAge = r.CurrentAge
				return []domain.Scenario{{Name: "A", Retirement: r}}
			},
			want: "retirement: invalid input: retirement_age",
		},
		{
			name: "birth date disagrees with current age",
			scenarios: func() []domain.Scenario {
				r := retirement()
				r.BirthDate = birth("1980-01-01")
				return []domain.Scenario{{Name: "A", Retirement: r}}
			},
			want: "does not match birth_date",
		},
		{
			name: "birth date in the future",
			scenarios: func() []domain.Scenario {
				r := retirement()
				r.CurrentAge = 0
				r.BirthDate = birth("2030-01-01")
				return []domain.Scenario{{Name: "A", Retirement: r}}
			},
			want: "is in the future",
		},
		{
			name: "negative budget amount",
			scenarios: func() []domain.Scenario {
				return []domain.Scenario{{Name: "A", Budget: &domain.BudgetScenario{Lines: []domain.BudgetLine{
					{Name: "Rent", Amount: decimal.NewFromInt(-5), Classification: domain.Expense, Category: "Housing"},
				}}}}
			},
			want: "budget: line 0 (Rent): invalid input: amount",
		},
		{
			name: "unknown budget category",
			scenarios: func() []domain.Scenario {
				return []domain.Scenario{{Name: "A", Budget: &domain.BudgetScenario{Lines: []domain.BudgetLine{
					{Name: "Pay", Amount: decimal.NewFromInt(5), Classification: domain.Income, Category: "Housing"},
				}}}}
			},
			want: "invalid input: category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &domain.Configuration{Name: "Test", Scenarios: tt.scenarios()}
			err := fixedParser().ValidateConfiguration(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	config := NewInputParser().CreateExampleConfiguration()

	require.Len(t, config.Scenarios, 2)
	base := config.Scenarios[0]
	require.NotNil(t, base.Growth)
	require.NotNil(t, base.Retirement)
	require.NotNil(t, base.Budget)
	assert.Equal(t, 65, base.Retirement.RetirementAge)
	assert.Len(t, base.Budget.Lines, 4)
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := fixedParser()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, parser.SaveConfiguration(parser.CreateExampleConfiguration(), path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Scenarios, 2)

	original := parser.CreateExampleConfiguration().Scenarios[0]
	got := loaded.Scenarios[0]
	assert.True(t, got.Retirement.InflationPercent.Equal(original.Retirement.InflationPercent))
	assert.True(t, got.Growth.Target.Equal(*original.Growth.Target))
	assert.Len(t, got.Budget.Lines, len(original.Budget.Lines))
	assert.Equal(t, "Primary Income", got.Budget.Lines[0].Name)

	assert.Error(t, parser.SaveConfiguration(nil, path))
}
