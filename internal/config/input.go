package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rpgo/finplan/internal/budget"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct {
	// Now anchors ages derived from birth dates. Defaults to time.Now.
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

// LoadFromFile loads and validates a configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration from YAML bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates a configuration in place. Ages are derived
// from birth dates and budget lines without an id are given one.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.Growth == nil && scenario.Retirement == nil && scenario.Budget == nil {
		return fmt.Errorf("scenario %q has no growth, retirement or budget section", scenario.Name)
	}

	if scenario.Growth != nil {
		if err := scenario.Growth.Validate(); err != nil {
			return fmt.Errorf("growth: %w", err)
		}
		if scenario.Growth.Target != nil && !scenario.Growth.Target.IsPositive() {
			return fmt.Errorf("growth: target must be positive")
		}
	}

	if scenario.Retirement != nil {
		if err := ip.resolveAge(scenario.Retirement); err != nil {
			return fmt.Errorf("retirement: %w", err)
		}
		if err := scenario.Retirement.Validate(); err != nil {
			return fmt.Errorf("retirement: %w", err)
		}
	}

	if scenario.Budget != nil {
		ledger := budget.NewLedger()
		if err := ledger.Import(scenario.Budget.Lines...); err != nil {
			return fmt.Errorf("budget: %w", err)
		}
		scenario.Budget.Lines = ledger.All()
	}

	return nil
}

// resolveAge fills CurrentAge from BirthDate, or checks they agree when both are given.
func (ip *InputParser) resolveAge(in *domain.RetirementInput) error {
	if in.BirthDate == nil {
		return nil
	}
	now := ip.now()
	if in.BirthDate.After(now) {
		return fmt.Errorf("birth_date %s is in the future", in.BirthDate.Format("2006-01-02"))
	}

	age := dateutil.Age(*in.BirthDate, now)
	if in.CurrentAge != 0 && in.CurrentAge != age {
		return fmt.Errorf("current_age %d does not match birth_date %s (age %d)", in.CurrentAge, in.BirthDate.Format("2006-01-02"), age)
	}
	in.CurrentAge = age
	return nil
}

func (ip *InputParser) now() time.Time {
	if ip.Now == nil {
		return time.Now()
	}
	return ip.Now()
}

// SaveConfiguration writes a configuration as YAML
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	if config == nil {
		return errors.New("configuration is nil")
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration using the calculators' defaults
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	target := decimal.NewFromInt(25000)

	return &domain.Configuration{
		Name: "Example Plan",
		Scenarios: []domain.Scenario{
			{
				Name:        "Baseline",
				Description: "Default savings, retirement and budget inputs",
				Growth: &domain.GrowthScenario{
					ProjectionInput: domain.ProjectionInput{
						Principal:            decimal.NewFromInt(1000),
						PeriodicContribution: decimal.NewFromInt(100),
						AnnualRatePercent:    decimal.NewFromInt(5),
						Years:                10,
						CompoundingFrequency: domain.CompoundMonthly,
					},
					Target: &target,
				},
				Retirement: &domain.RetirementInput{
					CurrentAge:               30,
					RetirementAge:            65,
					LifeExpectancy:           90,
					CurrentSavings:           decimal.NewFromInt(50000),
					MonthlyContribution:      decimal.NewFromInt(500),
					ExpectedReturnPercent:    decimal.NewFromInt(7),
					InflationPercent:         decimal.NewFromFloat(2.5),
					CurrentIncome:            decimal.NewFromInt(60000),
					IncomeReplacementPercent: decimal.NewFromInt(80),
				},
				Budget: &domain.BudgetScenario{
					Lines: budget.NewDefaultLedger().All(),
				},
			},
			{
				Name:        "Higher Contributions",
				Description: "Saving 1,000 a month with a 70% income replacement target",
				Retirement: &domain.RetirementInput{
					CurrentAge:               30,
					RetirementAge:            65,
					LifeExpectancy:           90,
					CurrentSavings:           decimal.NewFromInt(50000),
					MonthlyContribution:      decimal.NewFromInt(1000),
					ExpectedReturnPercent:    decimal.NewFromInt(7),
					InflationPercent:         decimal.NewFromFloat(2.5),
					CurrentIncome:            decimal.NewFromInt(60000),
					IncomeReplacementPercent: decimal.NewFromInt(70),
				},
			},
		},
	}
}
