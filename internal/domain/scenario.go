package domain

import (
	"time"
)

// Configuration is the top-level scenario file
type Configuration struct {
	Name      string     `yaml:"name" json:"name"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario bundles the calculators one named plan runs. Each section is optional
// but at least one must be present.
type Scenario struct {
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	Growth      *GrowthScenario  `yaml:"growth,omitempty" json:"growth,omitempty"`
	Retirement  *RetirementInput `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	Budget      *BudgetScenario  `yaml:"budget,omitempty" json:"budget,omitempty"`
}

// ScenarioResult holds the outputs of one scenario
type ScenarioResult struct {
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Growth      *GrowthProjection     `json:"growth,omitempty" yaml:"growth,omitempty"`
	Retirement  *RetirementProjection `json:"retirement,omitempty" yaml:"retirement,omitempty"`
	BudgetLines []BudgetLine          `json:"budget_lines,omitempty" yaml:"budget_lines,omitempty"`
	Budget      *BudgetSummary        `json:"budget,omitempty" yaml:"budget,omitempty"`
}

// Report is what output formatters render
type Report struct {
	Title       string           `json:"title" yaml:"title"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Scenarios   []ScenarioResult `json:"scenarios" yaml:"scenarios"`
	Assumptions []string         `json:"assumptions" yaml:"assumptions"`
}
