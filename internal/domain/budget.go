package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Classification separates income lines from expense lines
type Classification string

const (
	Income  Classification = "income"
	Expense Classification = "expense"
)

// Valid reports whether c is a known classification
func (c Classification) Valid() bool { return c == Income || c == Expense }

var incomeCategories = []string{
	"Salary", "Investments", "Freelance", "Business", "Other",
}

var expenseCategories = []string{
	"Housing", "Transportation", "Food", "Utilities",
	"Insurance", "Healthcare", "Savings", "Personal",
	"Entertainment", "Debt", "Education", "Other",
}

// Categories returns the fixed category list for a classification
func Categories(c Classification) []string {
	switch c {
	case Income:
		return slices.Clone(incomeCategories)
	case Expense:
		return slices.Clone(expenseCategories)
	default:
		return nil
	}
}

// DefaultCategory is the category a new line starts with
func DefaultCategory(c Classification) string {
	if c == Income {
		return "Salary"
	}
	return "Other"
}

// IsValidCategory reports whether category belongs to the classification's list
func IsValidCategory(c Classification, category string) bool {
	switch c {
	case Income:
		return slices.Contains(incomeCategories, category)
	case Expense:
		return slices.Contains(expenseCategories, category)
	default:
		return false
	}
}

// BudgetLine is a single income or expense entry
type BudgetLine struct {
	ID             string          `yaml:"id,omitempty" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	Classification Classification  `yaml:"classification" json:"classification"`
	Category       string          `yaml:"category" json:"category"`
}

// Validate checks an entered line: non-negative amount, known classification and category.
func (l BudgetLine) Validate() error {
	if !l.Classification.Valid() {
		return invalid("classification", "must be %q or %q (got %q)", Income, Expense, l.Classification)
	}
	if l.Amount.IsNegative() {
		return invalid("amount", "cannot be negative (got %s)", l.Amount)
	}
	if !IsValidCategory(l.Classification, l.Category) {
		return invalid("category", "%q is not a %s category", l.Category, l.Classification)
	}
	return nil
}

// CategoryTotal is the summed amount of one expense category
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}

// BudgetSummary aggregates a set of budget lines
type BudgetSummary struct {
	TotalIncome       decimal.Decimal `json:"total_income" yaml:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses" yaml:"total_expenses"`
	Balance           decimal.Decimal `json:"balance" yaml:"balance"`
	ExpenseByCategory []CategoryTotal `json:"expense_by_category" yaml:"expense_by_category"` // first-seen order
}

// Advice returns the hint shown under the budget summary
func (s BudgetSummary) Advice() string {
	if s.Balance.IsNegative() {
		return "Your expenses exceed your income. Consider reducing some expenses."
	}
	return "You have a positive balance. Consider investing the extra money."
}

// ExpenseShare returns a category's share of total expenses as a percentage
func (s BudgetSummary) ExpenseShare(ct CategoryTotal) decimal.Decimal {
	if s.TotalExpenses.IsZero() {
		return decimal.Zero
	}
	return ct.Amount.Div(s.TotalExpenses).Mul(decimal.NewFromInt(100))
}

// BudgetScenario is the scenario-file form of a budget
type BudgetScenario struct {
	Lines []BudgetLine `yaml:"lines" json:"lines"`
}
