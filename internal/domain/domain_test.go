package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyName(t *testing.T) {
	assert.Equal(t, "monthly", FrequencyName(CompoundMonthly))
	assert.Equal(t, "daily", FrequencyName(CompoundDaily))
	assert.Equal(t, "5 times per year", FrequencyName(5))
}

func TestValidationError(t *testing.T) {
	err := ProjectionInput{Years: 0, CompoundingFrequency: 12}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "invalid input: years must be at least 1 (got 0)", err.Error())
}

func TestRetirementInput_YearCounts(t *testing.T) {
	in := RetirementInput{CurrentAge: 40, RetirementAge: 60, LifeExpectancy: 85}
	require.NoError(t, in.Validate())
	assert.Equal(t, 20, in.YearsUntilRetirement())
	assert.Equal(t, 25, in.YearsInRetirement())
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories(Income), 5)
	assert.Len(t, Categories(Expense), 12)
	assert.Nil(t, Categories(Classification("transfer")))

	cats := Categories(Income)
	cats[0] = "Changed"
	assert.Equal(t, "Salary", Categories(Income)[0], "Categories must return a copy")

	assert.Equal(t, "Salary", DefaultCategory(Income))
	assert.Equal(t, "Other", DefaultCategory(Expense))
	assert.True(t, IsValidCategory(Expense, "Housing"))
	assert.False(t, IsValidCategory(Income, "Housing"))
}

func TestBudgetLine_Validate(t *testing.T) {
	tests := []struct {
		name  string
		line  BudgetLine
		field string
	}{
		{"valid income", BudgetLine{Name: "Pay", Amount: decimal.NewFromInt(10), Classification: Income, Category: "Salary"}, ""},
		{"zero amount ok", BudgetLine{Classification: Expense, Category: "Other"}, ""},
		{"negative amount", BudgetLine{Amount: decimal.NewFromInt(-1), Classification: Expense, Category: "Food"}, "amount"},
		{"unknown classification", BudgetLine{Classification: "gift", Category: "Other"}, "classification"},
		{"category from other list", BudgetLine{Classification: Income, Category: "Food"}, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestBudgetSummary_ExpenseShare(t *testing.T) {
	s := BudgetSummary{TotalExpenses: decimal.NewFromInt(1600)}
	share := s.ExpenseShare(CategoryTotal{Category: "Housing", Amount: decimal.NewFromInt(1200)})
	assert.True(t, share.Equal(decimal.NewFromInt(75)))

	empty := BudgetSummary{TotalExpenses: decimal.Zero}
	assert.True(t, empty.ExpenseShare(CategoryTotal{Amount: decimal.NewFromInt(5)}).IsZero())
}

func TestRetirementProjection_PhaseFilters(t *testing.T) {
	rp := &RetirementProjection{Points: []RetirementPoint{
		{Age: 31, Phase: PhaseAccumulating},
		{Age: 32, Phase: PhaseWithdrawing},
		{Age: 33, Phase: PhaseWithdrawing},
	}}
	assert.Len(t, rp.AccumulationPoints(), 1)
	assert.Len(t, rp.WithdrawalPoints(), 2)
}
