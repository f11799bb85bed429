package budget

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLedger(t *testing.T) {
	l := NewDefaultLedger()
	require.Equal(t, 4, l.Len())

	income := l.Lines(domain.Income)
	require.Len(t, income, 1)
	assert.Equal(t, "Primary Income", income[0].Name)

	expenses := l.Lines(domain.Expense)
	require.Len(t, expenses, 3)
	assert.Equal(t, []string{"Rent", "Groceries", "Utilities"}, []string{expenses[0].Name, expenses[1].Name, expenses[2].Name})

	s := l.Summary()
	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(3000)))
	assert.True(t, s.TotalExpenses.Equal(decimal.NewFromInt(1750)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(1250)))
	assert.Contains(t, l.Advice(), "positive balance")

	for _, line := range l.All() {
		_, err := uuid.Parse(line.ID)
		assert.NoError(t, err, line.Name)
	}
}

func TestAddUsesDefaultCategory(t *testing.T) {
	l := NewLedger()

	in, err := l.Add(domain.Income)
	require.NoError(t, err)
	assert.Equal(t, "Salary", in.Category)
	assert.True(t, in.Amount.IsZero())
	assert.Empty(t, in.Name)

	out, err := l.Add(domain.Expense)
	require.NoError(t, err)
	assert.Equal(t, "Other", out.Category)
	assert.NotEqual(t, in.ID, out.ID)

	_, err = l.Add(domain.Classification("transfer"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 2, l.Len())
}

func TestEditLine(t *testing.T) {
	l := NewLedger()
	line, err := l.Add(domain.Expense)
	require.NoError(t, err)

	require.NoError(t, l.SetName(line.ID, "Car payment"))
	require.NoError(t, l.SetAmount(line.ID, decimal.NewFromInt(350)))
	require.NoError(t, l.SetCategory(line.ID, "Transportation"))

	got, err := l.Get(line.ID)
	require.NoError(t, err)
	assert.Equal(t, "Car payment", got.Name)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, "Transportation", got.Category)

	err = l.SetAmount(line.ID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = l.SetCategory(line.ID, "Salary")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	got, err = l.Get(line.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(350)), "rejected edits leave the line unchanged")
	assert.Equal(t, "Transportation", got.Category)
}

func TestUnknownID(t *testing.T) {
	l := NewDefaultLedger()

	assert.ErrorIs(t, l.SetName("missing", "x"), ErrLineNotFound)
	assert.ErrorIs(t, l.SetAmount("missing", decimal.Zero), ErrLineNotFound)
	assert.ErrorIs(t, l.SetCategory("missing", "Food"), ErrLineNotFound)
	assert.ErrorIs(t, l.Remove("missing"), ErrLineNotFound)
	_, err := l.Get("missing")
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemoveKeepsOrder(t *testing.T) {
	l := NewDefaultLedger()
	expenses := l.Lines(domain.Expense)

	require.NoError(t, l.Remove(expenses[1].ID))

	remaining := l.Lines(domain.Expense)
	require.Len(t, remaining, 2)
	assert.Equal(t, "Rent", remaining[0].Name)
	assert.Equal(t, "Utilities", remaining[1].Name)

	s := l.Summary()
	assert.True(t, s.TotalExpenses.Equal(decimal.NewFromInt(1350)))
}

func TestLinesReturnsCopies(t *testing.T) {
	l := NewDefaultLedger()
	lines := l.All()
	lines[0].Name = "changed"

	assert.Equal(t, "Primary Income", l.All()[0].Name)
}

func TestImport(t *testing.T) {
	l := NewLedger()
	err := l.Import(
		domain.BudgetLine{ID: "fixed", Name: "Salary", Amount: decimal.NewFromInt(5000), Classification: domain.Income, Category: "Salary"},
		domain.BudgetLine{Name: "Rent", Amount: decimal.NewFromInt(2000), Classification: domain.Expense, Category: "Housing"},
	)
	require.NoError(t, err)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "fixed", all[0].ID)
	assert.NotEmpty(t, all[1].ID)

	t.Run("duplicate id", func(t *testing.T) {
		err := l.Import(domain.BudgetLine{ID: "fixed", Name: "Bonus", Amount: decimal.NewFromInt(1), Classification: domain.Income, Category: "Other"})
		assert.ErrorIs(t, err, ErrDuplicateID)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("invalid line rolls back the batch", func(t *testing.T) {
		err := l.Import(
			domain.BudgetLine{Name: "Gym", Amount: decimal.NewFromInt(40), Classification: domain.Expense, Category: "Personal"},
			domain.BudgetLine{Name: "Refund", Amount: decimal.NewFromInt(-10), Classification: domain.Expense, Category: "Other"},
		)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, 2, l.Len())
	})
}

func TestOverBudgetAdvice(t *testing.T) {
	l := NewDefaultLedger()
	rent := l.Lines(domain.Expense)[0]
	require.NoError(t, l.SetAmount(rent.ID, decimal.NewFromInt(4000)))

	assert.True(t, l.Summary().Balance.IsNegative())
	assert.Contains(t, l.Advice(), "exceed your income")
}

func TestConcurrentEdits(t *testing.T) {
	l := NewLedger()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			line, err := l.Add(domain.Expense)
			if err != nil {
				t.Error(err)
				return
			}
			if err := l.SetAmount(line.ID, decimal.NewFromInt(int64(i))); err != nil {
				t.Error(err)
			}
			_ = l.Summary()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, l.Len())
	// 0 + 1 + ... + 19
	assert.True(t, l.Summary().TotalExpenses.Equal(decimal.NewFromInt(190)))
}

func ExampleLedger() {
	l := NewLedger()
	_ = l.Import(
		domain.BudgetLine{Name: "Salary", Amount: decimal.NewFromInt(3000), Classification: domain.Income, Category: "Salary"},
		domain.BudgetLine{Name: "Rent", Amount: decimal.NewFromInt(1200), Classification: domain.Expense, Category: "Housing"},
	)
	s := l.Summary()
	fmt.Println(s.Balance)
	// Output: 1800
}
