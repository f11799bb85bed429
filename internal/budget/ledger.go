// Package budget holds the editable working set of budget lines that the
// budget aggregator summarizes. Nothing here is persisted.
package budget

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrLineNotFound is returned when an identity does not match any line.
	ErrLineNotFound = errors.New("budget line not found")
	// ErrUnknownCategory is returned when a category is outside the line's classification list.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDuplicateID is returned when an imported line reuses an identity.
	ErrDuplicateID = errors.New("duplicate budget line id")
)

// Ledger is a mutable, ordered set of budget lines. It is safe for concurrent use.
type Ledger struct {
	mu    sync.RWMutex
	lines []domain.BudgetLine
	newID func() string
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{newID: uuid.NewString}
}

// NewDefaultLedger creates a ledger seeded with the sample household budget
func NewDefaultLedger() *Ledger {
	l := NewLedger()
	// The sample lines are valid by construction.
	_ = l.Import(
		domain.BudgetLine{Name: "Primary Income", Amount: decimal.NewFromInt(3000), Classification: domain.Income, Category: "Salary"},
		domain.BudgetLine{Name: "Rent", Amount: decimal.NewFromInt(1200), Classification: domain.Expense, Category: "Housing"},
		domain.BudgetLine{Name: "Groceries", Amount: decimal.NewFromInt(400), Classification: domain.Expense, Category: "Food"},
		domain.BudgetLine{Name: "Utilities", Amount: decimal.NewFromInt(150), Classification: domain.Expense, Category: "Utilities"},
	)
	return l
}

// Add appends a blank line with a generated identity and the classification's default category.
func (l *Ledger) Add(c domain.Classification) (domain.BudgetLine, error) {
	if !c.Valid() {
		return domain.BudgetLine{}, &domain.ValidationError{Field: "classification", Reason: fmt.Sprintf("must be %q or %q (got %q)", domain.Income, domain.Expense, c)}
	}
	line := domain.BudgetLine{
		ID:             l.newID(),
		Amount:         decimal.Zero,
		Classification: c,
		Category:       domain.DefaultCategory(c),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	return line, nil
}

// Import validates and appends existing lines, generating identities for lines without one.
// Either every line is imported or none is.
func (l *Ledger) Import(lines ...domain.BudgetLine) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]bool, len(l.lines)+len(lines))
	for _, existing := range l.lines {
		seen[existing.ID] = true
	}

	staged := make([]domain.BudgetLine, 0, len(lines))
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("line %d (%s): %w", i, line.Name, err)
		}
		if line.ID == "" {
			line.ID = l.newID()
		}
		if seen[line.ID] {
			return fmt.Errorf("line %d (%s): %w: %s", i, line.Name, ErrDuplicateID, line.ID)
		}
		seen[line.ID] = true
		staged = append(staged, line)
	}

	l.lines = append(l.lines, staged...)
	return nil
}

// SetName renames a line
func (l *Ledger) SetName(id, name string) error {
	return l.update(id, func(line *domain.BudgetLine) error {
		line.Name = name
		return nil
	})
}

// SetAmount changes a line's amount. Negative amounts are rejected.
func (l *Ledger) SetAmount(id string, amount decimal.Decimal) error {
	return l.update(id, func(line *domain.BudgetLine) error {
		if amount.IsNegative() {
			return &domain.ValidationError{Field: "amount", Reason: fmt.Sprintf("cannot be negative (got %s)", amount)}
		}
		line.Amount = amount
		return nil
	})
}

// SetCategory changes a line's category. It must come from the line's classification list.
func (l *Ledger) SetCategory(id, category string) error {
	return l.update(id, func(line *domain.BudgetLine) error {
		if !domain.IsValidCategory(line.Classification, category) {
			return fmt.Errorf("%w: %q is not a %s category", ErrUnknownCategory, category, line.Classification)
		}
		line.Category = category
		return nil
	})
}

// Remove deletes a line by identity
func (l *Ledger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	l.lines = slices.Delete(l.lines, i, i+1)
	return nil
}

// Get returns a copy of one line
func (l *Ledger) Get(id string) (domain.BudgetLine, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOf(id)
	if i < 0 {
		return domain.BudgetLine{}, fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	return l.lines[i], nil
}

// All returns a copy of every line in insertion order
func (l *Ledger) All() []domain.BudgetLine {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.lines)
}

// Lines returns a copy of the lines of one classification in insertion order
func (l *Ledger) Lines(c domain.Classification) []domain.BudgetLine {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.BudgetLine
	for _, line := range l.lines {
		if line.Classification == c {
			out = append(out, line)
		}
	}
	return out
}

// Len returns the number of lines
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.lines)
}

// Summary aggregates the current lines
func (l *Ledger) Summary() domain.BudgetSummary {
	return calculation.AggregateBudget(l.All())
}

// Advice returns the hint for the current balance
func (l *Ledger) Advice() string {
	return l.Summary().Advice()
}

func (l *Ledger) update(id string, apply func(*domain.BudgetLine) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	line := l.lines[i]
	if err := apply(&line); err != nil {
		return err
	}
	l.lines[i] = line
	return nil
}

func (l *Ledger) indexOf(id string) int {
	return slices.IndexFunc(l.lines, func(line domain.BudgetLine) bool { return line.ID == id })
}
