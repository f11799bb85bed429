package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/finplan/internal/budget"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newBudgetCmd(a *app) *cobra.Command {
	var (
		incomes  []string
		expenses []string
		sample   bool
	)

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Summarize monthly income and expenses by category",
		Long: "Each --income and --expense takes NAME=AMOUNT[:CATEGORY]. Without a category\n" +
			"income lines default to Salary and expenses to Other. With no lines the sample\n" +
			"budget is used.",
		Example: `  finplan budget --sample
  finplan budget --income "Pay=4200:Salary" --expense "Rent=1500:Housing" --expense "Bus=90:Transportation"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ledger, err := buildLedger(incomes, expenses, sample)
			if err != nil {
				return err
			}
			sc := domain.Scenario{Name: "Budget", Budget: &domain.BudgetScenario{Lines: ledger.All()}}
			return a.runScenario(cmd, "Monthly Budget", sc)
		},
	}

	cmd.Flags().StringArrayVar(&incomes, "income", nil, "Income line as NAME=AMOUNT[:CATEGORY] (repeatable)")
	cmd.Flags().StringArrayVar(&expenses, "expense", nil, "Expense line as NAME=AMOUNT[:CATEGORY] (repeatable)")
	cmd.Flags().BoolVar(&sample, "sample", false, "Start from the sample budget")
	return cmd
}

func buildLedger(incomes, expenses []string, sample bool) (*budget.Ledger, error) {
	ledger := budget.NewLedger()
	if sample || (len(incomes) == 0 && len(expenses) == 0) {
		ledger = budget.NewDefaultLedger()
	}
	for _, spec := range incomes {
		if err := addLine(ledger, domain.Income, spec); err != nil {
			return nil, err
		}
	}
	for _, spec := range expenses {
		if err := addLine(ledger, domain.Expense, spec); err != nil {
			return nil, err
		}
	}
	return ledger, nil
}

// addLine parses NAME=AMOUNT[:CATEGORY] and appends it to the ledger.
func addLine(ledger *budget.Ledger, c domain.Classification, spec string) error {
	name, rest, ok := strings.Cut(spec, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s %q: want NAME=AMOUNT[:CATEGORY]", c, spec)
	}
	amountText, category, hasCategory := strings.Cut(rest, ":")
	amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil {
		return fmt.Errorf("%s %q: amount %q is not a number", c, spec, amountText)
	}

	line, err := ledger.Add(c)
	if err != nil {
		return err
	}
	if err := ledger.SetName(line.ID, strings.TrimSpace(name)); err != nil {
		return err
	}
	if err := ledger.SetAmount(line.ID, amount); err != nil {
		return fmt.Errorf("%s %q: %w", c, spec, err)
	}
	if hasCategory {
		if err := ledger.SetCategory(line.ID, strings.TrimSpace(category)); err != nil {
			return fmt.Errorf("%s %q: %w", c, spec, err)
		}
	}
	return nil
}
