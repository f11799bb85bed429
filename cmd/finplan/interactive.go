package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Answer a few questions and see a retirement summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			answers := newRetirementAnswers(defaultRetirementInput())
			form := answers.form().
				WithInput(cmd.InOrStdin()).
				WithOutput(cmd.ErrOrStderr())
			if err := form.RunWithContext(cmd.Context()); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}

			in, err := answers.input()
			if err != nil {
				return err
			}
			rp, err := calculation.ProjectRetirement(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), retirementPanel(rp, output.NewCurrencyFormatter(a.locale)))
			return nil
		},
	}
}

// retirementAnswers holds the form fields as typed text.
type retirementAnswers struct {
	currentAge, retirementAge, lifeExpectancy string
	savings, monthly, income, replacement    string
	returnPct, inflation                     string
}

func newRetirementAnswers(def domain.RetirementInput) *retirementAnswers {
	return &retirementAnswers{
		currentAge:     strconv.Itoa(def.CurrentAge),
		retirementAge:  strconv.Itoa(def.RetirementAge),
		lifeExpectancy: strconv.Itoa(def.LifeExpectancy),
		savings:        def.CurrentSavings.String(),
		monthly:        def.MonthlyContribution.String(),
		income:         def.CurrentIncome.String(),
		replacement:    def.IncomeReplacementPercent.String(),
		returnPct:      def.ExpectedReturnPercent.String(),
		inflation:      def.InflationPercent.String(),
	}
}

func (ra *retirementAnswers) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Current age").Value(&ra.currentAge).Validate(validateAge),
			huh.NewInput().Title("Retirement age").Value(&ra.retirementAge).Validate(validateAge),
			huh.NewInput().Title("Life expectancy").Value(&ra.lifeExpectancy).Validate(validateAge),
		).Title("Ages"),
		huh.NewGroup(
			huh.NewInput().Title("Current savings").Value(&ra.savings).Validate(validateAmount),
			huh.NewInput().Title("Monthly contribution").Value(&ra.monthly).Validate(validateAmount),
			huh.NewInput().Title("Current annual income").Value(&ra.income).Validate(validateAmount),
			huh.NewInput().Title("Income needed in retirement (%)").Value(&ra.replacement).Validate(validateAmount),
		).Title("Money"),
		huh.NewGroup(
			huh.NewInput().Title("Expected annual return (%)").Value(&ra.returnPct).Validate(validateNumber),
			huh.NewInput().Title("Annual inflation (%)").Value(&ra.inflation).Validate(validateNumber),
		).Title("Assumptions"),
	)
}

// input converts the answers and checks them together.
func (ra *retirementAnswers) input() (domain.RetirementInput, error) {
	var in domain.RetirementInput
	ints := []struct {
		dst  *int
		text string
	}{
		{&in.CurrentAge, ra.currentAge},
		{&in.RetirementAge, ra.retirementAge},
		{&in.LifeExpectancy, ra.lifeExpectancy},
	}
	for _, f := range ints {
		n, err := strconv.Atoi(strings.TrimSpace(f.text))
		if err != nil {
			return in, fmt.Errorf("not a whole number: %q", f.text)
		}
		*f.dst = n
	}

	decs := []struct {
		dst  *decimal.Decimal
		text string
	}{
		{&in.CurrentSavings, ra.savings},
		{&in.MonthlyContribution, ra.monthly},
		{&in.CurrentIncome, ra.income},
		{&in.IncomeReplacementPercent, ra.replacement},
		{&in.ExpectedReturnPercent, ra.returnPct},
		{&in.InflationPercent, ra.inflation},
	}
	for _, f := range decs {
		d, err := decimal.NewFromString(strings.TrimSpace(f.text))
		if err != nil {
			return in, fmt.Errorf("not a number: %q", f.text)
		}
		*f.dst = d
	}
	return in, in.Validate()
}

func validateAge(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number of years")
	}
	if n < 0 || n > 120 {
		return errors.New("enter an age between 0 and 120")
	}
	return nil
}

func validateNumber(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a number")
	}
	if d.IsNegative() {
		return errors.New("cannot be negative")
	}
	return nil
}

var (
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3AA99F")).Padding(1, 2)
	panelTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AA99F"))
	panelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#878580")).Width(26)
	panelGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("#66800B")).Bold(true)
	panelBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AF3029")).Bold(true)
)

// retirementPanel renders the headline numbers of a projection in a bordered box.
func retirementPanel(rp *domain.RetirementProjection, money output.CurrencyFormatter) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, panelLabel.Render(label), value)
	}

	status := panelGood.Render("Your savings should last through retirement")
	if !rp.SavingsWillLast {
		status = panelBad.Render(fmt.Sprintf("Your savings may run out at age %d", rp.DepletionAge))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		panelTitle.Render("Retirement Summary"),
		"",
		row("Years until retirement", strconv.Itoa(rp.YearsUntilRetirement)),
		row("Years in retirement", strconv.Itoa(rp.YearsInRetirement)),
		row("Balance at retirement", money.Format(rp.BalanceAtRetirement)),
		row("Required annual income", money.Format(rp.RequiredAnnualIncome)),
		row("Total contributions", money.Format(rp.TotalContributions)),
		row("Investment growth", money.Format(rp.InvestmentGrowth)),
		"",
		status,
	)
	return panelStyle.Render(body)
}
