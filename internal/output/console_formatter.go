package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rpgo/finplan/internal/domain"
	fin "github.com/rpgo/finplan/pkg/decimal"
)

// ConsoleFormatter renders a summary of every scenario with pterm tables.
type ConsoleFormatter struct {
	Locale string
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) withLocale(locale string) Formatter { return ConsoleFormatter{Locale: locale} }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	cw := newConsoleWriter(&buf, c.Locale, false)
	if err := cw.report(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	good    = color.New(color.FgGreen, color.Bold).SprintFunc()
	bad     = color.New(color.FgRed, color.Bold).SprintFunc()
	caution = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// consoleWriter holds the shared rendering state of the console formatters.
type consoleWriter struct {
	w       io.Writer
	money   CurrencyFormatter
	verbose bool
}

func newConsoleWriter(w io.Writer, locale string, verbose bool) *consoleWriter {
	return &consoleWriter{w: w, money: NewCurrencyFormatter(locale), verbose: verbose}
}

func (cw *consoleWriter) report(report *domain.Report) error {
	title := report.Title
	if title == "" {
		title = "FINANCIAL PROJECTION SUMMARY"
	}
	fmt.Fprintln(cw.w, strings.Repeat("=", 64))
	fmt.Fprintln(cw.w, strings.ToUpper(title))
	fmt.Fprintln(cw.w, strings.Repeat("=", 64))
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(cw.w, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(cw.w)

	for i := range report.Scenarios {
		if err := cw.scenario(i+1, &report.Scenarios[i]); err != nil {
			return err
		}
	}

	if retirementCount(report) > 1 {
		if err := cw.comparison(report); err != nil {
			return err
		}
	}

	fmt.Fprintln(cw.w, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(report) {
		fmt.Fprintf(cw.w, "• %s\n", a)
	}
	return nil
}

func (cw *consoleWriter) scenario(n int, sc *domain.ScenarioResult) error {
	fmt.Fprintf(cw.w, "SCENARIO %d: %s\n", n, sc.Name)
	fmt.Fprintln(cw.w, strings.Repeat("-", 50))
	if sc.Description != "" {
		fmt.Fprintln(cw.w, sc.Description)
	}
	fmt.Fprintln(cw.w)

	if sc.Growth != nil {
		if err := cw.growth(sc.Growth); err != nil {
			return err
		}
	}
	if sc.Retirement != nil {
		if err := cw.retirement(sc.Retirement); err != nil {
			return err
		}
	}
	if sc.Budget != nil {
		if err := cw.budget(sc.Budget, sc.BudgetLines); err != nil {
			return err
		}
	}
	return nil
}

func (cw *consoleWriter) growth(gp *domain.GrowthProjection) error {
	in := gp.Input
	fmt.Fprintln(cw.w, pterm.FgLightCyan.Sprint("COMPOUND GROWTH"))
	fmt.Fprintf(cw.w, "  %s principal, %s per period, %s compounded %s for %d years\n",
		cw.money.Format(in.Principal), cw.money.Format(in.PeriodicContribution),
		FormatRate(in.AnnualRatePercent), domain.FrequencyName(in.CompoundingFrequency), in.Years)

	data := pterm.TableData{{"Year", "Contributions", "Interest", "Balance"}}
	for _, p := range gp.Points {
		data = append(data, []string{
			intToString(p.Year),
			cw.money.Format(p.Contributions),
			cw.money.Format(p.Interest),
			cw.money.Format(p.Balance),
		})
	}
	if err := cw.table(data); err != nil {
		return err
	}

	fmt.Fprintf(cw.w, "  Final balance:       %s\n", cw.money.Format(gp.FinalBalance))
	fmt.Fprintf(cw.w, "  Total contributions: %s\n", cw.money.Format(gp.TotalContributions))
	fmt.Fprintf(cw.w, "  Total interest:      %s\n", cw.money.Format(gp.TotalInterest))
	if gp.Target != nil {
		if gp.TargetYear > 0 {
			fmt.Fprintf(cw.w, "  Target %s:      %s\n", cw.money.Format(*gp.Target), good(fmt.Sprintf("reached in year %d", gp.TargetYear)))
		} else {
			fmt.Fprintf(cw.w, "  Target %s:      %s\n", cw.money.Format(*gp.Target), caution("not reached"))
		}
	}
	fmt.Fprintln(cw.w)
	return nil
}

func (cw *consoleWriter) retirement(rp *domain.RetirementProjection) error {
	in := rp.Input
	fmt.Fprintln(cw.w, pterm.FgLightCyan.Sprint("RETIREMENT"))
	fmt.Fprintf(cw.w, "  Age %d to %d, retiring at %d; %s return, %s inflation\n",
		in.CurrentAge, in.LifeExpectancy, in.RetirementAge,
		FormatRate(in.ExpectedReturnPercent), FormatRate(in.InflationPercent))

	summary := pterm.TableData{
		{"Measure", "Value"},
		{"Years until retirement", intToString(rp.YearsUntilRetirement)},
		{"Years in retirement", intToString(rp.YearsInRetirement)},
		{"Savings at retirement", cw.money.Format(rp.BalanceAtRetirement)},
		{"Total contributions", cw.money.Format(rp.TotalContributions)},
		{"Investment growth", cw.money.Format(rp.InvestmentGrowth)},
		{"Required annual income", cw.money.Format(rp.RequiredAnnualIncome)},
		{"Balance at life expectancy", cw.money.Format(fin.FloorZero(rp.FinalBalance))},
	}
	if err := cw.table(summary); err != nil {
		return err
	}

	if rp.SavingsWillLast {
		fmt.Fprintf(cw.w, "  %s\n", good("Your savings should last through retirement"))
	} else {
		fmt.Fprintf(cw.w, "  %s\n", bad(fmt.Sprintf("Your savings may run out at age %d", rp.DepletionAge)))
	}

	if cw.verbose {
		data := pterm.TableData{{"Age", "Year", "Phase", "Contribution", "Withdrawal", "Balance"}}
		for _, p := range rp.Points {
			year := "-"
			if p.CalendarYear > 0 {
				year = intToString(p.CalendarYear)
			}
			data = append(data, []string{
				intToString(p.Age),
				year,
				string(p.Phase),
				cw.money.Format(p.Contribution),
				cw.money.Format(p.Withdrawal),
				cw.money.Format(p.DisplayBalance),
			})
		}
		if err := cw.table(data); err != nil {
			return err
		}
	}
	fmt.Fprintln(cw.w)
	return nil
}

func (cw *consoleWriter) budget(s *domain.BudgetSummary, lines []domain.BudgetLine) error {
	fmt.Fprintln(cw.w, pterm.FgLightCyan.Sprint("MONTHLY BUDGET"))

	if cw.verbose && len(lines) > 0 {
		data := pterm.TableData{{"Name", "Type", "Category", "Amount"}}
		for _, l := range lines {
			data = append(data, []string{l.Name, string(l.Classification), l.Category, cw.money.Format(l.Amount)})
		}
		if err := cw.table(data); err != nil {
			return err
		}
	}

	fmt.Fprintf(cw.w, "  Total income:   %s\n", cw.money.Format(s.TotalIncome))
	fmt.Fprintf(cw.w, "  Total expenses: %s\n", cw.money.Format(s.TotalExpenses))
	balance := cw.money.Format(s.Balance)
	if s.Balance.IsNegative() {
		balance = bad(balance)
	} else {
		balance = good(balance)
	}
	fmt.Fprintf(cw.w, "  Balance:        %s\n", balance)

	if len(s.ExpenseByCategory) > 0 {
		data := pterm.TableData{{"Category", "Amount", "Share"}}
		for _, ct := range s.ExpenseByCategory {
			data = append(data, []string{ct.Category, cw.money.Format(ct.Amount), FormatPercentage(s.ExpenseShare(ct))})
		}
		if err := cw.table(data); err != nil {
			return err
		}
	}
	fmt.Fprintf(cw.w, "  %s\n\n", s.Advice())
	return nil
}

func (cw *consoleWriter) comparison(report *domain.Report) error {
	fmt.Fprintln(cw.w, "SCENARIO COMPARISON")
	fmt.Fprintln(cw.w, strings.Repeat("-", 50))
	data := pterm.TableData{{"Scenario", "At retirement", "Required income", "At life expectancy", "Lasts"}}
	for _, sc := range report.Scenarios {
		rp := sc.Retirement
		if rp == nil {
			continue
		}
		lasts := good("yes")
		if !rp.SavingsWillLast {
			lasts = bad("no, age " + intToString(rp.DepletionAge))
		}
		data = append(data, []string{
			sc.Name,
			cw.money.Format(rp.BalanceAtRetirement),
			cw.money.Format(rp.RequiredAnnualIncome),
			cw.money.Format(fin.FloorZero(rp.FinalBalance)),
			lasts,
		})
	}
	if err := cw.table(data); err != nil {
		return err
	}
	if rec := AnalyzeScenarios(report); rec.ScenarioName != "" {
		fmt.Fprintf(cw.w, "Recommended: %s\n\n", rec.ScenarioName)
	}
	return nil
}

func (cw *consoleWriter) table(data pterm.TableData) error {
	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(cw.w, rendered)
	return nil
}
