package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
// Sections a scenario does not run leave their columns empty.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario",
		"GrowthFinalBalance", "GrowthTotalContributions", "GrowthTotalInterest", "GrowthTargetYear",
		"BalanceAtRetirement", "RequiredAnnualIncome", "RetirementContributions", "InvestmentGrowth",
		"FinalBalance", "SavingsWillLast", "DepletionAge",
		"TotalIncome", "TotalExpenses", "BudgetBalance",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		row := make([]string, 0, len(header))
		row = append(row, sc.Name)

		if g := sc.Growth; g != nil {
			row = append(row, money(g.FinalBalance), money(g.TotalContributions), money(g.TotalInterest), optionalInt(g.TargetYear))
		} else {
			row = append(row, "", "", "", "")
		}

		if r := sc.Retirement; r != nil {
			row = append(row,
				money(r.BalanceAtRetirement), money(r.RequiredAnnualIncome),
				money(r.TotalContributions), money(r.InvestmentGrowth),
				money(r.FinalBalance), boolToString(r.SavingsWillLast), optionalInt(r.DepletionAge))
		} else {
			row = append(row, "", "", "", "", "", "", "")
		}

		if b := sc.Budget; b != nil {
			row = append(row, money(b.TotalIncome), money(b.TotalExpenses), money(b.Balance))
		} else {
			row = append(row, "", "", "")
		}

		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func optionalInt(i int) string {
	if i == 0 {
		return ""
	}
	return intToString(i)
}
