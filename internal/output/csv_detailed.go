package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/finplan/internal/domain"
)

// CSVDetailedExporter writes every projected period, one row per scenario
// and year. Growth rows are keyed by year, retirement rows by age.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Section", "Year", "Age", "CalendarYear", "Phase", "Contributions", "Interest", "Withdrawal", "Balance", "DisplayBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		if g := sc.Growth; g != nil {
			for _, p := range g.Points {
				row := []string{
					sc.Name, "growth",
					intToString(p.Year), "", "", "",
					money(p.Contributions), money(p.Interest), "",
					money(p.Balance), money(p.Balance),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
		if r := sc.Retirement; r != nil {
			for i, p := range r.Points {
				row := []string{
					sc.Name, "retirement",
					intToString(i + 1), intToString(p.Age), optionalInt(p.CalendarYear), string(p.Phase),
					money(p.Contribution), "", money(p.Withdrawal),
					money(p.Balance), money(p.DisplayBalance),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
