package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/finplan/internal/domain"
	fin "github.com/rpgo/finplan/pkg/decimal"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with a balance chart per scenario.
type HTMLFormatter struct {
	Locale string
}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) withLocale(locale string) Formatter { return HTMLFormatter{Locale: locale} }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	// curr is replaced per render with the formatter's locale
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"age":   FormatAge,
	"floor": fin.FloorZero,
	"freq":  domain.FrequencyName,
	"share": func(s *domain.BudgetSummary, ct domain.CategoryTotal) decimal.Decimal { return s.ExpenseShare(ct) },
	"add":   func(i, j int) int { return i + j },

	"growthSeries":     growthSeries,
	"retirementSeries": retirementSeries,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the data the embedded chart script plots for one scenario.
type chartSeries struct {
	Labels   []int     `json:"labels"`
	Balances []float64 `json:"balances"`
}

func growthSeries(gp *domain.GrowthProjection) chartSeries {
	var cs chartSeries
	for _, p := range gp.Points {
		cs.Labels = append(cs.Labels, p.Year)
		cs.Balances = append(cs.Balances, p.Balance.Round(2).InexactFloat64())
	}
	return cs
}

func retirementSeries(rp *domain.RetirementProjection) chartSeries {
	var cs chartSeries
	for _, p := range rp.Points {
		cs.Labels = append(cs.Labels, p.Age)
		cs.Balances = append(cs.Balances, p.DisplayBalance.Round(2).InexactFloat64())
	}
	return cs
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	money := NewCurrencyFormatter(h.Locale)

	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{"curr": money.Format})

	data := struct {
		*domain.Report
		Recommendation Recommendation
		Compare        bool
		Assumptions    []string
	}{report, AnalyzeScenarios(report), retirementCount(report) > 1, assumptionsFor(report)}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
