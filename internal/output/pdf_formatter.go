package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/rpgo/finplan/internal/domain"
	fin "github.com/rpgo/finplan/pkg/decimal"
)

// PDFFormatter renders one A4 page per scenario.
type PDFFormatter struct {
	Locale string
}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) withLocale(locale string) Formatter { return PDFFormatter{Locale: locale} }

var (
	pdfHeaderColor  = [3]int{31, 78, 121}
	pdfHeaderText   = [3]int{255, 255, 255}
	pdfBodyText     = [3]int{50, 50, 50}
	pdfLineColor    = [3]int{200, 200, 200}
	pdfTableFill    = [3]int{240, 244, 248}
	pdfOKColor      = [3]int{47, 133, 90}
	pdfWarningColor = [3]int{197, 48, 48}
)

type pdfReport struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	money CurrencyFormatter
}

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	if !report.GeneratedAt.IsZero() {
		pdf.SetCreationDate(report.GeneratedAt)
	}
	title := report.Title
	if title == "" {
		title = "Financial Projection Report"
	}
	pdf.SetTitle(title, true)

	r := &pdfReport{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), money: NewCurrencyFormatter(p.Locale)}

	footer := title
	if !report.GeneratedAt.IsZero() {
		footer = fmt.Sprintf("%s | %s", title, report.GeneratedAt.Format("2006-01-02"))
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, r.tr(footer), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	for i := range report.Scenarios {
		r.scenario(i+1, &report.Scenarios[i])
	}

	pdf.AddPage()
	r.header("Key Assumptions", "")
	pdf.SetFont("Arial", "", 10)
	r.textColor(pdfBodyText)
	for _, a := range assumptionsFor(report) {
		pdf.MultiCell(190, 5, r.tr("- "+a), "", "L", false)
	}
	if rec := AnalyzeScenarios(report); retirementCount(report) > 1 && rec.ScenarioName != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 10)
		pdf.MultiCell(190, 5, r.tr("Recommended: "+rec.ScenarioName), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) textColor(c [3]int) { r.pdf.SetTextColor(c[0], c[1], c[2]) }

func (r *pdfReport) header(title, subtitle string) {
	pdf := r.pdf
	pdf.SetFillColor(pdfHeaderColor[0], pdfHeaderColor[1], pdfHeaderColor[2])
	r.textColor(pdfHeaderText)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, r.tr("  "+title), "", 1, "L", true, 0, "")
	if subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(pdfTableFill[0], pdfTableFill[1], pdfTableFill[2])
		r.textColor(pdfBodyText)
		pdf.CellFormat(0, 8, r.tr("  "+subtitle), "", 1, "L", true, 0, "")
	}
	pdf.Ln(6)
}

func (r *pdfReport) section(title string) {
	pdf := r.pdf
	pdf.SetFont("Arial", "B", 12)
	r.textColor([3]int{0, 0, 0})
	pdf.Cell(0, 8, r.tr(title))
	pdf.Ln(7)
	pdf.SetDrawColor(pdfLineColor[0], pdfLineColor[1], pdfLineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(3)
}

// keyValues writes label/value pairs in two columns.
func (r *pdfReport) keyValues(pairs [][2]string) {
	pdf := r.pdf
	pdf.SetFont("Arial", "", 10)
	r.textColor(pdfBodyText)
	for _, kv := range pairs {
		pdf.CellFormat(70, 6, r.tr(kv[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, r.tr(kv[1]), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
}

// table writes a header row and body rows; the first column is left aligned.
func (r *pdfReport) table(widths []float64, header []string, rows [][]string) {
	pdf := r.pdf
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(pdfTableFill[0], pdfTableFill[1], pdfTableFill[2])
	r.textColor(pdfBodyText)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, r.tr(h), "B", 0, align(i), true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 5, r.tr(cell), "", 0, align(i), false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
}

func align(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}

func (r *pdfReport) status(ok bool, text string) {
	if ok {
		r.textColor(pdfOKColor)
	} else {
		r.textColor(pdfWarningColor)
	}
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.MultiCell(190, 6, r.tr(text), "", "L", false)
	r.textColor(pdfBodyText)
	r.pdf.Ln(2)
}

func (r *pdfReport) scenario(n int, sc *domain.ScenarioResult) {
	r.pdf.AddPage()
	r.header(fmt.Sprintf("Scenario %d: %s", n, sc.Name), sc.Description)

	if gp := sc.Growth; gp != nil {
		r.section("Compound Growth")
		pairs := [][2]string{
			{"Final balance", r.money.Format(gp.FinalBalance)},
			{"Total contributions", r.money.Format(gp.TotalContributions)},
			{"Total interest", r.money.Format(gp.TotalInterest)},
			{"Compounding", domain.FrequencyName(gp.Input.CompoundingFrequency)},
		}
		if gp.Target != nil {
			reached := "not reached"
			if gp.TargetYear > 0 {
				reached = fmt.Sprintf("year %d", gp.TargetYear)
			}
			pairs = append(pairs, [2]string{"Target " + r.money.Format(*gp.Target), reached})
		}
		r.keyValues(pairs)
		rows := make([][]string, 0, len(gp.Points))
		for _, p := range gp.Points {
			rows = append(rows, []string{intToString(p.Year), r.money.Format(p.Contributions), r.money.Format(p.Interest), r.money.Format(p.Balance)})
		}
		r.table([]float64{25, 50, 50, 50}, []string{"Year", "Contributions", "Interest", "Balance"}, rows)
	}

	if rp := sc.Retirement; rp != nil {
		r.section("Retirement")
		r.keyValues([][2]string{
			{"Savings at retirement", r.money.Format(rp.BalanceAtRetirement)},
			{"Required annual income", r.money.Format(rp.RequiredAnnualIncome)},
			{"Total contributions", r.money.Format(rp.TotalContributions)},
			{"Investment growth", r.money.Format(rp.InvestmentGrowth)},
			{"Balance at life expectancy", r.money.Format(fin.FloorZero(rp.FinalBalance))},
		})
		if rp.SavingsWillLast {
			r.status(true, "Your savings should last through retirement.")
		} else {
			r.status(false, fmt.Sprintf("Your savings may run out at age %d.", rp.DepletionAge))
		}
		rows := make([][]string, 0, len(rp.Points))
		for _, p := range rp.Points {
			rows = append(rows, []string{intToString(p.Age), string(p.Phase), r.money.Format(p.Contribution), r.money.Format(p.Withdrawal), r.money.Format(p.DisplayBalance)})
		}
		r.table([]float64{20, 35, 40, 40, 45}, []string{"Age", "Phase", "Contribution", "Withdrawal", "Balance"}, rows)
	}

	if bs := sc.Budget; bs != nil {
		r.section("Monthly Budget")
		r.keyValues([][2]string{
			{"Total income", r.money.Format(bs.TotalIncome)},
			{"Total expenses", r.money.Format(bs.TotalExpenses)},
			{"Balance", r.money.Format(bs.Balance)},
		})
		if len(bs.ExpenseByCategory) > 0 {
			rows := make([][]string, 0, len(bs.ExpenseByCategory))
			for _, ct := range bs.ExpenseByCategory {
				rows = append(rows, []string{ct.Category, r.money.Format(ct.Amount), FormatPercentage(bs.ExpenseShare(ct))})
			}
			r.table([]float64{70, 50, 50}, []string{"Category", "Amount", "Share"}, rows)
		}
		r.status(!bs.Balance.IsNegative(), bs.Advice())
	}
}
