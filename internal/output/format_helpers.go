package output

import (
	"strings"
	"sync"
	"unicode"

	fin "github.com/rpgo/finplan/pkg/decimal"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured or the configured one does not parse.
const DefaultLocale = "en-US"

// CurrencyFormatter renders money for display: rounded to whole units with
// locale digit grouping. Display strings are never parsed back into amounts.
type CurrencyFormatter struct {
	Symbol  string
	printer *message.Printer
}

var printers sync.Map // locale -> *message.Printer

// NewCurrencyFormatter returns a dollar formatter for the given BCP 47 locale.
func NewCurrencyFormatter(locale string) CurrencyFormatter {
	return CurrencyFormatter{Symbol: "$", printer: printerFor(locale)}
}

func printerFor(locale string) *message.Printer {
	if locale == "" {
		locale = DefaultLocale
	}
	if p, ok := printers.Load(locale); ok {
		return p.(*message.Printer)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p, _ := printers.LoadOrStore(locale, message.NewPrinter(tag))
	return p.(*message.Printer)
}

// Format rounds half away from zero and groups digits, e.g. $1,234,568.
func (cf CurrencyFormatter) Format(amount decimal.Decimal) string {
	p := cf.printer
	if p == nil {
		p = printerFor(DefaultLocale)
	}
	whole := fin.Whole(amount)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Neg()
	}
	n := whole.BigInt()
	if n.IsInt64() {
		return sign + cf.Symbol + p.Sprintf("%d", n.Int64())
	}
	return sign + cf.Symbol + groupDigits(n.String(), groupSeparator(p))
}

// groupSeparator reads the printer's thousands separator off a sample number.
func groupSeparator(p *message.Printer) string {
	for _, r := range p.Sprintf("%d", 1000000) {
		if !unicode.IsDigit(r) {
			return string(r)
		}
	}
	return ""
}

// groupDigits inserts sep every three digits from the right.
func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatCurrency formats an amount as whole US dollars with grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return NewCurrencyFormatter(DefaultLocale).Format(amount)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats an input rate as entered, e.g. 2.5%.
func FormatRate(percent decimal.Decimal) string { return percent.String() + "%" }

// FormatAge renders a depletion age, with a dash when savings never run out.
func FormatAge(age int) string {
	if age == 0 {
		return "-"
	}
	return intToString(age)
}
