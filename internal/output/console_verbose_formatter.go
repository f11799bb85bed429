package output

import (
	"bytes"

	"github.com/rpgo/finplan/internal/domain"
)

// ConsoleVerboseFormatter adds the year-by-year retirement table and the
// individual budget lines to the console summary.
type ConsoleVerboseFormatter struct {
	Locale string
}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) withLocale(locale string) Formatter {
	return ConsoleVerboseFormatter{Locale: locale}
}

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	cw := newConsoleWriter(&buf, c.Locale, true)
	if err := cw.report(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
