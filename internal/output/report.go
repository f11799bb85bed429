package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rpgo/finplan/internal/domain"
)

// GenerateReport renders a report in the named format and writes it to dest.
// With an empty dest a timestamped file is created in the working directory.
// It returns the path written.
func GenerateReport(report *domain.Report, format, locale, dest string) (string, error) {
	f, err := NewFormatter(format, locale)
	if err != nil {
		return "", err
	}
	if dest == "" {
		return WriteFormatted(f, report, FormatExtension(format))
	}
	if err := WriteFormattedFile(f, report, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// RenderReport renders a report in the named format to w.
func RenderReport(w io.Writer, report *domain.Report, format, locale string) error {
	f, err := NewFormatter(format, locale)
	if err != nil {
		return err
	}
	return WriteTo(w, f, report)
}

// RenderString renders a report in the named format and returns it as a string.
func RenderString(report *domain.Report, format, locale string) (string, error) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, report, format, locale); err != nil {
		return "", fmt.Errorf("render %s: %w", format, err)
	}
	return buf.String(), nil
}
