package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"1234.567", "$1,235"},
		{"17239.94", "$17,240"},
		{"1421309.83", "$1,421,310"},
		{"0.5", "$1"},
		{"-2500.5", "-$2,501"},
		{"12345678901234567890123", "$12,345,678,901,234,567,890,123"},
		{"-9223372036854775808.4", "-$9,223,372,036,854,775,808"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestCurrencyFormatterLocale(t *testing.T) {
	de := NewCurrencyFormatter("de-DE")
	assert.Equal(t, "$1.234.568", de.Format(decimal.RequireFromString("1234567.89")))

	assert.Equal(t, "$12.345.678.901.234.567.890.123",
		de.Format(decimal.RequireFromString("12345678901234567890123")))

	bad := NewCurrencyFormatter("not a locale")
	assert.Equal(t, "$1,000", bad.Format(decimal.NewFromInt(1000)))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "123", groupDigits("123", ","))
	assert.Equal(t, "1,234", groupDigits("1234", ","))
	assert.Equal(t, "123,456,789", groupDigits("123456789", ","))
	assert.Equal(t, "1234", groupDigits("1234", ""))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.35%", FormatPercentage(decimal.NewFromFloat(12.3456)))
	assert.Equal(t, "2.5%", FormatRate(decimal.RequireFromString("2.5")))
	assert.Equal(t, "7%", FormatRate(decimal.NewFromInt(7)))
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "-", FormatAge(0))
	assert.Equal(t, "82", FormatAge(82))
}
