package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EuroPrecision is the number of decimals euro amounts are rendered with.
const EuroPrecision = 2

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatEuro renders an amount with Italian separators, as printed on invoices and in the audit log.
// Example: 1234.5 returns "€ 1.234,50"; -77.47 returns "-€ 77,47"
func FormatEuro(amount decimal.Decimal) string {
	fixed := FormatWithPrecision(amount.Abs(), EuroPrecision)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("€ ")
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
