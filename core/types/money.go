// Package types - Money helpers
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Lira returns a whole-lira amount
func Lira(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// FormatAmount renders a whole-lira amount with dot thousands
// separators, e.g. 15000 -> "15.000".
func FormatAmount(d decimal.Decimal) string {
	s := d.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// FormatTL renders an amount with the lira suffix, e.g. "15.000 TL"
func FormatTL(d decimal.Decimal) string {
	return FormatAmount(d) + " TL"
}
