package report

// format.go exposes the display formatters that belong to the boundary
// contract alongside the summary itself. Consumers render numbers through
// these so tiles, tables, and CLI output agree on one fixed locale.

import (
	"fmt"
	"strings"
	"time"
)

// Money0 formats an amount as whole-dollar currency: 1250.75 -> "$1,251".
// Halfway values round to even, as %.0f does: 1234.5 -> "$1,234".
func Money0(v float64) string {
	return "$" + groupThousands(fmt.Sprintf("%.0f", v))
}

// Money2 formats an amount as currency with cents: 1234.5 -> "$1,234.50".
func Money2(v float64) string {
	return "$" + groupThousands(fmt.Sprintf("%.2f", v))
}

// Percent formats a ratio as a percentage with one decimal:
// 0.1234 -> "12.3%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// MonthLabel converts a "YYYY-MM" month key to a display label:
// "2025-03" -> "Mar 2025". Unparseable keys are returned as-is.
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}

// groupThousands inserts comma separators into the integer part of a
// formatted number, leaving any sign and decimals intact.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	n := len(intPart)
	if n <= 3 {
		return sign + intPart + frac
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}
