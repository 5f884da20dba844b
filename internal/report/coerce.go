package report

// coerce.go converts raw export cells into typed values.
//
// These functions handle the messy reality of exported CSV data:
//   - Currency symbols and thousand separators in amounts
//   - Accounting notation for negatives ("(500)")
//   - Various boolean representations (yes/true/1/y)
//   - Multiple date and datetime formats
//
// All four are total functions: no input makes them fail. Malformed values
// coerce to the neutral default (0, false, or a missing date) instead of
// propagating an error.

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// numericRegex validates a cleaned-up string as a plain numeric value.
// Matches integers, decimals, and scientific notation; rejects the
// "Inf"/"NaN" spellings strconv would otherwise accept.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Date layouts tried in order. Datetime layouts come first because exports
// frequently carry a time-of-day on completed dates.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
	"2006-01-02", "2006/01/02", "2006.01.02",
	"Jan 2, 2006", "2 Jan 2006",
	"20060102",
}

// ParseMoney converts a monetary cell to a float64.
// Strips currency symbols and thousands separators, and treats a value
// wrapped in parentheses as negative (accounting notation). Empty or
// non-numeric input coerces to 0.
func ParseMoney(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseNumber converts a plain decimal cell to a float64, 0 if malformed.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || !numericRegex.MatchString(s) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseFlag converts a boolean-ish cell to a bool.
// "yes", "true", "1", and "y" (any case) are true; everything else,
// including empty, is false.
func ParseFlag(s string) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "yes", "true", "1", "y":
		return true
	default:
		return false
	}
}

// ParseDate attempts to parse a date or datetime cell.
// Returns ok=false for empty or unparseable input; never an error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
