package report

import (
	"testing"
	"time"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain", "128.45", 128.45},
		{"dollar sign", "$38.00", 38},
		{"thousands separator", "$1,234.50", 1234.5},
		{"euro", "€56.00", 56},
		{"pound", "£29", 29},
		{"accounting negative", "(500)", -500},
		{"accounting negative with symbol", "($25.00)", -25},
		{"leading minus", "-12.5", -12.5},
		{"whitespace", "  $10.00  ", 10},
		{"empty", "", 0},
		{"garbage", "n/a", 0},
		{"infinity rejected", "Inf", 0},
		{"nan rejected", "NaN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMoney(tt.input); got != tt.want {
				t.Errorf("ParseMoney(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12", 12},
		{"2.5", 2.5},
		{"-3", -3},
		{" 6 ", 6},
		{"1e2", 100},
		{"", 0},
		{"twelve", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.input); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFlag(t *testing.T) {
	trueValues := []string{"yes", "Yes", "YES", "true", "TRUE", "1", "y", "Y", " yes "}
	for _, v := range trueValues {
		if !ParseFlag(v) {
			t.Errorf("ParseFlag(%q) = false, want true", v)
		}
	}

	falseValues := []string{"no", "No", "false", "0", "n", "", "  ", "maybe"}
	for _, v := range falseValues {
		if ParseFlag(v) {
			t.Errorf("ParseFlag(%q) = true, want false", v)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"ISO date", "2025-01-14", time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), true},
		{"US slash date", "1/14/2025", time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), true},
		{"datetime", "2025-01-14 09:30:00", time.Date(2025, 1, 14, 9, 30, 0, 0, time.UTC), true},
		{"US datetime", "1/14/2025 3:04 PM", time.Date(2025, 1, 14, 15, 4, 0, 0, time.UTC), true},
		{"compact", "20250114", time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "soon", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
