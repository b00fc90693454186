package cli

import "testing"

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{99.99, "$99.99"},
		{100, "$100"},
		{999.4, "$999"},
		{1000, "$1,000"},
		{4800, "$4,800"},
		{12800, "$12,800"},
		{1234567, "$1,234,567"},
		{-350, "-$350"},
	}
	for _, tt := range tests {
		if got := FormatCost(tt.cost); got != tt.want {
			t.Errorf("FormatCost(%v) = %q, want %q", tt.cost, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{32000, "32,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.2); got != "20%" {
		t.Errorf("FormatPercent(0.2) = %q, want %q", got, "20%")
	}
	if got := FormatPercent(0); got != "0%" {
		t.Errorf("FormatPercent(0) = %q, want %q", got, "0%")
	}
}

func TestFormatAxisLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "$0"},
		{250, "$250"},
		{1000, "$1k"},
		{1500, "$1.5k"},
		{8000, "$8k"},
		{32000, "$32k"},
		{1500000, "$1.5M"},
		{-2000, "-$2k"},
	}
	for _, tt := range tests {
		if got := FormatAxisLabel(tt.v); got != tt.want {
			t.Errorf("FormatAxisLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
