package cli

import (
	"strings"
	"testing"
)

func TestLineChart(t *testing.T) {
	series := []Series{
		{Name: "Bronze", Values: []float64{3000, 5000, 8000, 9000}},
		{Name: "Gold", Values: []float64{6000, 6500, 7000, 7500}},
	}
	out := LineChart(series, 32000, 80, 12)

	if !strings.Contains(out, "Bronze") || !strings.Contains(out, "Gold") {
		t.Errorf("chart missing legend entries:\n%s", out)
	}
	if !strings.Contains(out, "$0") {
		t.Errorf("chart missing origin label:\n%s", out)
	}
	if !strings.Contains(out, "$32k") {
		t.Errorf("chart missing x-axis max label:\n%s", out)
	}
	if !strings.Contains(out, string(SeriesMarker(0))) || !strings.Contains(out, string(SeriesMarker(1))) {
		t.Errorf("chart missing series markers:\n%s", out)
	}
}

func TestLineChartEmpty(t *testing.T) {
	if out := LineChart(nil, 1000, 80, 12); out != "" {
		t.Errorf("expected empty output for no series, got %q", out)
	}
}

func TestLineChartSingleValue(t *testing.T) {
	series := []Series{{Name: "Flat", Values: []float64{4800}}}
	out := LineChart(series, 0, 40, 6)
	if !strings.Contains(out, "Flat") {
		t.Errorf("chart missing legend for single-value series:\n%s", out)
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		maxVal float64
		want   float64
	}{
		{10, 2},
		{100, 20},
		{500, 100},
		{8000, 2000},
		{12800, 2000},
		{0, 1},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.maxVal); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.maxVal, got, tt.want)
		}
	}
}

func TestSampleAt(t *testing.T) {
	values := []float64{0, 10, 20, 30, 40}
	if got := sampleAt(values, 0, 10); got != 0 {
		t.Errorf("first column = %v, want 0", got)
	}
	if got := sampleAt(values, 9, 10); got != 40 {
		t.Errorf("last column = %v, want 40", got)
	}
}

func TestXAxisLabels(t *testing.T) {
	s := xAxisLabels(32000, 40)
	if !strings.HasPrefix(s, "$0") {
		t.Errorf("x-axis labels should start with $0, got %q", s)
	}
	if !strings.HasSuffix(s, "$32k") {
		t.Errorf("x-axis labels should end with $32k, got %q", s)
	}
	if !strings.Contains(s, "$16k") {
		t.Errorf("x-axis labels should contain midpoint $16k, got %q", s)
	}
}
