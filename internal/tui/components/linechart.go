package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/kochb/hicompare/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ChartSeries is one named line on a chart, sampled uniformly over [0, xMax].
type ChartSeries struct {
	Name   string
	Values []float64
}

var chartMarkers = []rune{'●', '◆', '▲', '■', '✚', '★', '◉'}

// LineChart renders a multi-series line chart in the active theme's
// colors. xMax is the bill total at the right edge of the x-axis.
func LineChart(series []ChartSeries, xMax float64, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	if width < 25 {
		width = 25
	}
	if height < 4 {
		height = 4
	}

	t := theme.Active

	maxVal := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for {
		n := int(math.Ceil(maxVal / tickStep))
		if n <= maxIntervals {
			break
		}
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}

	rowsPerTick := height / numIntervals
	if rowsPerTick < 2 {
		rowsPerTick = 2
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	cols := width - yLabelW - 1
	if cols < 10 {
		cols = 10
	}

	// Later series overwrite on overlap, matching legend order
	grid := make([][]int, chartH)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			grid[r][c] = -1
		}
	}
	for sIdx, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		for col := 0; col < cols; col++ {
			idx := 0
			if len(s.Values) > 1 && cols > 1 {
				idx = col * (len(s.Values) - 1) / (cols - 1)
			}
			row := int(s.Values[idx] / ceiling * float64(chartH))
			if row >= chartH {
				row = chartH - 1
			}
			if row < 0 {
				row = 0
			}
			grid[row][col] = sIdx
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		cells := grid[row-1]
		col := 0
		for col < cols {
			sIdx := cells[col]
			if sIdx < 0 {
				start := col
				for col < cols && cells[col] < 0 {
					col++
				}
				b.WriteString(strings.Repeat(" ", col-start))
				continue
			}
			style := lipgloss.NewStyle().Foreground(t.Series(sIdx))
			b.WriteString(style.Render(string(chartMarkers[sIdx%len(chartMarkers)])))
			col++
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "$0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", cols)))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(axisStyle.Render(formatChartLabel(xMax) + " total bills at right edge"))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", yLabelW+1))
	for i, s := range series {
		if i > 0 {
			b.WriteString("   ")
		}
		style := lipgloss.NewStyle().Foreground(t.Series(i))
		b.WriteString(style.Render(string(chartMarkers[i%len(chartMarkers)]) + " " + s.Name))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel formats a dollar amount compactly for chart axes.
func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("$%.0fk", v/1e3)
		}
		return fmt.Sprintf("$%.1fk", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
