package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Series is one named line on a chart. Values are assumed to be sampled
// uniformly over [0, XMax].
type Series struct {
	Name   string
	Values []float64
}

// Markers cycled through for chart series, paired with SeriesPalette.
var seriesMarkers = []rune{'●', '◆', '▲', '■', '✚', '★', '◉'}

// SeriesMarker returns the marker rune for the i-th series.
func SeriesMarker(i int) rune {
	return seriesMarkers[i%len(seriesMarkers)]
}

// LineChart renders a multi-series line chart with a dollar y-axis.
// xMax is the bill total at the right edge of the x-axis.
func LineChart(series []Series, xMax float64, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	if width < 25 {
		width = 25
	}
	if height < 4 {
		height = 4
	}

	// Find max value across all series
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

	// Pre-compute tick labels (row counted from the bottom, 1-based)
	yLabelW := len(FormatAxisLabel(ceiling)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = FormatAxisLabel(tickStep * float64(i))
	}

	cols := width - yLabelW - 1
	if cols < 10 {
		cols = 10
	}

	// Plot each series into the cell grid; later series overwrite on
	// overlap, matching the legend order top to bottom.
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
			v := sampleAt(s.Values, col, cols)
			row := int(v / ceiling * float64(chartH))
			if row >= chartH {
				row = chartH - 1
			}
			if row < 0 {
				row = 0
			}
			grid[row][col] = sIdx
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(ColorTextDim)

	var b strings.Builder

	// Render rows top to bottom
	for row := chartH; row >= 1; row-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		cells := grid[row-1]
		col := 0
		for col < cols {
			sIdx := cells[col]
			if sIdx < 0 {
				// Batch up blank cells
				start := col
				for col < cols && cells[col] < 0 {
					col++
				}
				b.WriteString(strings.Repeat(" ", col-start))
				continue
			}
			style := lipgloss.NewStyle().Foreground(SeriesColor(sIdx))
			b.WriteString(style.Render(string(SeriesMarker(sIdx))))
			col++
		}
		b.WriteString("\n")
	}

	// X-axis line
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "$0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", cols)))
	b.WriteString("\n")

	// X-axis labels: left, middle, right
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(axisStyle.Render(xAxisLabels(xMax, cols)))
	b.WriteString("\n")

	// Legend
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	for i, s := range series {
		if i > 0 {
			b.WriteString("   ")
		}
		style := lipgloss.NewStyle().Foreground(SeriesColor(i))
		b.WriteString(style.Render(string(SeriesMarker(i)) + " " + s.Name))
	}
	b.WriteString("\n")

	return b.String()
}

// sampleAt maps a chart column to a value index and returns that sample.
func sampleAt(values []float64, col, cols int) float64 {
	if len(values) == 1 || cols <= 1 {
		return values[0]
	}
	idx := col * (len(values) - 1) / (cols - 1)
	if idx >= len(values) {
		idx = len(values) - 1
	}
	return values[idx]
}

// xAxisLabels lays "$0 ... mid ... max" across the axis width.
func xAxisLabels(xMax float64, cols int) string {
	left := "$0"
	mid := FormatAxisLabel(xMax / 2)
	right := FormatAxisLabel(xMax)

	buf := make([]byte, cols)
	for i := range buf {
		buf[i] = ' '
	}
	put := func(pos int, s string) {
		if pos < 0 {
			pos = 0
		}
		for i := 0; i < len(s) && pos+i < cols; i++ {
			buf[pos+i] = s[i]
		}
	}
	put(0, left)
	put(cols/2-len(mid)/2, mid)
	put(cols-len(right), right)
	return strings.TrimRight(string(buf), " ")
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
