// Package tui implements the interactive comparison dashboard.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kochb/hicompare/internal/model"
	"github.com/kochb/hicompare/internal/pipeline"
	"github.com/kochb/hicompare/internal/tui/components"
	"github.com/kochb/hicompare/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabChart = iota
	tabTable
	tabBreakdown
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 160

	billsStep = 500
	taxStep   = 0.05
)

// App is the root bubbletea model for the dashboard.
type App struct {
	plans []model.Plan
	bills float64
	opts  model.EvalOptions

	width  int
	height int

	activeTab int
	selected  int // plan index on the breakdown tab
	showHelp  bool

	// Exact bill entry
	editing bool
	billsIn textinput.Model

	// Derived state, refreshed by recompute
	maxBills   float64
	series     []model.PlanSeries
	ranked     []pipeline.RankedPlan
	crossovers []model.Crossover
}

// NewApp builds the dashboard model for the given plans and starting
// parameters.
func NewApp(plans []model.Plan, bills float64, opts model.EvalOptions) App {
	ti := textinput.New()
	ti.Placeholder = "5000"
	ti.CharLimit = 9
	ti.Width = 12

	a := App{
		plans:   plans,
		bills:   bills,
		opts:    opts,
		billsIn: ti,
	}
	a.recompute()
	return a
}

// recompute refreshes the cost curves and ranking after any parameter
// change.
func (a *App) recompute() {
	a.maxBills = pipeline.ChartMax(a.plans, a.bills, a.opts)
	a.series = pipeline.EvaluateRange(a.plans, a.maxBills, pipeline.DefaultSamples, a.opts)
	a.ranked = pipeline.RankAt(a.plans, a.bills, a.opts)
	a.crossovers = pipeline.Crossovers(a.series)
	if a.selected >= len(a.plans) {
		a.selected = len(a.plans) - 1
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.editing {
			return a.updateBillsInput(msg)
		}
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) updateBillsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editing = false
		a.billsIn.Blur()
		return a, nil
	case "enter":
		if v, err := strconv.ParseFloat(strings.TrimSpace(a.billsIn.Value()), 64); err == nil && v >= 0 {
			a.bills = v
			a.recompute()
		}
		a.editing = false
		a.billsIn.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.billsIn, cmd = a.billsIn.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.showHelp {
		switch key {
		case "q", "ctrl+c":
			return a, tea.Quit
		default:
			a.showHelp = false
			return a, nil
		}
	}

	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = true

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)

	case "+", "=":
		a.bills += billsStep
		a.recompute()
	case "-", "_":
		a.bills -= billsStep
		if a.bills < 0 {
			a.bills = 0
		}
		a.recompute()

	case "$", "e":
		a.editing = true
		a.billsIn.SetValue(strconv.FormatFloat(a.bills, 'f', -1, 64))
		a.billsIn.Focus()
		return a, textinput.Blink

	case "m":
		a.opts.Months++
		a.recompute()
	case "M":
		if a.opts.Months > 1 {
			a.opts.Months--
			a.recompute()
		}

	case "v":
		a.opts.Visits++
		a.recompute()
	case "V":
		if a.opts.Visits > 0 {
			a.opts.Visits--
			a.recompute()
		}

	case "t":
		if a.opts.TaxBracket+taxStep < 1 {
			a.opts.TaxBracket += taxStep
			a.recompute()
		}
	case "T":
		a.opts.TaxBracket -= taxStep
		if a.opts.TaxBracket < 0 {
			a.opts.TaxBracket = 0
		}
		a.recompute()

	case "j", "down":
		if a.selected < len(a.plans)-1 {
			a.selected++
		}
	case "k", "up":
		if a.selected > 0 {
			a.selected--
		}

	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}

	t := theme.Active
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(" " + titleStyle.Render("hicompare"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d plans", len(a.plans))))
	b.WriteString("\n\n")

	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabChart:
		b.WriteString(a.viewChart(cw))
	case tabTable:
		b.WriteString(a.viewTable(cw))
	case tabBreakdown:
		b.WriteString(a.viewBreakdown(cw))
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(cw, a.paramsSummary()))

	return b.String()
}

func (a App) paramsSummary() string {
	if a.editing {
		return "bills: " + a.billsIn.View()
	}
	return fmt.Sprintf("bills $%.0f  months %d  visits %d  tax %.0f%%",
		a.bills, a.opts.Months, a.opts.Visits, a.opts.TaxBracket*100)
}

func (a App) viewChart(cw int) string {
	var b strings.Builder

	metrics := []components.Metric{
		{Label: "Cheapest plan", Value: a.ranked[0].Plan.Name, Note: fmt.Sprintf("at $%.0f in bills", a.bills)},
		{Label: "Your cost", Value: fmt.Sprintf("$%.0f", a.ranked[0].Cost), Note: fmt.Sprintf("%d months", a.opts.Months)},
		{Label: "Crossovers", Value: strconv.Itoa(len(a.crossovers)), Note: "ranking changes"},
	}
	b.WriteString(components.MetricCardRow(metrics, cw-2))
	b.WriteString("\n\n")

	chartSeries := make([]components.ChartSeries, len(a.series))
	for i, s := range a.series {
		values := make([]float64, len(s.Points))
		for j, pt := range s.Points {
			values[j] = pt.Cost
		}
		chartSeries[i] = components.ChartSeries{Name: s.Plan.Name, Values: values}
	}

	chartH := a.height - 14
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 20 {
		chartH = 20
	}
	chart := components.LineChart(chartSeries, a.maxBills, components.CardInnerWidth(cw-2), chartH)
	b.WriteString(components.ContentCard("Total Cost vs Medical Bills", chart, cw-2))
	b.WriteString("\n")

	if len(a.crossovers) > 0 {
		t := theme.Active
		noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		for _, c := range a.crossovers {
			b.WriteString(noteStyle.Render(
				fmt.Sprintf("  %s becomes cheaper than %s above $%.0f", c.To, c.From, c.Bills)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (a App) viewTable(cw int) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	bestStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	levels := []float64{0, a.maxBills * 0.25, a.maxBills * 0.5, a.maxBills * 0.75, a.maxBills}

	var body strings.Builder
	body.WriteString(headStyle.Render(fmt.Sprintf("%-20s", "Plan")))
	for _, lvl := range levels {
		body.WriteString(headStyle.Render(fmt.Sprintf("%12s", fmt.Sprintf("$%.0f", lvl))))
	}
	body.WriteString("\n")

	for _, p := range a.plans {
		style := rowStyle
		if p.Name == a.ranked[0].Plan.Name {
			style = bestStyle
		}
		body.WriteString(style.Render(fmt.Sprintf("%-20s", p.Name)))
		for _, lvl := range levels {
			cost := p.ActualCost(lvl, a.opts.Months, a.opts.Visits, a.opts.TaxBracket)
			body.WriteString(style.Render(fmt.Sprintf("%12s", fmt.Sprintf("$%.0f", cost))))
		}
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
		Render("Cheapest plan at the current bill level shown in green"))

	return components.ContentCard("Cost by Bill Level", body.String(), cw-2)
}

func (a App) viewBreakdown(cw int) string {
	t := theme.Active

	var b strings.Builder

	// Plan list with selection
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	for i, p := range a.plans {
		if i == a.selected {
			b.WriteString(selStyle.Render(fmt.Sprintf(" > %s", p.Name)))
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("   %s", p.Name)))
		}
		b.WriteString("\n")
	}
	b.WriteString(itemStyle.Render("   j/k to select"))
	b.WriteString("\n\n")

	if a.selected < 0 || a.selected >= len(a.plans) {
		return b.String()
	}

	bd := pipeline.Breakdown(a.plans[a.selected], a.bills, a.opts)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	offsetStyle := lipgloss.NewStyle().Foreground(t.Green)
	totalStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	line := func(label string, style lipgloss.Style, val string) string {
		return labelStyle.Render(fmt.Sprintf("%-16s", label)) + style.Render(fmt.Sprintf("%12s", val)) + "\n"
	}

	var body strings.Builder
	body.WriteString(line("Premiums", valStyle, fmt.Sprintf("$%.0f", bd.Premium)))
	if bd.Copays > 0 {
		body.WriteString(line("Copays", valStyle, fmt.Sprintf("$%.0f", bd.Copays)))
	}
	body.WriteString(line("Deductible", valStyle, fmt.Sprintf("$%.0f", bd.DeductiblePaid)))
	if bd.CoinsurancePaid > 0 {
		body.WriteString(line("Coinsurance", valStyle, fmt.Sprintf("$%.0f", bd.CoinsurancePaid)))
	}
	if bd.CappedByOOPMax {
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", "")) +
			lipgloss.NewStyle().Foreground(t.Orange).Render(
				fmt.Sprintf("capped at $%.0f", bd.Plan.OutOfPocketMax)) + "\n")
	}
	if bd.EmployerHSA > 0 {
		body.WriteString(line("Employer HSA", offsetStyle, fmt.Sprintf("-$%.0f", bd.EmployerHSA)))
	}
	if bd.TaxSavings > 0 {
		body.WriteString(line("Tax savings", offsetStyle, fmt.Sprintf("-$%.0f", bd.TaxSavings)))
	}
	body.WriteString(line("Total", totalStyle, fmt.Sprintf("$%.0f", bd.Total)))

	title := fmt.Sprintf("%s at $%.0f in bills", bd.Plan.Name, a.bills)
	b.WriteString(components.ContentCard(title, body.String(), cw/2))

	return b.String()
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	row := func(key, desc string) string {
		return "  " + keyStyle.Render(fmt.Sprintf("%-12s", key)) + descStyle.Render(desc) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(" " + titleStyle.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(row("c / a / b", "switch tab (chart, table, breakdown)"))
	b.WriteString(row("tab", "next tab"))
	b.WriteString(row("+ / -", fmt.Sprintf("medical bills up/down by $%d", billsStep)))
	b.WriteString(row("$ or e", "type an exact bill amount"))
	b.WriteString(row("m / M", "more/fewer months"))
	b.WriteString(row("v / V", "more/fewer office visits"))
	b.WriteString(row("t / T", "tax bracket up/down"))
	b.WriteString(row("j / k", "select plan on the breakdown tab"))
	b.WriteString(row("q", "quit"))
	b.WriteString("\n")
	b.WriteString(descStyle.Render("  Press any key to close"))

	return b.String()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf("Terminal too narrow (%d cols, need %d)", a.width, minTerminalWidth)
	return "\n " + lipgloss.NewStyle().Foreground(theme.Active.Orange).Render(msg) + "\n"
}
