package cmd

import (
	"fmt"

	"github.com/kochb/hicompare/internal/config"
	"github.com/kochb/hicompare/internal/pipeline"
	"github.com/kochb/hicompare/internal/tui"
	"github.com/kochb/hicompare/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [medical_bills]",
	Short: "Launch interactive comparison dashboard",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// The dashboard can adjust bills live, so a starting amount is optional
	bills := 0.0
	if len(args) > 0 || cfg.General.DefaultBills > 0 {
		bills, err = billsArg(args, cfg)
		if err != nil {
			return err
		}
	}

	// Stdin is reserved for the dashboard itself
	src := flagPlans
	if src == "" {
		src = config.PlansFile(cfg)
	}
	if src == "" || src == "-" {
		return fmt.Errorf("tui needs a plans file or URL; pass --plans")
	}

	plans, err := pipeline.Load(cmd.Context(), src)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		return fmt.Errorf("no plans found in %s", src)
	}

	app := tui.NewApp(plans, bills, evalOptions(cmd, cfg))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
