package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kochb/hicompare/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	plansFile := cfg.General.PlansFile
	defaultBills := ""
	if cfg.General.DefaultBills > 0 {
		defaultBills = strconv.Itoa(cfg.General.DefaultBills)
	}
	months := cfg.General.Months
	if months == 0 {
		months = 12
	}
	tax := fmt.Sprintf("%.2f", cfg.General.TaxBracket)
	theme := cfg.Appearance.Theme
	if theme == "" {
		theme = "flexoki-dark"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plans CSV file").
				Description("Path or URL of your plans spreadsheet. Leave blank to pipe CSV on stdin.").
				Value(&plansFile),

			huh.NewInput().
				Title("Default medical bills").
				Description("Bill level assumed when you run hicompare without an amount.").
				Placeholder("e.g. 5000").
				Validate(validateOptionalInt).
				Value(&defaultBills),

			huh.NewSelect[int]().
				Title("Coverage period").
				Options(
					huh.NewOption("12 months", 12),
					huh.NewOption("6 months", 6),
					huh.NewOption("3 months", 3),
				).
				Value(&months),

			huh.NewInput().
				Title("Marginal tax bracket").
				Description("As a fraction, e.g. 0.24. Used for HSA tax savings.").
				Validate(validateFraction).
				Value(&tax),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.PlansFile = strings.TrimSpace(plansFile)
	if s := strings.TrimSpace(defaultBills); s != "" {
		cfg.General.DefaultBills, _ = strconv.Atoi(s)
	} else {
		cfg.General.DefaultBills = 0
	}
	cfg.General.Months = months
	cfg.General.TaxBracket, _ = strconv.ParseFloat(strings.TrimSpace(tax), 64)
	cfg.Appearance.Theme = theme

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `hicompare setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func validateOptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole dollar amount")
	}
	return nil
}

func validateFraction(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f >= 1 {
		return fmt.Errorf("enter a fraction between 0 and 1")
	}
	return nil
}
