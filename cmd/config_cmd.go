package cmd

import (
	"fmt"

	"github.com/kochb/hicompare/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if pf := config.PlansFile(cfg); pf != "" {
		fmt.Printf("    Plans file:    %s\n", pf)
	} else {
		fmt.Println("    Plans file:    not set (reads stdin)")
	}
	if cfg.General.DefaultBills > 0 {
		fmt.Printf("    Default bills: $%d\n", cfg.General.DefaultBills)
	} else {
		fmt.Println("    Default bills: not set")
	}
	fmt.Printf("    Months:        %d\n", cfg.General.Months)
	fmt.Printf("    Visits:        %d\n", cfg.General.Visits)
	fmt.Printf("    Tax bracket:   %.2f\n", cfg.General.TaxBracket)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `hicompare setup` to reconfigure.")
	return nil
}
