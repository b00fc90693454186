package cmd

import (
	"fmt"

	"github.com/kochb/hicompare/internal/cli"
	"github.com/kochb/hicompare/internal/config"

	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the loaded plans and their terms",
	RunE:  runPlans,
}

func init() {
	rootCmd.AddCommand(plansCmd)
}

func runPlans(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	plans, src, err := loadPlans(cmd, cfg)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			p.Name,
			cli.FormatCost(p.MonthlyPremium),
			cli.FormatCost(p.Deductible),
			cli.FormatPercent(p.Coinsurance),
			cli.FormatCost(p.OutOfPocketMax),
			cli.FormatCost(p.Copay),
			cli.FormatCost(p.EmployerHSAContribution),
			cli.FormatCost(p.EmployeeHSAContribution),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Plans  (%s)", src),
		Headers: []string{"Plan", "Premium/mo", "Deductible", "Coins", "OOP Max", "Copay", "HSA (er)", "HSA (ee)"},
		Rows:    rows,
	}))

	return nil
}
