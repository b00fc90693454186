package cmd

import (
	"fmt"

	"github.com/kochb/hicompare/internal/cli"
	"github.com/kochb/hicompare/internal/config"
	"github.com/kochb/hicompare/internal/pipeline"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown [medical_bills]",
	Short: "Itemized cost components per plan",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	bills, err := billsArg(args, cfg)
	if err != nil {
		return err
	}

	plans, _, err := loadPlans(cmd, cfg)
	if err != nil {
		return err
	}

	opts := evalOptions(cmd, cfg)

	rows := make([][]string, 0, len(plans)*2)
	for _, p := range plans {
		b := pipeline.Breakdown(p, bills, opts)

		expenses := b.Copays + b.DeductiblePaid + b.CoinsurancePaid
		expensesStr := cli.FormatCost(expenses)
		if b.CappedByOOPMax {
			expensesStr = cli.FormatCost(p.OutOfPocketMax) + " (capped)"
		}

		rows = append(rows, []string{
			b.Plan.Name,
			cli.FormatCost(b.Premium),
			expensesStr,
			"-" + cli.FormatCost(b.EmployerHSA),
			"-" + cli.FormatCost(b.TaxSavings),
			cli.FormatCost(b.Total),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Cost Breakdown at %s  (%d months)", cli.FormatCost(bills), opts.Months),
		Headers: []string{"Plan", "Premiums", "Out-of-Pocket", "Employer HSA", "Tax Savings", "Total"},
		Rows:    rows,
	}))

	// Detail per plan
	for _, p := range plans {
		b := pipeline.Breakdown(p, bills, opts)
		fmt.Printf("  %s\n", b.Plan.Name)
		fmt.Printf("    Premiums:    %s (%s x %d months)\n",
			cli.FormatCost(b.Premium), cli.FormatCost(p.MonthlyPremium), opts.Months)
		if b.Copays > 0 {
			fmt.Printf("    Copays:      %s (%d visits x %s)\n",
				cli.FormatCost(b.Copays), opts.Visits, cli.FormatCost(p.Copay))
		}
		fmt.Printf("    Deductible:  %s of %s\n",
			cli.FormatCost(b.DeductiblePaid), cli.FormatCost(p.Deductible))
		if b.CoinsurancePaid > 0 {
			fmt.Printf("    Coinsurance: %s at %s\n",
				cli.FormatCost(b.CoinsurancePaid), cli.FormatPercent(p.Coinsurance))
		}
		if b.CappedByOOPMax {
			fmt.Printf("    Capped at out-of-pocket max %s\n", cli.FormatCost(p.OutOfPocketMax))
		}
		if b.EmployerHSA > 0 || b.TaxSavings > 0 {
			fmt.Printf("    HSA offsets: -%s employer, -%s tax savings\n",
				cli.FormatCost(b.EmployerHSA), cli.FormatCost(b.TaxSavings))
		}
		fmt.Printf("    Total:       %s\n\n", cli.FormatCost(b.Total))
	}

	return nil
}
