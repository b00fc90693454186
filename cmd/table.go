package cmd

import (
	"fmt"

	"github.com/kochb/hicompare/internal/cli"
	"github.com/kochb/hicompare/internal/config"
	"github.com/kochb/hicompare/internal/pipeline"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table [medical_bills]",
	Short: "Plan costs at several bill levels",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().Float64Var(&flagMaxBills, "max-bills", 0, "Highest bill level in the table (0 = auto)")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	bills, err := billsArg(args, cfg)
	if err != nil {
		return err
	}

	plans, src, err := loadPlans(cmd, cfg)
	if err != nil {
		return err
	}

	opts := evalOptions(cmd, cfg)
	maxBills := chartMax(plans, bills, opts)

	// Sample at quarters of the range
	levels := []float64{0, maxBills * 0.25, maxBills * 0.5, maxBills * 0.75, maxBills}

	headers := []string{"Plan"}
	for _, lvl := range levels {
		headers = append(headers, cli.FormatAxisLabel(lvl))
	}

	// Cheapest plan per level gets a marker
	cheapestAt := make([]string, len(levels))
	for i, lvl := range levels {
		best, _ := pipeline.Cheapest(plans, lvl, opts)
		cheapestAt[i] = best.Name
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		row := []string{p.Name}
		for i, lvl := range levels {
			cell := cli.FormatCost(p.ActualCost(lvl, opts.Months, opts.Visits, opts.TaxBracket))
			if cheapestAt[i] == p.Name {
				cell += " *"
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Total Cost by Bill Level  (%d months)", opts.Months),
		Headers: headers,
		Rows:    rows,
	}))
	fmt.Println("  * cheapest at that bill level")
	fmt.Println()

	ranked := pipeline.RankAt(plans, bills, opts)
	maxCost := ranked[len(ranked)-1].Cost
	fmt.Printf("  At %s in medical bills:\n", cli.FormatCost(bills))
	for _, r := range ranked {
		fmt.Printf("    %-24s %10s  %s\n",
			r.Plan.Name, cli.FormatCost(r.Cost), cli.RenderHorizontalBar(r.Cost, maxCost, 30))
	}
	fmt.Println()

	saveHistory(src, bills, opts, ranked)
	return nil
}
