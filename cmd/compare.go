package cmd

import (
	"fmt"

	"github.com/kochb/hicompare/internal/cli"
	"github.com/kochb/hicompare/internal/config"
	"github.com/kochb/hicompare/internal/pipeline"

	"github.com/spf13/cobra"
)

// runCompare is the root command: render the cost curves, name the
// cheapest plan at the given bill level, and note where the ranking flips.
func runCompare(cmd *cobra.Command, args []string) error {
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
	series := pipeline.EvaluateRange(plans, maxBills, flagSamples, opts)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PLAN COMPARISON  %d months", opts.Months)))
	fmt.Println()

	chartSeries := make([]cli.Series, len(series))
	for i, s := range series {
		values := make([]float64, len(s.Points))
		for j, pt := range s.Points {
			values[j] = pt.Cost
		}
		chartSeries[i] = cli.Series{Name: s.Plan.Name, Values: values}
	}
	fmt.Print(cli.LineChart(chartSeries, maxBills, flagWidth, 14))
	fmt.Println()

	ranked := pipeline.RankAt(plans, bills, opts)
	fmt.Printf("  At %s in medical bills:\n", cli.FormatCost(bills))
	for i, r := range ranked {
		marker := "  "
		if i == 0 {
			marker = "* "
		}
		fmt.Printf("    %s%-24s %s\n", marker, r.Plan.Name, cli.FormatCost(r.Cost))
	}
	fmt.Println()

	crossovers := pipeline.Crossovers(series)
	if len(crossovers) > 0 {
		for _, c := range crossovers {
			fmt.Printf("  %s becomes cheaper than %s above %s in bills\n",
				c.To, c.From, cli.FormatCost(c.Bills))
		}
		fmt.Println()
	}

	saveHistory(src, bills, opts, ranked)
	return nil
}
