package cmd

import (
	"fmt"

	"github.com/kochb/hicompare/internal/cli"
	"github.com/kochb/hicompare/internal/pipeline"
	"github.com/kochb/hicompare/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent comparison runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := store.Open(pipeline.HistoryPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = h.Close() }()

	if flagHistoryClear {
		if err := h.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Println("  History cleared.")
		return nil
	}

	runs, err := h.RecentRuns(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("\n  No runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			cli.FormatCost(r.MedicalBills),
			fmt.Sprintf("%d", r.Months),
			fmt.Sprintf("%d", r.Visits),
			r.Cheapest,
			cli.FormatCost(r.CheapestCost),
		})
	}

	total, err := h.RunCount()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recent Runs",
		Headers: []string{"When", "Bills", "Months", "Visits", "Cheapest", "Cost"},
		Rows:    rows,
	}))
	fmt.Printf("  Showing %d of %d runs (%s)\n\n", len(runs), total, pipeline.HistoryPath())

	return nil
}
