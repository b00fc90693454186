// Package cmd implements the hicompare CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kochb/hicompare/internal/config"
	"github.com/kochb/hicompare/internal/model"
	"github.com/kochb/hicompare/internal/pipeline"
	"github.com/kochb/hicompare/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagPlans     string
	flagMonths    int
	flagVisits    int
	flagTax       float64
	flagMaxBills  float64
	flagSamples   int
	flagWidth     int
	flagNoHistory bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "hicompare [medical_bills]",
	Short: "Health insurance plan cost comparison",
	Long: "Compare health insurance plans by total yearly cost: premiums plus\n" +
		"out-of-pocket expenses, minus HSA contributions and their tax savings.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlans, "plans", "f", "", "Plans CSV: file path, URL, or - for stdin")
	rootCmd.PersistentFlags().IntVar(&flagMonths, "months", 12, "Months of premium payments")
	rootCmd.PersistentFlags().IntVar(&flagVisits, "visits", 0, "Office visits (each incurs the plan copay)")
	rootCmd.PersistentFlags().Float64Var(&flagTax, "tax", 0, "Marginal tax bracket for HSA savings (0-1)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")

	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Skip recording this run in history")

	rootCmd.Flags().Float64Var(&flagMaxBills, "max-bills", 0, "Chart x-axis maximum (0 = auto)")
	rootCmd.Flags().IntVar(&flagSamples, "samples", pipeline.DefaultSamples, "Samples per cost curve")
	rootCmd.Flags().IntVar(&flagWidth, "width", 80, "Chart width in columns")
}

// loadPlans resolves the plans source (flag, then config, then env, then
// stdin) and loads it.
func loadPlans(cmd *cobra.Command, cfg config.Config) ([]model.Plan, string, error) {
	src := flagPlans
	if src == "" {
		src = config.PlansFile(cfg)
	}
	if src == "" {
		src = "-"
	}

	if !flagQuiet && src == "-" {
		fmt.Fprintln(os.Stderr, "  Reading plans from stdin...")
	}

	plans, err := pipeline.Load(cmd.Context(), src)
	if err != nil {
		return nil, src, err
	}
	if len(plans) == 0 {
		return nil, src, fmt.Errorf("no plans found in %s", src)
	}
	return plans, src, nil
}

// evalOptions merges config defaults with any flags set on the command line.
func evalOptions(cmd *cobra.Command, cfg config.Config) model.EvalOptions {
	opts := model.DefaultEvalOptions()
	if cfg.General.Months > 0 {
		opts.Months = cfg.General.Months
	}
	opts.Visits = cfg.General.Visits
	opts.TaxBracket = cfg.General.TaxBracket

	flags := cmd.Flags()
	if flags.Changed("months") {
		opts.Months = flagMonths
	}
	if flags.Changed("visits") {
		opts.Visits = flagVisits
	}
	if flags.Changed("tax") {
		opts.TaxBracket = flagTax
	}
	return opts
}

// billsArg parses the medical bills argument, falling back to the
// configured default when the argument is omitted.
func billsArg(args []string, cfg config.Config) (float64, error) {
	if len(args) == 0 {
		if cfg.General.DefaultBills > 0 {
			return float64(cfg.General.DefaultBills), nil
		}
		return 0, fmt.Errorf("medical bills amount required (or set default_bills via `hicompare setup`)")
	}
	bills, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("medical bills must be a number, got %q", args[0])
	}
	if bills < 0 {
		return 0, fmt.Errorf("medical bills must be non-negative, got %s", args[0])
	}
	return bills, nil
}

// chartMax resolves the x-axis ceiling: the flag when set, otherwise
// wide enough that every plan's curve reaches its out-of-pocket cap.
func chartMax(plans []model.Plan, bills float64, opts model.EvalOptions) float64 {
	if flagMaxBills > 0 {
		return flagMaxBills
	}
	return pipeline.ChartMax(plans, bills, opts)
}

// saveHistory records a run, best-effort. History failures never fail
// the command.
func saveHistory(plansFile string, bills float64, opts model.EvalOptions, ranked []pipeline.RankedPlan) {
	if flagNoHistory || len(ranked) == 0 {
		return
	}

	h, err := store.Open(pipeline.HistoryPath())
	if err != nil {
		return
	}
	defer func() { _ = h.Close() }()

	run := store.Run{
		PlansFile:    plansFile,
		MedicalBills: bills,
		Months:       opts.Months,
		Visits:       opts.Visits,
		TaxBracket:   opts.TaxBracket,
		Cheapest:     ranked[0].Plan.Name,
		CheapestCost: ranked[0].Cost,
	}
	for _, r := range ranked {
		run.PlanCosts = append(run.PlanCosts, store.PlanCost{PlanName: r.Plan.Name, Total: r.Cost})
	}
	_, _ = h.SaveRun(run)
}
