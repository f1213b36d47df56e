package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"stock-keeper/core/config"
	"stock-keeper/core/logger"
	"stock-keeper/feature/stock"
	"stock-keeper/feature/stock/models"

	"github.com/spf13/cobra"
)

var (
	// Flags for the simulate command
	simDays   int
	simFormat string
)

// simulateCmd runs the nightly update over the sample ledger.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the nightly stock update over the sample ledger",
	Long: `Simulate nightly inventory updates for the shop's sample stock.

Each night every item's quality moves by its per-name rule, then its sell
countdown decrements (legendary items are exempt). The ledger is printed
after each night.

Examples:
  # One night, table output
  stock-keeper simulate

  # A week of nights
  stock-keeper simulate --days 7

  # Machine-readable ledger
  stock-keeper simulate --days 2 --format json`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simDays, "days", 0, "Number of nights to simulate (overrides SIM_DAYS)")
	simulateCmd.Flags().StringVar(&simFormat, "format", "", "Ledger output format: table or json (overrides SIM_FORMAT)")

	RootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override environment configuration
	if simDays > 0 {
		cfg.Sim.Days = simDays
	}
	if simFormat != "" {
		cfg.Sim.Format = simFormat
	}
	if cfg.Sim.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", cfg.Sim.Days)
	}
	if !cfg.Sim.IsValidFormat() {
		return fmt.Errorf("unknown ledger format %q", cfg.Sim.Format)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc := stock.NewService(logger.WithRunID(l))
	items := stock.SampleStock()

	out := cmd.OutOrStdout()
	for day := 1; day <= cfg.Sim.Days; day++ {
		svc.AdvanceDay(day, items)
		if err := printLedger(out, cfg.Sim.Format, day, items); err != nil {
			return fmt.Errorf("failed to print ledger: %w", err)
		}
	}

	return nil
}

// printLedger renders the ledger after one night in the configured format.
func printLedger(w io.Writer, format string, day int, items []*models.Item) error {
	if format == stock.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Day   int            `json:"day"`
			Items []*models.Item `json:"items"`
		}{Day: day, Items: items})
	}

	fmt.Fprintf(w, "-------- day %d --------\n", day)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSELL IN\tQUALITY")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", it.Name, it.SellIn, it.Quality)
	}
	return tw.Flush()
}
