package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vreeburg/warehouse-dashboard/internal/api"
	"github.com/vreeburg/warehouse-dashboard/internal/config"
	"github.com/vreeburg/warehouse-dashboard/internal/dashboard"
)

var (
	// Global flags
	envFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "warehouse",
	Short: "Vreeburg warehouse dashboard",
	Long: `Command-line dashboard for the Vreeburg warehouse store.

Browses products, orders, workers, customers and users served by the
remote store API, and handles CSV import/export of products and orders.

Configuration comes from the environment (or a .env file):
  API_BASE_URL          base URL of the remote store (required)
  API_TOKEN             bearer token from a previous login
  HTTP_TIMEOUT_SECONDS  per-request timeout, default 30
  LOW_STOCK_THRESHOLD   default low-stock cutoff, default 60`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to .env file with store credentials")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// newController wires config, client, store and controller for one
// command invocation.
func newController() (*dashboard.Controller, *api.Client, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	client := api.New(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout)
	ctrl := dashboard.NewController(client, dashboard.NewStore(), cfg.LowStockThreshold)
	return ctrl, client, nil
}

// newTable returns a tabwriter on stdout for aligned listing output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// writeFileOrStdout writes content to path, or to stdout when path is
// empty.
func writeFileOrStdout(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
