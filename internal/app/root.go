// Package app contains the Cobra command tree for farescout.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "farescout",
	Short: "Flight price strategy advisor",
	Long: `farescout analyzes airline ticket pricing strategy for a route and
departure date. It combines alternative routing search, geo-pricing across
markets, anti-inflation tactics, historical booking patterns, fare rules,
platform comparison, and a fare tracking plan into one advisory report.

Prices are simulated from static knowledge tables; treat the output as
strategy advice, not live quotes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("farescout", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze    Run the full analysis pipeline for a route")
		fmt.Println("  markets    Simulate geo-pricing across countries")
		fmt.Println("  platforms  Compare booking platform prices and fees")
		fmt.Println("  protocol   Print the anti-inflation search protocol")
		fmt.Println("  track      Log observed prices and check for inflation")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/farescout/config.json)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
