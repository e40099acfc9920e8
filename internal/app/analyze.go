package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/farescout/internal/report"
	"github.com/blackwell-systems/farescout/internal/route"
)

var (
	analyzeReturn string
	analyzeTarget float64
	analyzeExport string
)

// defaultExportFile receives the JSON report when --export names no file,
// so every analyze run leaves a machine-readable copy behind.
const defaultExportFile = "analysis_results.json"

// exportPath resolves the --export flag to the file the report is written
// to.
func exportPath(flag string) string {
	if flag == "" {
		return defaultExportFile
	}
	return flag
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <origin> <destination> <departure_date>",
	Short: "Run the full analysis pipeline for a route",
	Long: `Analyze runs every enabled analyzer for a route and prints the combined
advisory report. Airport codes are 3-letter IATA identifiers; dates accept
YYYY-MM-DD, DD.MM.YYYY, or DD/MM/YYYY.

Examples:
  farescout analyze FRA JFK 2026-10-15
  farescout analyze FRA JFK 2026-10-15 --return 2026-10-29 --target 450
  farescout analyze WAW BKK 15.12.2026 --export report.json
  farescout analyze FRA JFK 2026-10-15 --json`,
	Args: cobra.ExactArgs(3),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeReturn, "return", "", "Return date for a round trip")
	analyzeCmd.Flags().Float64Var(&analyzeTarget, "target", 0, "Target price in EUR for tracking thresholds")
	analyzeCmd.Flags().StringVar(&analyzeExport, "export", "", "Write the JSON report to this file (default "+defaultExportFile+")")
	rootCmd.AddCommand(analyzeCmd)
}

// buildRequest assembles and validates a route request from positional
// arguments and flags.
func buildRequest(args []string, returnDate string, target float64) (route.Request, error) {
	departure, err := route.ParseDate(args[2])
	if err != nil {
		return route.Request{}, fmt.Errorf("parsing departure date: %w", err)
	}

	req := route.Request{
		Origin:      strings.ToUpper(args[0]),
		Destination: strings.ToUpper(args[1]),
		Departure:   departure,
		TargetPrice: target,
	}
	if returnDate != "" {
		ret, err := route.ParseDate(returnDate)
		if err != nil {
			return route.Request{}, fmt.Errorf("parsing return date: %w", err)
		}
		req.Return = &ret
	}

	if err := req.Validate(); err != nil {
		return route.Request{}, err
	}
	return req, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	applyColorMode()
	log := newLogger()

	req, err := buildRequest(args, analyzeReturn, analyzeTarget)
	if err != nil {
		return err
	}

	cfg := loadConfigLenient(log)
	tc, err := newToolchain(cfg, log)
	if err != nil {
		return err
	}

	pipeline := report.NewPipeline(cfg, tc.table, tc.engine, tc.historical, tc.comparator, tc.planner, log)
	r := pipeline.Run(req)

	if flagJSON {
		data, err := report.MarshalJSON(r)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	} else {
		renderReport(r)
	}

	// Export failures should not discard the analysis already printed.
	path := exportPath(analyzeExport)
	if err := report.Export(r, path); err != nil {
		log.Error("export failed", "path", path, "error", err)
	} else if flagJSON {
		log.Info("report exported", "path", path)
	} else {
		fmt.Printf("\nReport exported to %s\n", path)
	}

	return nil
}
