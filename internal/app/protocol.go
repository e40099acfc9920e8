package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/farescout/internal/inflation"
	"github.com/blackwell-systems/farescout/internal/output"
)

var protocolSearchNumber int

var protocolCmd = &cobra.Command{
	Use:   "protocol <origin> <destination> <departure_date>",
	Short: "Print the anti-inflation search protocol",
	Long: `Protocol prints the exact procedure for one flight search without
triggering price inflation. Precautions escalate with the search number:
repeated searches for the same route raise the inflation risk.

Examples:
  farescout protocol FRA JFK 2026-10-15
  farescout protocol FRA JFK 2026-10-15 --search-number 3`,
	Args: cobra.ExactArgs(3),
	RunE: runProtocol,
}

func init() {
	protocolCmd.Flags().IntVar(&protocolSearchNumber, "search-number", 1, "Which search attempt this is for the route")
	rootCmd.AddCommand(protocolCmd)
}

func runProtocol(cmd *cobra.Command, args []string) error {
	applyColorMode()

	req, err := buildRequest(args, "", 0)
	if err != nil {
		return err
	}

	p := inflation.SearchProtocol(req.Origin, req.Destination, req.Departure, protocolSearchNumber)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	fmt.Println(output.Section("Search Protocol: " + p.SearchInfo.Route))
	fmt.Println()
	printField("Date", p.SearchInfo.Date)
	printField("Search number", fmt.Sprintf("%d", p.SearchInfo.SearchNumber))
	risk := output.StyleSuccess.Render(p.RiskLevel)
	if p.RiskLevel != "Low" {
		risk = output.StyleWarning.Render(p.RiskLevel)
	}
	printField("Inflation risk", risk)

	fmt.Println(output.Section("Before Searching"))
	fmt.Println()
	for _, step := range p.PreSearchChecklist {
		fmt.Println(" " + step)
	}

	fmt.Println(output.Section("During the Search"))
	fmt.Println()
	for _, step := range p.SearchExecution {
		fmt.Println(" " + step)
	}

	fmt.Println(output.Section("Afterwards"))
	fmt.Println()
	for _, step := range p.PostSearchActions {
		fmt.Println(" " + step)
	}

	if len(p.Warnings) > 0 {
		fmt.Println()
		for _, w := range p.Warnings {
			fmt.Println(" " + output.StyleWarning.Render(w))
		}
	}
	fmt.Println()
	return nil
}
