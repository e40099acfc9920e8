package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/farescout/internal/output"
	"github.com/blackwell-systems/farescout/internal/platform"
)

var (
	platformsPrice float64
	platformsFees  string
	platformsOnly  []string
)

var platformsCmd = &cobra.Command{
	Use:   "platforms <origin> <destination>",
	Short: "Compare booking platform prices and fees",
	Long: `Platforms simulates the same fare across airline sites, online travel
agencies, regional agencies, and meta-search engines, then ranks them by
total price and value score.

Examples:
  farescout platforms FRA JFK
  farescout platforms FRA JFK --price 620
  farescout platforms FRA JFK --only expedia,kiwi_com,lufthansa_direct
  farescout platforms FRA JFK --fees ryanair_direct`,
	Args: cobra.ExactArgs(2),
	RunE: runPlatforms,
}

func init() {
	platformsCmd.Flags().Float64Var(&platformsPrice, "price", 450, "Base fare in EUR to simulate from")
	platformsCmd.Flags().StringVar(&platformsFees, "fees", "", "Show the hidden-cost breakdown for one platform key")
	platformsCmd.Flags().StringSliceVar(&platformsOnly, "only", nil, "Restrict the comparison to these platform keys")
	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	if err := positivePrice(platformsPrice); err != nil {
		return err
	}

	applyColorMode()
	log := newLogger()

	if platformsFees != "" {
		return renderHiddenCosts(platformsFees)
	}

	cfg := loadConfigLenient(log)
	tc, err := newToolchain(cfg, log)
	if err != nil {
		return err
	}

	origin := strings.ToUpper(args[0])
	destination := strings.ToUpper(args[1])
	cmp := tc.comparator.Compare(platformsPrice, origin, destination, platformsOnly)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(cmp)
	}

	fmt.Println(output.Section(fmt.Sprintf("Platform Comparison %s → %s", origin, destination)))
	fmt.Println()
	tbl := output.NewTable("Platform", "Type", "Total", "Fees", "Markup", "Reliability", "Value")
	for _, q := range cmp.AllPlatforms {
		tbl.AddRow(
			q.Platform,
			q.Type,
			output.Price(q.TotalPrice, cmp.MostExpensive.TotalPrice),
			fmt.Sprintf("€%.2f", q.Fees),
			fmt.Sprintf("%.1f%%", q.MarkupPercentage),
			fmt.Sprintf("%d/10", q.ReliabilityScore),
			fmt.Sprintf("%.1f/10", q.ValueScore),
		)
	}
	tbl.Print()
	fmt.Println()
	printField("Cheapest", fmt.Sprintf("%s at €%.2f", cmp.CheapestOverall.Platform, cmp.CheapestOverall.TotalPrice))
	printField("Price spread", fmt.Sprintf("€%.2f", cmp.PriceDifference))
	fmt.Println()
	for _, rec := range cmp.Recommendations {
		fmt.Println(" " + rec)
	}
	fmt.Println()
	return nil
}

// renderHiddenCosts prints the fee breakdown for a single platform.
func renderHiddenCosts(key string) error {
	breakdown, err := platform.HiddenCosts(key)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(breakdown)
	}

	fmt.Println(output.Section("Hidden Costs: " + key))
	fmt.Println()
	printField("Booking fee", fmt.Sprintf("€%.2f", breakdown.VisibleFees.BookingFee))
	printField("Markup", breakdown.VisibleFees.PercentageMarkup)
	printField("Total potential", breakdown.TotalPotential)
	fmt.Println()
	for _, fee := range breakdown.TypicalExtras {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render(fee.Item),
			output.StyleWarning.Render(fee.TypicalCost))
	}
	fmt.Println()
	for _, tip := range breakdown.FeeAvoidanceTips {
		fmt.Println(" " + tip)
	}
	fmt.Println()
	return nil
}
