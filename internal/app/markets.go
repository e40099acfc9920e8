package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/farescout/internal/geo"
	"github.com/blackwell-systems/farescout/internal/output"
)

var (
	marketsPrice   float64
	marketsExplain []string
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "Simulate geo-pricing across countries",
	Long: `Markets simulates how the same fare prices across country markets,
ranks them by EUR-equivalent price, and shows legal ways to access the
cheapest one.

Examples:
  farescout markets
  farescout markets --price 620
  farescout markets --explain DE,IN
  farescout markets --json`,
	Args: cobra.NoArgs,
	RunE: runMarkets,
}

func init() {
	marketsCmd.Flags().Float64Var(&marketsPrice, "price", 450, "Base fare in EUR to simulate from")
	marketsCmd.Flags().StringSliceVar(&marketsExplain, "explain", nil, "Explain the price difference between two country codes (e.g. DE,IN)")
	rootCmd.AddCommand(marketsCmd)
}

func runMarkets(cmd *cobra.Command, args []string) error {
	if err := positivePrice(marketsPrice); err != nil {
		return err
	}

	applyColorMode()
	log := newLogger()
	cfg := loadConfigLenient(log)

	if len(marketsExplain) > 0 {
		if len(marketsExplain) != 2 {
			return fmt.Errorf("--explain needs exactly two country codes, got %d", len(marketsExplain))
		}
		return renderExplanation(
			strings.ToUpper(marketsExplain[0]),
			strings.ToUpper(marketsExplain[1]))
	}

	analysis := geo.FindCheapestMarket(marketsPrice, cfg.Currency)
	analysis.AccessMethods = geo.LegalAccessMethods(analysis.CheapestMarket.Country)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	fmt.Println(output.Section(fmt.Sprintf("Market Prices (base €%.2f)", marketsPrice)))
	fmt.Println()
	tbl := output.NewTable("Country", "Currency", "Local Price", "EUR", "Savings", "VPN")
	for _, m := range analysis.AllMarkets {
		vpn := ""
		if m.VPNRecommended {
			vpn = "✓"
		}
		tbl.AddRow(
			m.CountryName,
			m.Currency,
			m.PriceFormatted,
			output.Price(m.PriceEUR, analysis.MostExpensiveMarket.PriceEUR),
			output.SavingsBar(m.SavingsPercentage, 10),
			vpn,
		)
	}
	tbl.Print()
	fmt.Println()
	printField("Cheapest market", analysis.CheapestMarket.CountryName)
	printField("Max savings", output.StyleSuccess.Render(
		fmt.Sprintf("€%.2f (%.1f%%)", analysis.MaxSavings, analysis.MaxSavingsPercent)))
	fmt.Println()
	fmt.Println(" " + analysis.Recommendation)

	if guide := analysis.AccessMethods; guide != nil {
		fmt.Println(output.Section("Accessing " + guide.TargetCountry + " Prices"))
		fmt.Println()
		for _, m := range guide.Methods {
			legality := output.StyleWarning.Render(m.Legality)
			if m.Legality == "Fully Legal" {
				legality = output.StyleSuccess.Render(m.Legality)
			}
			fmt.Printf(" %s [%s] %s\n",
				output.StyleBold.Render(m.Method),
				legality,
				output.StyleMuted.Render(m.Description))
		}
		fmt.Println()
		fmt.Println(" " + guide.RecommendedApproach)
	}
	fmt.Println()
	return nil
}

// renderExplanation prints why two country markets price the same fare
// differently.
func renderExplanation(country1, country2 string) error {
	exp := geo.ExplainDifference(country1, country2)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(exp)
	}

	fmt.Println(output.Section(fmt.Sprintf("%s vs %s", exp.Country1.Name, exp.Country2.Name)))
	fmt.Println()
	printField("Price ratio", fmt.Sprintf("×%.2f", exp.DifferenceMultiplier))
	fmt.Println()
	for _, reason := range exp.Reasons {
		fmt.Printf(" %s\n   %s\n",
			output.StyleBold.Render(reason.Factor),
			output.StyleMuted.Render(reason.Explanation))
	}
	fmt.Println()
	return nil
}
