package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/farescout/internal/config"
	"github.com/blackwell-systems/farescout/internal/output"
	"github.com/blackwell-systems/farescout/internal/store"
	"github.com/blackwell-systems/farescout/internal/tracking"
)

var (
	trackPlatform string
	trackCurrency string
	trackList     bool
)

var trackCmd = &cobra.Command{
	Use:   "track <origin> <destination> [price]",
	Short: "Log observed prices and check for inflation",
	Long: `Track logs a price you observed for a route and checks the accumulated
history for inflation patterns: steadily rising prices, too many searches,
or searches spaced too closely together.

Examples:
  farescout track FRA JFK 489.99
  farescout track FRA JFK 512.50 --platform expedia
  farescout track FRA JFK --list
  farescout track FRA JFK`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackPlatform, "platform", "", "Platform the price was seen on")
	trackCmd.Flags().StringVar(&trackCurrency, "currency", "EUR", "Currency of the observed price")
	trackCmd.Flags().BoolVar(&trackList, "list", false, "List logged observations for the route")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	applyColorMode()

	origin := strings.ToUpper(args[0])
	destination := strings.ToUpper(args[1])

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if trackList {
		return runTrackList(db, origin, destination)
	}

	// With a price argument, log the observation before evaluating
	// stability. Without one, just evaluate what is already logged.
	if len(args) == 3 {
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("parsing price: %w", err)
		}
		if price <= 0 {
			return fmt.Errorf("price must be positive, got %.2f", price)
		}

		if _, err := db.InsertObservation(&store.ObservationRow{
			Origin:      origin,
			Destination: destination,
			Price:       price,
			Currency:    trackCurrency,
			Platform:    trackPlatform,
		}); err != nil {
			return fmt.Errorf("logging observation: %w", err)
		}
		fmt.Printf("Logged %s → %s at %.2f %s\n", origin, destination, price, trackCurrency)
	}

	history, err := db.History(origin, destination)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	stability := tracking.MonitorStability(history)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(stability)
	}

	renderStability(stability)
	return nil
}

func renderStability(s tracking.StabilityReport) {
	fmt.Println(output.Section("Price Stability"))
	fmt.Println()

	switch s.Status {
	case "warning":
		printField("Status", output.StyleWarning.Render(s.Status))
	case "ok":
		printField("Status", output.StyleSuccess.Render(s.Status))
	default:
		printField("Status", s.Status)
	}
	if s.Message != "" {
		printField("Note", s.Message)
	}
	if s.TotalSearches > 0 {
		printField("Searches logged", fmt.Sprintf("%d", s.TotalSearches))
		printField("Avg price change", fmt.Sprintf("%+.2f €", s.AveragePriceChange))
	}
	if len(s.Warnings) > 0 {
		fmt.Println()
		for _, w := range s.Warnings {
			fmt.Println(" " + output.StyleWarning.Render(w))
		}
	}
	if s.Recommendation != "" {
		fmt.Println()
		fmt.Println(" " + s.Recommendation)
	}
	fmt.Println()
}

func runTrackList(db *store.DB, origin, destination string) error {
	rows, err := db.GetObservations(origin, destination)
	if err != nil {
		return fmt.Errorf("querying observations: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Printf("No observations for %s → %s yet. Use 'farescout track %s %s <price>' to log one.\n",
			origin, destination, origin, destination)
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Observations %s → %s", origin, destination)))
	fmt.Println()
	tbl := output.NewTable("Seen", "Price", "Currency", "Platform")
	for _, r := range rows {
		tbl.AddRow(
			r.SeenAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%.2f", r.Price),
			r.Currency,
			r.Platform,
		)
	}
	tbl.Print()
	return nil
}
