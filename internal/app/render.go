package app

import (
	"fmt"

	"github.com/blackwell-systems/farescout/internal/output"
	"github.com/blackwell-systems/farescout/internal/report"
)

// renderReport prints the console summary of a full analysis. Each section
// mirrors one pipeline stage; disabled stages are simply absent.
func renderReport(r *report.Report) {
	fmt.Println(output.Section("Route"))
	fmt.Println()
	printField("Route", r.RouteInfo.RouteDescription)
	printField("Departure", r.RouteInfo.DepartureDate)
	if r.RouteInfo.ReturnDate != "" {
		printField("Return", r.RouteInfo.ReturnDate)
	}
	if r.RouteInfo.TargetPrice > 0 {
		printField("Target price", fmt.Sprintf("€%.2f", r.RouteInfo.TargetPrice))
	}

	if s := r.AdvancedSearch; s != nil {
		fmt.Println(output.Section("Routing Options"))
		fmt.Println()
		tbl := output.NewTable("Type", "Route", "Price", "vs Direct", "Legality")
		for _, ranked := range s.LegalityRanked {
			opt := ranked.Option
			tbl.AddRow(
				opt.RouteType,
				fmt.Sprintf("%s → %s", opt.Origin, opt.Destination),
				output.Price(opt.Price, s.Direct.Price),
				output.SavingsArrow(s.Direct.Price-opt.Price),
				output.Legality(ranked.IsLegal),
			)
		}
		tbl.Print()
		fmt.Println()
		printField("Direct fare", fmt.Sprintf("€%.2f", s.Direct.Price))
		printField("Cheapest", fmt.Sprintf("€%.2f (%s)", s.Cheapest.Price, s.Cheapest.RouteType))
		if s.PriceAnalysis.SavingsAmount > 0 {
			printField("Potential savings", output.StyleSuccess.Render(
				fmt.Sprintf("€%.2f (%.1f%%)", s.PriceAnalysis.SavingsAmount, s.PriceAnalysis.SavingsPercentage)))
		}
	}

	if g := r.GeoPricing; g != nil {
		fmt.Println(output.Section("Geo-Pricing"))
		fmt.Println()
		tbl := output.NewTable("Country", "Local Price", "EUR", "Savings", "VPN")
		for i, m := range g.AllMarkets {
			if i >= 5 {
				break
			}
			vpn := ""
			if m.VPNRecommended {
				vpn = "✓"
			}
			tbl.AddRow(
				m.CountryName,
				m.PriceFormatted,
				output.Price(m.PriceEUR, g.MostExpensiveMarket.PriceEUR),
				output.SavingsBar(m.SavingsPercentage, 10),
				vpn,
			)
		}
		tbl.Print()
		fmt.Println()
		printField("Max savings", output.StyleSuccess.Render(
			fmt.Sprintf("€%.2f (%.1f%%)", g.MaxSavings, g.MaxSavingsPercent)))
		fmt.Println(" " + g.Recommendation)
		if g.AccessMethods != nil {
			fmt.Println(" " + output.StyleMuted.Render(g.AccessMethods.RecommendedApproach))
		}
	}

	if h := r.HistoricalAnalysis; h != nil {
		fmt.Println(output.Section("Historical Patterns"))
		fmt.Println()
		w := h.WindowAnalysis
		printField("Route type", w.RouteType)
		printField("Days to departure", fmt.Sprintf("%d", w.DaysUntilDeparture))
		printField("Optimal window", fmt.Sprintf("%d–%d days before (%s to %s)",
			w.OptimalWindow.DaysBefore[0], w.OptimalWindow.DaysBefore[1],
			w.OptimalWindow.StartDate, w.OptimalWindow.EndDate))
		printField("Season", fmt.Sprintf("%s (×%.2f)",
			h.SeasonalAnalysis.Season.Name, h.SeasonalAnalysis.Season.Multiplier))
		printField("Departure day", fmt.Sprintf("%s (%s)",
			h.DayAnalysis.Departure.Day, h.DayAnalysis.Departure.ExpectedImpact))
		printField("Demand", h.DemandAnalysis.OverallDemand)
		fmt.Println()
		fmt.Println(" " + w.Recommendation)
		fmt.Println(" " + output.StyleMuted.Render(h.OverallRecommendation))
	}

	if p := r.PlatformComparison; p != nil {
		fmt.Println(output.Section("Booking Platforms"))
		fmt.Println()
		tbl := output.NewTable("Platform", "Type", "Total", "Fees", "Value")
		for i, q := range p.AllPlatforms {
			if i >= 6 {
				break
			}
			tbl.AddRow(
				q.Platform,
				q.Type,
				output.Price(q.TotalPrice, p.MostExpensive.TotalPrice),
				fmt.Sprintf("€%.2f", q.Fees),
				fmt.Sprintf("%.1f/10", q.ValueScore),
			)
		}
		tbl.Print()
		fmt.Println()
		for _, rec := range p.Recommendations {
			fmt.Println(" " + rec)
		}
	}

	if t := r.TrackingStrategy; t != nil {
		fmt.Println(output.Section("Tracking Strategy"))
		fmt.Println()
		printField("Search frequency", t.SearchFrequency.Frequency)
		printField("Min hours between", fmt.Sprintf("%d", t.SearchFrequency.MinHoursBetween))
		if t.DropThresholds.TargetPrice > 0 {
			printField("Excellent below", fmt.Sprintf("€%.2f", t.DropThresholds.ExcellentPrice))
			printField("Good below", fmt.Sprintf("€%.2f", t.DropThresholds.GoodPrice))
			printField("Overpriced above", fmt.Sprintf("€%.2f", t.DropThresholds.Overpriced))
		}
	}

	if len(r.FinalRecommendations) > 0 {
		fmt.Println(output.Section("Recommendations"))
		fmt.Println()
		for _, rec := range r.FinalRecommendations {
			fmt.Println(" " + rec)
		}
	}
	fmt.Println()
}

// printField prints an aligned label/value pair.
func printField(label, value string) {
	fmt.Printf(" %s %s\n", output.StyleLabel.Render(label), value)
}
