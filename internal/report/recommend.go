package report

import "fmt"

// Rule examines a finished report and produces zero or more final
// recommendations.
type Rule func(r *Report) []string

// Engine runs all registered recommendation rules against a report.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with all built-in rules registered, in
// presentation order.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			CheapestOption,
			GeoOpportunity,
			BookingTiming,
			InflationReminder,
			PlatformPick,
			TrackingReminder,
		},
	}
}

// Run executes all registered rules and collects the recommendations.
func (e *Engine) Run(r *Report) []string {
	var all []string
	for _, rule := range e.rules {
		all = append(all, rule(r)...)
	}
	return all
}

// CheapestOption surfaces the cheapest routing found by the search.
func CheapestOption(r *Report) []string {
	if r.AdvancedSearch == nil {
		return nil
	}
	cheapest := r.AdvancedSearch.Cheapest
	return []string{fmt.Sprintf("💰 CHEAPEST OPTION: %s route at €%.2f", cheapest.RouteType, cheapest.Price)}
}

// geoSavingsFloor is the minimum cross-market saving worth recommending.
const geoSavingsFloor = 30.0

// GeoOpportunity surfaces significant cross-market savings.
func GeoOpportunity(r *Report) []string {
	if r.GeoPricing == nil || r.GeoPricing.MaxSavings <= geoSavingsFloor {
		return nil
	}
	return []string{fmt.Sprintf("🌍 GEO-PRICING: Save €%.2f by booking from %s",
		r.GeoPricing.MaxSavings, r.GeoPricing.CheapestMarket.CountryName)}
}

// BookingTiming reports whether the booking window is currently optimal.
func BookingTiming(r *Report) []string {
	if r.HistoricalAnalysis == nil {
		return nil
	}
	window := r.HistoricalAnalysis.WindowAnalysis
	if window.CurrentlyOptimal {
		return []string{"✅ TIMING: You're in the optimal booking window - good time to book!"}
	}
	return []string{fmt.Sprintf("⏰ TIMING: %s", window.Recommendation)}
}

// InflationReminder always reminds about search hygiene.
func InflationReminder(r *Report) []string {
	return []string{"🛡️ IMPORTANT: Use incognito mode, clear cookies, and limit searches to avoid price inflation"}
}

// PlatformPick surfaces the cheapest booking platform.
func PlatformPick(r *Report) []string {
	if r.PlatformComparison == nil {
		return nil
	}
	return []string{fmt.Sprintf("💻 PLATFORM: Book via %s for lowest total cost",
		r.PlatformComparison.CheapestOverall.Platform)}
}

// TrackingReminder always suggests alert-based monitoring.
func TrackingReminder(r *Report) []string {
	return []string{"🔔 TRACKING: Set up Google Flights & Kayak price alerts instead of manual searching"}
}
