// Package historical applies documented airline pricing behavior to a route
// and date: booking windows, day-of-week and seasonal patterns, fare reset
// cycles, and demand scoring.
package historical

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/blackwell-systems/farescout/internal/airports"
	"github.com/blackwell-systems/farescout/internal/route"
)

// Route classes, by geographic reach.
const (
	RouteDomestic         = "domestic"
	RouteInternational    = "international"
	RouteIntercontinental = "intercontinental"
)

// euCountries bounds the "same continent" check for route classification.
var euCountries = map[string]bool{
	"DE": true, "FR": true, "IT": true, "ES": true, "NL": true,
	"GB": true, "PL": true, "AT": true, "CH": true,
}

// windowPattern holds the booking-window heuristics for one route class.
type windowPattern struct {
	optimalDaysBefore [2]int
	priceTrend        string
	avoidBooking      [2]int
	avoidReason       string
}

var windowPatterns = map[string]windowPattern{
	RouteDomestic: {
		optimalDaysBefore: [2]int{21, 60},
		priceTrend:        "Prices lowest 3-8 weeks before departure",
		avoidBooking:      [2]int{0, 7},
		avoidReason:       "Last-minute premium up to 40%",
	},
	RouteInternational: {
		optimalDaysBefore: [2]int{60, 120},
		priceTrend:        "Prices lowest 2-4 months before departure",
		avoidBooking:      [2]int{0, 14},
		avoidReason:       "Last-minute premium up to 50%",
	},
	RouteIntercontinental: {
		optimalDaysBefore: [2]int{90, 180},
		priceTrend:        "Prices lowest 3-6 months before departure",
		avoidBooking:      [2]int{0, 21},
		avoidReason:       "Last-minute premium up to 60%",
	},
}

// Analyzer evaluates historical pricing patterns for routes.
type Analyzer struct {
	table *airports.Table
	now   func() time.Time
	log   *slog.Logger
}

// NewAnalyzer builds an analyzer over the given airport table.
func NewAnalyzer(table *airports.Table, log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{table: table, now: time.Now, log: log}
}

// WithNow overrides the clock, for tests.
func (a *Analyzer) WithNow(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// OptimalWindow is the calendar span of the optimal booking window.
type OptimalWindow struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	DaysBefore [2]int `json:"days_before"`
}

// CurvePoint is one sample of the relative price curve by days before
// departure.
type CurvePoint struct {
	DaysBefore    int     `json:"days_before"`
	RelativePrice float64 `json:"relative_price"`
}

// WindowAnalysis describes where the booking date sits relative to the
// route class's optimal window.
type WindowAnalysis struct {
	RouteType          string        `json:"route_type"`
	DepartureDate      string        `json:"departure_date"`
	DaysUntilDeparture int           `json:"days_until_departure"`
	OptimalWindow      OptimalWindow `json:"optimal_booking_window"`
	CurrentlyOptimal   bool          `json:"currently_optimal"`
	Recommendation     string        `json:"recommendation"`
	PriceTrend         string        `json:"price_trend"`
	HistoricalPattern  []CurvePoint  `json:"historical_pattern"`
}

// ClassifyRoute decides whether a pair is domestic, international (same
// continent), or intercontinental. Unknown airports default to
// international.
func (a *Analyzer) ClassifyRoute(origin, destination string) string {
	oc := a.table.Country(origin)
	dc := a.table.Country(destination)

	if oc == "" || dc == "" {
		return RouteInternational
	}
	if oc == dc {
		return RouteDomestic
	}
	if euCountries[oc] && euCountries[dc] {
		return RouteInternational
	}
	return RouteIntercontinental
}

// BookingWindow analyzes the route-class-specific optimal booking window
// for a departure date. The window bounds are inclusive.
func (a *Analyzer) BookingWindow(origin, destination string, departure time.Time) WindowAnalysis {
	routeType := a.ClassifyRoute(origin, destination)
	pattern := windowPatterns[routeType]

	days := route.DaysUntil(departure, a.now())
	inOptimal := days >= pattern.optimalDaysBefore[0] && days <= pattern.optimalDaysBefore[1]

	optimalStart := departure.AddDate(0, 0, -pattern.optimalDaysBefore[1])
	optimalEnd := departure.AddDate(0, 0, -pattern.optimalDaysBefore[0])

	return WindowAnalysis{
		RouteType:          routeType,
		DepartureDate:      departure.Format(route.DateFormat),
		DaysUntilDeparture: days,
		OptimalWindow: OptimalWindow{
			StartDate:  optimalStart.Format(route.DateFormat),
			EndDate:    optimalEnd.Format(route.DateFormat),
			DaysBefore: pattern.optimalDaysBefore,
		},
		CurrentlyOptimal:  inOptimal,
		Recommendation:    windowRecommendation(days, pattern, inOptimal),
		PriceTrend:        pattern.priceTrend,
		HistoricalPattern: priceCurve(routeType),
	}
}

func windowRecommendation(days int, pattern windowPattern, inOptimal bool) string {
	switch {
	case inOptimal:
		return fmt.Sprintf("✓ BOOK NOW - You're in the optimal booking window (%d days before departure)", days)
	case days > pattern.optimalDaysBefore[1]:
		wait := days - pattern.optimalDaysBefore[1]
		return fmt.Sprintf("WAIT - Too early. Optimal window opens in %d days", wait)
	case days < pattern.optimalDaysBefore[0]:
		return fmt.Sprintf("BOOK ASAP - Past optimal window. Prices likely increasing (only %d days left)", days)
	default:
		return "MONITOR - Close to optimal window"
	}
}

var priceCurves = map[string][]CurvePoint{
	RouteDomestic: {
		{DaysBefore: 90, RelativePrice: 1.1},
		{DaysBefore: 60, RelativePrice: 0.95},
		{DaysBefore: 30, RelativePrice: 0.92},
		{DaysBefore: 21, RelativePrice: 0.90},
		{DaysBefore: 14, RelativePrice: 0.95},
		{DaysBefore: 7, RelativePrice: 1.15},
		{DaysBefore: 3, RelativePrice: 1.30},
		{DaysBefore: 1, RelativePrice: 1.40},
	},
	RouteInternational: {
		{DaysBefore: 180, RelativePrice: 1.0},
		{DaysBefore: 120, RelativePrice: 0.92},
		{DaysBefore: 90, RelativePrice: 0.88},
		{DaysBefore: 60, RelativePrice: 0.85},
		{DaysBefore: 30, RelativePrice: 0.90},
		{DaysBefore: 14, RelativePrice: 1.10},
		{DaysBefore: 7, RelativePrice: 1.35},
		{DaysBefore: 1, RelativePrice: 1.50},
	},
}

// priceCurve returns the relative price curve for a route class.
// Intercontinental routes share the international curve.
func priceCurve(routeType string) []CurvePoint {
	if curve, ok := priceCurves[routeType]; ok {
		return curve
	}
	return priceCurves[RouteInternational]
}
