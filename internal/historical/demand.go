package historical

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/farescout/internal/route"
)

// businessHubs marks airports whose pairings indicate weekday business
// demand.
var businessHubs = map[string]bool{
	"FRA": true, "LHR": true, "JFK": true, "DXB": true,
}

// RouteCharacter classifies a route as business or leisure oriented.
type RouteCharacter struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// DayDemand is the weekday demand level for the departure date.
type DayDemand struct {
	Day         string `json:"day"`
	DemandLevel string `json:"demand_level"`
	Reason      string `json:"reason"`
}

// SeasonalDemand is the seasonal demand level for the departure date.
type SeasonalDemand struct {
	Season      string  `json:"season"`
	DemandLevel string  `json:"demand_level"`
	Multiplier  float64 `json:"multiplier"`
}

// EventImpact reports demand pressure from events at the destination.
// There is no events data source wired in, so the result is always none.
type EventImpact struct {
	EventsFound bool   `json:"events_found"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// DemandAnalysis combines the demand components into an overall level.
type DemandAnalysis struct {
	RouteCharacter RouteCharacter `json:"route_character"`
	DayDemand      DayDemand      `json:"day_demand"`
	SeasonalDemand SeasonalDemand `json:"seasonal_demand"`
	EventImpact    EventImpact    `json:"event_impact"`
	OverallDemand  string         `json:"overall_demand"`
	Recommendation string         `json:"pricing_recommendation"`
}

// DemandCycles scores the demand pressure on a route and date. Component
// weights: business route +1, high day demand +2, high seasonal demand +3,
// event impact +2.
func (a *Analyzer) DemandCycles(origin, destination string, departure time.Time) DemandAnalysis {
	character := classifyCharacter(origin, destination)
	day := analyzeDayDemand(departure)
	seasonal := analyzeSeasonalDemand(departure)
	events := checkEventImpact()

	return DemandAnalysis{
		RouteCharacter: character,
		DayDemand:      day,
		SeasonalDemand: seasonal,
		EventImpact:    events,
		OverallDemand:  overallDemand(character, day, seasonal, events),
		Recommendation: demandRecommendation(day, seasonal),
	}
}

func classifyCharacter(origin, destination string) RouteCharacter {
	if businessHubs[origin] && businessHubs[destination] {
		return RouteCharacter{Type: "business", Description: "Business route with weekday demand"}
	}
	return RouteCharacter{Type: "leisure", Description: "Leisure route with weekend demand"}
}

func analyzeDayDemand(date time.Time) DayDemand {
	day := date.Weekday().String()
	weekend := day == "Friday" || day == "Saturday" || day == "Sunday"

	d := DayDemand{Day: day, DemandLevel: "moderate", Reason: "Weekday travel"}
	if weekend {
		d.DemandLevel = "high"
		d.Reason = "Weekend leisure travel"
	}
	return d
}

func analyzeSeasonalDemand(date time.Time) SeasonalDemand {
	season := identifySeason(int(date.Month()))

	level := "low"
	if season.Multiplier > 1.1 {
		level = "high"
	}
	return SeasonalDemand{Season: season.Name, DemandLevel: level, Multiplier: season.Multiplier}
}

func checkEventImpact() EventImpact {
	return EventImpact{
		EventsFound: false,
		Description: "No major events detected",
		Impact:      "none",
	}
}

func overallDemand(character RouteCharacter, day DayDemand, seasonal SeasonalDemand, events EventImpact) string {
	score := 0
	if character.Type == "business" {
		score++
	}
	if day.DemandLevel == "high" {
		score += 2
	}
	if seasonal.DemandLevel == "high" {
		score += 3
	}
	if events.Impact != "none" {
		score += 2
	}

	switch {
	case score >= 5:
		return "Very High"
	case score >= 3:
		return "High"
	case score >= 1:
		return "Moderate"
	default:
		return "Low"
	}
}

func demandRecommendation(day DayDemand, seasonal SeasonalDemand) string {
	switch {
	case day.DemandLevel == "high" && seasonal.DemandLevel == "high":
		return "⚠️ Peak demand period. Book well in advance and expect high prices."
	case seasonal.DemandLevel == "high":
		return "High season. Book 3-6 months ahead for better prices."
	case day.DemandLevel == "high":
		return "Consider shifting travel dates to mid-week for lower prices."
	default:
		return "✓ Low demand period. Good opportunity for deals."
	}
}

// Comprehensive combines the booking-window, weekday, seasonal, fare-reset,
// and demand analyses with a joined overall recommendation.
type Comprehensive struct {
	Route                 string           `json:"route"`
	DepartureDate         string           `json:"departure_date"`
	ReturnDate            string           `json:"return_date,omitempty"`
	WindowAnalysis        WindowAnalysis   `json:"booking_window_analysis"`
	DayAnalysis           DayAnalysis      `json:"day_of_week_analysis"`
	SeasonalAnalysis      SeasonalAnalysis `json:"seasonal_analysis"`
	FareResets            FareResets       `json:"fare_reset_times"`
	DemandAnalysis        DemandAnalysis   `json:"demand_cycle_analysis"`
	OverallRecommendation string           `json:"overall_recommendation"`
}

// Analyze runs every historical analysis for the request and joins the
// component recommendations with " | ".
func (a *Analyzer) Analyze(req route.Request) Comprehensive {
	a.log.Info("running historical analysis",
		"origin", req.Origin, "destination", req.Destination)

	c := Comprehensive{
		Route:            fmt.Sprintf("%s → %s", req.Origin, req.Destination),
		DepartureDate:    req.Departure.Format(route.DateFormat),
		WindowAnalysis:   a.BookingWindow(req.Origin, req.Destination, req.Departure),
		DayAnalysis:      a.DayOfWeek(req.Departure, nil),
		SeasonalAnalysis: a.Seasonal(req.Departure),
		FareResets:       FareResetTimes(),
		DemandAnalysis:   a.DemandCycles(req.Origin, req.Destination, req.Departure),
	}
	if req.Return != nil {
		c.ReturnDate = req.Return.Format(route.DateFormat)
	}
	c.OverallRecommendation = overallRecommendation(c)
	return c
}

func overallRecommendation(c Comprehensive) string {
	var parts []string

	if c.WindowAnalysis.CurrentlyOptimal {
		parts = append(parts, "✓ In optimal booking window")
	} else {
		parts = append(parts, c.WindowAnalysis.Recommendation)
	}

	if !c.DayAnalysis.Departure.IsOptimal && len(c.DayAnalysis.Departure.Alternatives) > 0 {
		parts = append(parts, fmt.Sprintf("Consider alternative date: %s", c.DayAnalysis.Departure.Alternatives[0].Date))
	}

	mult := c.SeasonalAnalysis.Season.Multiplier
	if mult > 1.15 {
		parts = append(parts, "⚠️ High season - expect elevated prices")
	} else if mult < 0.9 {
		parts = append(parts, "✓ Off-peak season - good time for deals")
	}

	return strings.Join(parts, " | ")
}
