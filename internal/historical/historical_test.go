package historical

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/farescout/internal/airports"
	"github.com/blackwell-systems/farescout/internal/route"
)

// testTable covers domestic, intra-EU, and intercontinental pairings.
func testTable() *airports.Table {
	return airports.NewTable(map[string]airports.Info{
		"FRA": {City: "Frankfurt", Country: "DE", Region: "Europe"},
		"MUC": {City: "Munich", Country: "DE", Region: "Europe"},
		"WAW": {City: "Warsaw", Country: "PL", Region: "Europe"},
		"JFK": {City: "New York", Country: "US", Region: "North America"},
	})
}

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(testTable(), nil).WithNow(fixedNow)
}

func TestClassifyRoute(t *testing.T) {
	a := newTestAnalyzer()

	cases := []struct {
		origin, destination, want string
	}{
		{"FRA", "MUC", RouteDomestic},
		{"FRA", "WAW", RouteInternational},
		{"FRA", "JFK", RouteIntercontinental},
		{"FRA", "XXX", RouteInternational},
		{"XXX", "YYY", RouteInternational},
	}
	for _, tc := range cases {
		if got := a.ClassifyRoute(tc.origin, tc.destination); got != tc.want {
			t.Errorf("ClassifyRoute(%s, %s) = %q, want %q", tc.origin, tc.destination, got, tc.want)
		}
	}
}

func TestBookingWindow_InclusiveBounds(t *testing.T) {
	a := newTestAnalyzer()

	// Domestic window is 21-60 days, bounds inclusive.
	cases := []struct {
		days int
		want bool
	}{
		{20, false},
		{21, true},
		{40, true},
		{60, true},
		{61, false},
	}
	for _, tc := range cases {
		w := a.BookingWindow("FRA", "MUC", fixedNow().AddDate(0, 0, tc.days))
		if w.CurrentlyOptimal != tc.want {
			t.Errorf("domestic +%dd CurrentlyOptimal = %v, want %v", tc.days, w.CurrentlyOptimal, tc.want)
		}
		if w.DaysUntilDeparture != tc.days {
			t.Errorf("+%dd DaysUntilDeparture = %d", tc.days, w.DaysUntilDeparture)
		}
	}
}

func TestBookingWindow_Recommendations(t *testing.T) {
	a := newTestAnalyzer()

	optimal := a.BookingWindow("FRA", "MUC", fixedNow().AddDate(0, 0, 30))
	if !strings.HasPrefix(optimal.Recommendation, "✓ BOOK NOW") {
		t.Errorf("in-window recommendation = %q", optimal.Recommendation)
	}

	early := a.BookingWindow("FRA", "MUC", fixedNow().AddDate(0, 0, 90))
	if !strings.HasPrefix(early.Recommendation, "WAIT") {
		t.Errorf("too-early recommendation = %q", early.Recommendation)
	}

	late := a.BookingWindow("FRA", "MUC", fixedNow().AddDate(0, 0, 10))
	if !strings.HasPrefix(late.Recommendation, "BOOK ASAP") {
		t.Errorf("past-window recommendation = %q", late.Recommendation)
	}
}

func TestBookingWindow_RouteClassBounds(t *testing.T) {
	a := newTestAnalyzer()

	intercontinental := a.BookingWindow("FRA", "JFK", fixedNow().AddDate(0, 0, 120))
	if intercontinental.OptimalWindow.DaysBefore != [2]int{90, 180} {
		t.Errorf("intercontinental window = %v", intercontinental.OptimalWindow.DaysBefore)
	}
	if !intercontinental.CurrentlyOptimal {
		t.Error("120 days out should be optimal for intercontinental")
	}

	international := a.BookingWindow("FRA", "WAW", fixedNow().AddDate(0, 0, 90))
	if international.OptimalWindow.DaysBefore != [2]int{60, 120} {
		t.Errorf("international window = %v", international.OptimalWindow.DaysBefore)
	}

	if len(intercontinental.HistoricalPattern) == 0 {
		t.Error("intercontinental routes should share the international price curve")
	}
}

func TestDayOfWeek(t *testing.T) {
	a := newTestAnalyzer()

	// 2026-10-13 is a Tuesday: optimal to fly. Booking on the fixed clock
	// date 2026-09-01, also a Tuesday: optimal to book.
	tuesday := time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)
	analysis := a.DayOfWeek(tuesday, nil)

	if !analysis.Departure.IsOptimal {
		t.Error("Tuesday departure should be optimal")
	}
	if !analysis.Booking.IsOptimal {
		t.Error("Tuesday booking should be optimal")
	}
	if analysis.Recommendation != "✓ Optimal - Both departure and booking days are ideal" {
		t.Errorf("Recommendation = %q", analysis.Recommendation)
	}

	// 2026-10-16 is a Friday: expensive to fly, with nearby alternatives.
	friday := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	badDay := a.DayOfWeek(friday, nil)
	if !badDay.Departure.IsExpensive {
		t.Error("Friday departure should be expensive")
	}
	if len(badDay.Departure.Alternatives) == 0 {
		t.Error("Friday should have cheaper nearby weekdays")
	}
	if len(badDay.Departure.Alternatives) > 3 {
		t.Errorf("alternatives capped at 3, got %d", len(badDay.Departure.Alternatives))
	}
}

func TestIdentifySeason(t *testing.T) {
	cases := []struct {
		month int
		mult  float64
	}{
		{7, 1.3},   // summer peak
		{12, 1.4},  // Christmas
		{2, 0.75},  // late winter
		{10, 0.85}, // fall
		{5, 1.0},   // shoulder
	}
	for _, tc := range cases {
		season := identifySeason(tc.month)
		if season.Multiplier != tc.mult {
			t.Errorf("identifySeason(%d).Multiplier = %v, want %v", tc.month, season.Multiplier, tc.mult)
		}
	}
}

func TestSeasonal_ExamplePrice(t *testing.T) {
	a := newTestAnalyzer()

	july := a.Seasonal(time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC))
	if july.PriceImpact.Multiplier != 1.3 {
		t.Errorf("July multiplier = %v, want 1.3", july.PriceImpact.Multiplier)
	}
	if july.PriceImpact.ExampleSeasonal != 300.0*1.3 {
		t.Errorf("ExampleSeasonal = %v", july.PriceImpact.ExampleSeasonal)
	}
	if july.PriceImpact.VsAverage != "+30%" {
		t.Errorf("VsAverage = %q", july.PriceImpact.VsAverage)
	}
}

func TestDemandCycles(t *testing.T) {
	a := newTestAnalyzer()

	// FRA and JFK are both business hubs; a Friday in July scores
	// 1 (business) + 2 (weekend day) + 3 (high season) = 6.
	peak := a.DemandCycles("FRA", "JFK", time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC))
	if peak.RouteCharacter.Type != "business" {
		t.Errorf("RouteCharacter = %q", peak.RouteCharacter.Type)
	}
	if peak.OverallDemand != "Very High" {
		t.Errorf("OverallDemand = %q, want Very High", peak.OverallDemand)
	}

	// A Tuesday in February on a leisure route scores 0.
	quiet := a.DemandCycles("MUC", "WAW", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	if quiet.OverallDemand != "Low" {
		t.Errorf("OverallDemand = %q, want Low", quiet.OverallDemand)
	}
	if quiet.EventImpact.Impact != "none" {
		t.Errorf("EventImpact = %q, want none", quiet.EventImpact.Impact)
	}
}

func TestAnalyze_Comprehensive(t *testing.T) {
	a := newTestAnalyzer()

	ret := time.Date(2026, 10, 27, 0, 0, 0, 0, time.UTC)
	req := route.Request{
		Origin:      "FRA",
		Destination: "JFK",
		Departure:   time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC),
		Return:      &ret,
	}

	c := a.Analyze(req)

	if c.Route != "FRA → JFK" {
		t.Errorf("Route = %q", c.Route)
	}
	if c.DepartureDate != "2026-10-13" || c.ReturnDate != "2026-10-27" {
		t.Errorf("dates = %q / %q", c.DepartureDate, c.ReturnDate)
	}
	if c.WindowAnalysis.RouteType != RouteIntercontinental {
		t.Errorf("RouteType = %q", c.WindowAnalysis.RouteType)
	}
	if len(c.FareResets.BestSearchTimes) == 0 {
		t.Error("fare resets missing best search times")
	}
	// October is off-peak (0.85), 42 days out is inside no window for
	// intercontinental, so the joined recommendation carries both parts.
	if !strings.Contains(c.OverallRecommendation, " | ") {
		t.Errorf("OverallRecommendation = %q, want joined parts", c.OverallRecommendation)
	}
	if !strings.Contains(c.OverallRecommendation, "Off-peak season") {
		t.Errorf("OverallRecommendation = %q, want off-peak note", c.OverallRecommendation)
	}
}
