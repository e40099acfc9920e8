package search

import (
	"reflect"
	"testing"
	"time"

	"github.com/blackwell-systems/farescout/internal/airports"
	"github.com/blackwell-systems/farescout/internal/pricing"
	"github.com/blackwell-systems/farescout/internal/route"
)

// stubSource pins the jitter at the midpoint so simulated fares are exact:
// a known international pair prices at 150 * 2.5 * 1.05 = 393.75 and a
// domestic or unknown pair at 150 * 1.05 = 157.50.
type stubSource struct{}

func (stubSource) Float64() float64 { return 0.5 }
func (stubSource) Intn(n int) int   { return 0 }

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func testTable() *airports.Table {
	return airports.NewTable(map[string]airports.Info{
		"FRA": {City: "Frankfurt", Country: "DE", Region: "Europe"},
		"MUC": {City: "Munich", Country: "DE", Region: "Europe"},
		"JFK": {City: "New York", Country: "US", Region: "North America"},
	})
}

func newTestEngine() *Engine {
	sim := pricing.NewSimulator(testTable(), stubSource{}).WithNow(fixedNow)
	return NewEngine(testTable(), sim, nil)
}

// testRequest departs 120 days out, comfortably inside the good booking
// window so no lateness multiplier applies.
func testRequest() route.Request {
	return route.Request{
		Origin:      "FRA",
		Destination: "JFK",
		Departure:   fixedNow().AddDate(0, 0, 120),
	}
}

func TestDirect_OneWay(t *testing.T) {
	e := newTestEngine()
	opt := e.Direct(testRequest())

	if opt.Price != 393.75 {
		t.Errorf("Price = %v, want 393.75", opt.Price)
	}
	if opt.RouteType != route.TypeDirect {
		t.Errorf("RouteType = %q", opt.RouteType)
	}
	if len(opt.Legs) != 1 {
		t.Fatalf("Legs = %d, want 1", len(opt.Legs))
	}
	if opt.Return != "" {
		t.Errorf("Return = %q, want empty for one-way", opt.Return)
	}
	if opt.Description != "Frankfurt (FRA) → New York (JFK)" {
		t.Errorf("Description = %q", opt.Description)
	}
	if len(opt.BookingLinks) == 0 {
		t.Error("direct option missing booking links")
	}
}

func TestDirect_RoundTrip(t *testing.T) {
	e := newTestEngine()
	req := testRequest()
	ret := req.Departure.AddDate(0, 0, 14)
	req.Return = &ret

	opt := e.Direct(req)

	if opt.Price != pricing.Round2(393.75*1.8) {
		t.Errorf("Price = %v, want round-trip fare", opt.Price)
	}
	if len(opt.Legs) != 2 {
		t.Fatalf("Legs = %d, want 2", len(opt.Legs))
	}
	if opt.Legs[1].Origin != "JFK" || opt.Legs[1].Destination != "FRA" {
		t.Errorf("return leg = %+v", opt.Legs[1])
	}
	if opt.Return != ret.Format(route.DateFormat) {
		t.Errorf("Return = %q", opt.Return)
	}
}

func TestHiddenCity_AcceptsOnlyCheaperVariants(t *testing.T) {
	e := newTestEngine()
	req := testRequest()

	// Against the real direct fare every through-ticket past JFK is cheaper.
	opts := e.HiddenCity(req, 393.75)
	if len(opts) != len(airports.CitiesBeyond("JFK")) {
		t.Fatalf("accepted %d variants, want %d", len(opts), len(airports.CitiesBeyond("JFK")))
	}
	for _, o := range opts {
		if o.Price >= 393.75 {
			t.Errorf("variant priced %v, not below direct", o.Price)
		}
		if o.RouteType != route.TypeHiddenCity {
			t.Errorf("RouteType = %q", o.RouteType)
		}
		if o.Destination != "JFK" {
			t.Errorf("Destination = %q, want the layover JFK", o.Destination)
		}
		if len(o.Legs) != 2 || !o.Legs[1].Skipped {
			t.Errorf("legs = %+v, want skipped final leg", o.Legs)
		}
	}

	// Against an artificially cheap direct fare nothing qualifies.
	if got := e.HiddenCity(req, 50); len(got) != 0 {
		t.Errorf("accepted %d variants against a 50 EUR baseline", len(got))
	}
}

func TestNearbyAirports(t *testing.T) {
	e := newTestEngine()
	opts := e.NearbyAirports(testRequest())

	// 5 origins x 3 destinations minus the original pair.
	if len(opts) != 14 {
		t.Fatalf("options = %d, want 14", len(opts))
	}
	for i, o := range opts {
		if o.Origin == "FRA" && o.Destination == "JFK" {
			t.Error("original pair should be excluded")
		}
		if o.RouteType != route.TypeNearbyAirport {
			t.Errorf("RouteType = %q", o.RouteType)
		}
		if i > 0 && opts[i-1].Price > o.Price {
			t.Errorf("options not sorted at index %d", i)
		}
	}
}

func TestMultiLeg(t *testing.T) {
	e := newTestEngine()
	req := testRequest()

	opts := e.MultiLeg(req)
	if len(opts) != len(airports.Hubs("FRA", "JFK")) {
		t.Fatalf("options = %d, want one per hub", len(opts))
	}
	for _, o := range opts {
		if o.RouteType != route.TypeMultiLegSplit {
			t.Errorf("RouteType = %q", o.RouteType)
		}
		if len(o.Legs) != 2 {
			t.Errorf("one-way split has %d legs, want 2", len(o.Legs))
		}
		sum := 0.0
		for _, leg := range o.Legs {
			if leg.BookingType != "separate" {
				t.Errorf("leg BookingType = %q", leg.BookingType)
			}
			sum += leg.Price
		}
		if o.Price != pricing.Round2(sum) {
			t.Errorf("Price = %v, legs sum to %v", o.Price, sum)
		}
	}

	ret := req.Departure.AddDate(0, 0, 14)
	req.Return = &ret
	roundTrip := e.MultiLeg(req)
	if len(roundTrip[0].Legs) != 4 {
		t.Errorf("round-trip split has %d legs, want 4", len(roundTrip[0].Legs))
	}
}

func TestComprehensive(t *testing.T) {
	e := newTestEngine()
	res := e.Comprehensive(testRequest())

	// 1 direct + 3 hidden-city + 5 nearby + 3 multi-leg.
	if res.OptionsFound != 12 {
		t.Errorf("OptionsFound = %d, want 12", res.OptionsFound)
	}
	if len(res.AllOptions) != 10 {
		t.Errorf("AllOptions = %d, want capped at 10", len(res.AllOptions))
	}
	for i := 1; i < len(res.AllOptions); i++ {
		if res.AllOptions[i-1].Price > res.AllOptions[i].Price {
			t.Errorf("merged options not sorted at index %d", i)
		}
	}

	if res.Direct.Price != 393.75 {
		t.Errorf("Direct.Price = %v", res.Direct.Price)
	}
	if !reflect.DeepEqual(res.Cheapest, res.AllOptions[0]) {
		t.Error("Cheapest should be the first merged option")
	}
	if res.Cheapest.RouteType != route.TypeHiddenCity {
		t.Errorf("cheapest route type = %q, want hidden-city", res.Cheapest.RouteType)
	}

	pa := res.PriceAnalysis
	if pa.DirectPrice != 393.75 {
		t.Errorf("DirectPrice = %v", pa.DirectPrice)
	}
	if pa.CheapestPrice != res.Cheapest.Price {
		t.Errorf("CheapestPrice = %v", pa.CheapestPrice)
	}
	if pa.SavingsAmount != pricing.Round2(393.75-res.Cheapest.Price) {
		t.Errorf("SavingsAmount = %v", pa.SavingsAmount)
	}
	if pa.CheapestRouteType != route.TypeHiddenCity {
		t.Errorf("CheapestRouteType = %q", pa.CheapestRouteType)
	}
	if pa.PriceRange.Min != res.Cheapest.Price || pa.PriceRange.Max < pa.PriceRange.Min {
		t.Errorf("PriceRange = %+v", pa.PriceRange)
	}
	for _, rt := range []string{route.TypeDirect, route.TypeHiddenCity, route.TypeNearbyAirport, route.TypeMultiLegSplit} {
		if _, ok := pa.AverageByRouteType[rt]; !ok {
			t.Errorf("AverageByRouteType missing %q", rt)
		}
	}

	if len(res.LegalityRanked) != res.OptionsFound {
		t.Errorf("LegalityRanked = %d entries, want %d", len(res.LegalityRanked), res.OptionsFound)
	}
}

func TestRankByLegality(t *testing.T) {
	opts := []route.Option{
		{RouteType: route.TypeHiddenCity, Price: 130},
		{RouteType: route.TypeDirect, Price: 400},
		{RouteType: route.TypeMultiLegSplit, Price: 320},
		{RouteType: route.TypeNearbyAirport, Price: 360},
		{RouteType: "charter", Price: 500},
	}

	ranked := RankByLegality(opts)

	wantScores := map[string]int{
		route.TypeDirect:        10,
		route.TypeNearbyAirport: 10,
		route.TypeMultiLegSplit: 7,
		route.TypeHiddenCity:    3,
		"charter":               5,
	}
	for _, r := range ranked {
		if r.LegalityScore != wantScores[r.Option.RouteType] {
			t.Errorf("%s score = %d, want %d", r.Option.RouteType, r.LegalityScore, wantScores[r.Option.RouteType])
		}
		if r.Risks == "" || r.Recommendation == "" {
			t.Errorf("%s missing risk annotation", r.Option.RouteType)
		}
	}

	if ranked[0].Option.RouteType != route.TypeHiddenCity || ranked[0].IsLegal {
		t.Errorf("cheapest ranked option = %+v", ranked[0])
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Option.Price > ranked[i].Option.Price {
			t.Errorf("ranking not sorted by price at index %d", i)
		}
	}
}
