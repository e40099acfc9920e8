package report

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/farescout/internal/geo"
	"github.com/blackwell-systems/farescout/internal/historical"
	"github.com/blackwell-systems/farescout/internal/platform"
	"github.com/blackwell-systems/farescout/internal/route"
	"github.com/blackwell-systems/farescout/internal/search"
)

func TestCheapestOption(t *testing.T) {
	if got := CheapestOption(&Report{}); got != nil {
		t.Errorf("recommendation without a search section: %v", got)
	}

	r := &Report{AdvancedSearch: &search.Result{
		Cheapest: route.Option{RouteType: route.TypeHiddenCity, Price: 133.87},
	}}
	got := CheapestOption(r)
	if len(got) != 1 {
		t.Fatalf("recommendations = %v", got)
	}
	if !strings.Contains(got[0], "hidden_city") || !strings.Contains(got[0], "€133.87") {
		t.Errorf("recommendation = %q", got[0])
	}
}

func TestGeoOpportunity(t *testing.T) {
	if got := GeoOpportunity(&Report{}); got != nil {
		t.Errorf("recommendation without a geo section: %v", got)
	}

	// Savings at or below the floor are not worth surfacing.
	small := &Report{GeoPricing: &geo.MarketAnalysis{MaxSavings: 30}}
	if got := GeoOpportunity(small); got != nil {
		t.Errorf("recommendation for %v savings: %v", small.GeoPricing.MaxSavings, got)
	}

	big := &Report{GeoPricing: &geo.MarketAnalysis{
		MaxSavings:     85.50,
		CheapestMarket: geo.MarketQuote{CountryName: "India"},
	}}
	got := GeoOpportunity(big)
	if len(got) != 1 || !strings.Contains(got[0], "India") || !strings.Contains(got[0], "€85.50") {
		t.Errorf("recommendation = %v", got)
	}
}

func TestBookingTiming(t *testing.T) {
	if got := BookingTiming(&Report{}); got != nil {
		t.Errorf("recommendation without historical analysis: %v", got)
	}

	optimal := &Report{HistoricalAnalysis: &historical.Comprehensive{
		WindowAnalysis: historical.WindowAnalysis{CurrentlyOptimal: true},
	}}
	got := BookingTiming(optimal)
	if len(got) != 1 || !strings.Contains(got[0], "optimal booking window") {
		t.Errorf("recommendation = %v", got)
	}

	off := &Report{HistoricalAnalysis: &historical.Comprehensive{
		WindowAnalysis: historical.WindowAnalysis{Recommendation: "BOOK ASAP - Prices typically rise"},
	}}
	got = BookingTiming(off)
	if len(got) != 1 || !strings.Contains(got[0], "BOOK ASAP") {
		t.Errorf("recommendation = %v", got)
	}
}

func TestPlatformPick(t *testing.T) {
	if got := PlatformPick(&Report{}); got != nil {
		t.Errorf("recommendation without platform comparison: %v", got)
	}

	r := &Report{PlatformComparison: &platform.Comparison{
		CheapestOverall: platform.Quote{Platform: "Kayak"},
	}}
	got := PlatformPick(r)
	if len(got) != 1 || !strings.Contains(got[0], "Kayak") {
		t.Errorf("recommendation = %v", got)
	}
}

func TestUnconditionalRules(t *testing.T) {
	empty := &Report{}
	if len(InflationReminder(empty)) != 1 {
		t.Error("inflation reminder should always fire")
	}
	if len(TrackingReminder(empty)) != 1 {
		t.Error("tracking reminder should always fire")
	}
}

func TestEngineRun_Order(t *testing.T) {
	// On an empty report only the unconditional rules fire, in
	// registration order.
	got := NewEngine().Run(&Report{})
	if len(got) != 2 {
		t.Fatalf("recommendations = %v", got)
	}
	if !strings.Contains(got[0], "IMPORTANT") || !strings.Contains(got[1], "TRACKING") {
		t.Errorf("order = %v", got)
	}
}
