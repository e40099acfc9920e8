// Package report coordinates the analyzer pipeline and assembles the final
// advisory report.
package report

import (
	"github.com/blackwell-systems/farescout/internal/fares"
	"github.com/blackwell-systems/farescout/internal/geo"
	"github.com/blackwell-systems/farescout/internal/historical"
	"github.com/blackwell-systems/farescout/internal/inflation"
	"github.com/blackwell-systems/farescout/internal/platform"
	"github.com/blackwell-systems/farescout/internal/search"
	"github.com/blackwell-systems/farescout/internal/tracking"
)

// RouteInfo identifies the analyzed trip.
type RouteInfo struct {
	Origin           string  `json:"origin"`
	Destination      string  `json:"destination"`
	DepartureDate    string  `json:"departure_date"`
	ReturnDate       string  `json:"return_date,omitempty"`
	TargetPrice      float64 `json:"target_price,omitempty"`
	RouteDescription string  `json:"route_description"`
}

// InflationSection bundles the anti-inflation analyses.
type InflationSection struct {
	TrackingMethods   inflation.TrackingAnalysis  `json:"tracking_methods"`
	Triggers          []inflation.Trigger         `json:"triggers"`
	AvoidanceStrategy inflation.AvoidanceStrategy `json:"avoidance_strategy"`
	SearchProtocol    inflation.Protocol          `json:"search_protocol"`
}

// Report is the complete advisory output of a full analysis run. Sections
// for disabled analyzers are nil and omitted from exports.
type Report struct {
	RouteInfo            RouteInfo                 `json:"route_info"`
	AdvancedSearch       *search.Result            `json:"advanced_search,omitempty"`
	PriceInflation       *InflationSection         `json:"price_inflation,omitempty"`
	GeoPricing           *geo.MarketAnalysis       `json:"geo_pricing,omitempty"`
	HistoricalAnalysis   *historical.Comprehensive `json:"historical_analysis,omitempty"`
	FareRules            *fares.Rules              `json:"fare_rules,omitempty"`
	PlatformComparison   *platform.Comparison      `json:"platform_comparison,omitempty"`
	TrackingStrategy     *tracking.Strategy        `json:"tracking_strategy,omitempty"`
	TrackingExample      *tracking.Example         `json:"tracking_example,omitempty"`
	FinalRecommendations []string                  `json:"final_recommendations"`
}
