package report

import (
	"log/slog"

	"github.com/blackwell-systems/farescout/internal/airports"
	"github.com/blackwell-systems/farescout/internal/config"
	"github.com/blackwell-systems/farescout/internal/fares"
	"github.com/blackwell-systems/farescout/internal/geo"
	"github.com/blackwell-systems/farescout/internal/historical"
	"github.com/blackwell-systems/farescout/internal/inflation"
	"github.com/blackwell-systems/farescout/internal/platform"
	"github.com/blackwell-systems/farescout/internal/route"
	"github.com/blackwell-systems/farescout/internal/search"
	"github.com/blackwell-systems/farescout/internal/tracking"
)

// fallbackBasePrice stands in for the direct fare when the search analyzer
// is disabled and downstream analyzers still need a reference price.
const fallbackBasePrice = 450.0

// Pipeline runs the analyzers in a fixed order and assembles the report.
type Pipeline struct {
	cfg        *config.Config
	table      *airports.Table
	engine     *search.Engine
	historical *historical.Analyzer
	comparator *platform.Comparator
	planner    *tracking.Planner
	log        *slog.Logger
}

// NewPipeline wires the analyzers into a pipeline.
func NewPipeline(
	cfg *config.Config,
	table *airports.Table,
	engine *search.Engine,
	hist *historical.Analyzer,
	comparator *platform.Comparator,
	planner *tracking.Planner,
	log *slog.Logger,
) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		cfg:        cfg,
		table:      table,
		engine:     engine,
		historical: hist,
		comparator: comparator,
		planner:    planner,
		log:        log,
	}
}

// Run executes the enabled analyzers in order: routing search, inflation,
// geo-pricing, historical patterns, fare rules, platform comparison, and
// tracking strategy. Analyzers are independent; disabling one never blocks
// another.
func (p *Pipeline) Run(req route.Request) *Report {
	p.log.Info("starting comprehensive analysis",
		"origin", req.Origin, "destination", req.Destination,
		"departure", req.Departure.Format(route.DateFormat))

	r := &Report{
		RouteInfo: RouteInfo{
			Origin:           req.Origin,
			Destination:      req.Destination,
			DepartureDate:    req.Departure.Format(route.DateFormat),
			TargetPrice:      req.TargetPrice,
			RouteDescription: p.table.FormatRoute(req.Origin, req.Destination),
		},
	}
	if req.Return != nil {
		r.RouteInfo.ReturnDate = req.Return.Format(route.DateFormat)
	}

	basePrice := fallbackBasePrice

	if p.cfg.ModuleEnabled("search") {
		p.log.Info("📍 [1/7] analyzing hidden city tickets and alternative routing")
		result := p.engine.Comprehensive(req)
		r.AdvancedSearch = &result
		basePrice = result.Direct.Price
	}

	if p.cfg.ModuleEnabled("inflation") {
		p.log.Info("🛡️ [2/7] analyzing price inflation triggers and avoidance")
		r.PriceInflation = &InflationSection{
			TrackingMethods:   inflation.AnalyzeTrackingMethods(),
			Triggers:          inflation.InflationTriggers(),
			AvoidanceStrategy: inflation.Avoidance(),
			SearchProtocol:    inflation.SearchProtocol(req.Origin, req.Destination, req.Departure, 1),
		}
	}

	if p.cfg.ModuleEnabled("geo_pricing") {
		p.log.Info("🌍 [3/7] simulating geo-pricing across countries")
		markets := geo.FindCheapestMarket(basePrice, p.cfg.Currency)
		markets.AccessMethods = geo.LegalAccessMethods(markets.CheapestMarket.Country)
		r.GeoPricing = &markets
	}

	if p.cfg.ModuleEnabled("historical") {
		p.log.Info("📊 [4/7] analyzing historical pricing patterns")
		hist := p.historical.Analyze(req)
		r.HistoricalAnalysis = &hist
	}

	if p.cfg.ModuleEnabled("fare_rules") {
		p.log.Info("📋 [5/7] analyzing fare rules and ticket classes")
		rules := fares.Analyze()
		r.FareRules = &rules
	}

	if p.cfg.ModuleEnabled("platform_compare") {
		p.log.Info("💰 [6/7] comparing booking platforms")
		cmp := p.comparator.Compare(basePrice, req.Origin, req.Destination, nil)
		r.PlatformComparison = &cmp
	}

	if p.cfg.ModuleEnabled("fare_tracking") {
		p.log.Info("🔔 [7/7] creating fare tracking strategy")
		strategy := p.planner.CreateStrategy(req, tracking.DefaultFlexibilityDays)
		r.TrackingStrategy = &strategy
		example := p.planner.PracticalExample(req.Origin, req.Destination, strategy.DaysUntilDeparture)
		r.TrackingExample = &example
	}

	r.FinalRecommendations = NewEngine().Run(r)

	p.log.Info("analysis complete")
	return r
}
