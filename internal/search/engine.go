// Package search implements the alternative-routing search strategies:
// direct fares, hidden-city variants, nearby-airport combinations, and
// multi-leg splits through major hubs.
package search

import (
	"log/slog"
	"sort"
	"time"

	"github.com/blackwell-systems/farescout/internal/airports"
	"github.com/blackwell-systems/farescout/internal/pricing"
	"github.com/blackwell-systems/farescout/internal/route"
)

const (
	maxNearbyOptions   = 5
	maxMultiLegOptions = 3
	maxMergedOptions   = 10

	// Through-tickets past the real destination usually price below the
	// nonstop fare.
	hiddenCityDiscount = 0.85
)

// Engine runs the search strategies against the simulated fare source.
type Engine struct {
	table *airports.Table
	sim   *pricing.Simulator
	log   *slog.Logger
}

// NewEngine builds a search engine over the given airport table and
// simulator.
func NewEngine(table *airports.Table, sim *pricing.Simulator, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{table: table, sim: sim, log: log}
}

// Result is the merged output of a comprehensive search.
type Result struct {
	Direct         route.Option   `json:"direct_flight"`
	Cheapest       route.Option   `json:"cheapest_option"`
	AllOptions     []route.Option `json:"all_options"`
	PriceAnalysis  PriceAnalysis  `json:"price_analysis"`
	OptionsFound   int            `json:"total_options_found"`
	LegalityRanked []RankedOption `json:"legality_ranking"`
}

// PriceAnalysis summarizes the gap between the direct fare and the
// alternatives.
type PriceAnalysis struct {
	DirectPrice        float64            `json:"direct_price"`
	CheapestPrice      float64            `json:"cheapest_price"`
	SavingsAmount      float64            `json:"savings_amount"`
	SavingsPercentage  float64            `json:"savings_percentage"`
	CheapestRouteType  string             `json:"cheapest_route_type"`
	AverageByRouteType map[string]float64 `json:"average_by_route_type"`
	PriceRange         PriceRange         `json:"price_range"`
}

// PriceRange is the min/max over all merged options.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Direct simulates the nonstop fare for the request.
func (e *Engine) Direct(req route.Request) route.Option {
	price := e.sim.BasePrice(req.Origin, req.Destination, req.Departure)

	legs := []route.Leg{{
		Origin:      req.Origin,
		Destination: req.Destination,
		Departure:   req.Departure.Format(route.DateFormat),
		Airline:     "Sample Airline",
	}}
	ret := ""
	if req.Return != nil {
		legs = append(legs, route.Leg{
			Origin:      req.Destination,
			Destination: req.Origin,
			Departure:   req.Return.Format(route.DateFormat),
			Airline:     "Sample Airline",
		})
		price = pricing.Round2(price * 1.8)
		ret = req.Return.Format(route.DateFormat)
	}

	return route.Option{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Departure:    req.Departure.Format(route.DateFormat),
		Return:       ret,
		Price:        price,
		Currency:     "EUR",
		RouteType:    route.TypeDirect,
		Legs:         legs,
		Description:  e.table.FormatRoute(req.Origin, req.Destination),
		BookingLinks: route.BookingLinks(req.Origin, req.Destination, req.Departure, req.Return),
	}
}

// HiddenCity finds through-ticket variants past the destination that price
// below the supplied direct fare. The direct fare is simulated once per
// request and reused as the baseline, so every accepted variant is cheaper
// than the direct option reported alongside it.
func (e *Engine) HiddenCity(req route.Request, directPrice float64) []route.Option {
	var opts []route.Option
	for _, beyond := range airports.CitiesBeyond(req.Destination) {
		opt := e.layoverVariant(req.Origin, beyond, req.Destination, req.Departure)
		if opt.Price < directPrice {
			opts = append(opts, opt)
		}
	}
	e.log.Debug("hidden-city search complete",
		"destination", req.Destination, "accepted", len(opts))
	return opts
}

// layoverVariant simulates a through-ticket to finalDest where the traveler
// disembarks at the layover.
func (e *Engine) layoverVariant(origin, finalDest, layover string, departure time.Time) route.Option {
	price := pricing.Round2(e.sim.BasePrice(origin, finalDest, departure) * hiddenCityDiscount)
	dep := departure.Format(route.DateFormat)

	return route.Option{
		Origin:      origin,
		Destination: layover, // where the traveler actually gets off
		Departure:   dep,
		Price:       price,
		Currency:    "EUR",
		RouteType:   route.TypeHiddenCity,
		Legs: []route.Leg{
			{Origin: origin, Destination: layover, Departure: dep},
			{Origin: layover, Destination: finalDest, Departure: dep, Skipped: true,
				Note: "Ticketed leg that would not be flown"},
		},
		Description: e.table.FormatRoute(origin, layover),
	}
}

// NearbyAirports prices the cross product of nearby origin/destination
// airports, excluding the original pair, sorted ascending by price.
func (e *Engine) NearbyAirports(req route.Request) []route.Option {
	origins := append([]string{req.Origin}, airports.Nearby(req.Origin)...)
	dests := append([]string{req.Destination}, airports.Nearby(req.Destination)...)

	var opts []route.Option
	for _, o := range origins {
		for _, d := range dests {
			if o == req.Origin && d == req.Destination {
				continue
			}
			alt := req
			alt.Origin, alt.Destination = o, d
			opt := e.Direct(alt)
			opt.RouteType = route.TypeNearbyAirport
			opts = append(opts, opt)
		}
	}

	sortByPrice(opts)
	return opts
}

// MultiLeg prices separate tickets through each major hub: two legs one-way,
// four legs round-trip. Sorted ascending by total price.
func (e *Engine) MultiLeg(req route.Request) []route.Option {
	var opts []route.Option
	dep := req.Departure.Format(route.DateFormat)

	for _, hub := range airports.Hubs(req.Origin, req.Destination) {
		leg1 := e.sim.BasePrice(req.Origin, hub, req.Departure)
		leg2 := e.sim.BasePrice(hub, req.Destination, req.Departure)
		total := leg1 + leg2

		legs := []route.Leg{
			{Origin: req.Origin, Destination: hub, Departure: dep, Price: leg1, BookingType: "separate"},
			{Origin: hub, Destination: req.Destination, Departure: dep, Price: leg2, BookingType: "separate"},
		}

		ret := ""
		if req.Return != nil {
			retDate := req.Return.Format(route.DateFormat)
			leg3 := e.sim.BasePrice(req.Destination, hub, *req.Return)
			leg4 := e.sim.BasePrice(hub, req.Origin, *req.Return)
			total += leg3 + leg4
			legs = append(legs,
				route.Leg{Origin: req.Destination, Destination: hub, Departure: retDate, Price: leg3, BookingType: "separate"},
				route.Leg{Origin: hub, Destination: req.Origin, Departure: retDate, Price: leg4, BookingType: "separate"},
			)
			ret = retDate
		}

		opts = append(opts, route.Option{
			Origin:      req.Origin,
			Destination: req.Destination,
			Departure:   dep,
			Return:      ret,
			Price:       pricing.Round2(total),
			Currency:    "EUR",
			RouteType:   route.TypeMultiLegSplit,
			Legs:        legs,
			Description: e.table.FormatRoute(req.Origin, req.Destination),
		})
	}

	sortByPrice(opts)
	return opts
}

// Comprehensive runs every strategy and merges the results: direct +
// hidden-city + top-5 nearby + top-3 multi-leg, sorted by price, with a
// price-gap summary. With no configured alternatives for the pair, the
// result degenerates to the direct option alone.
func (e *Engine) Comprehensive(req route.Request) Result {
	e.log.Info("starting comprehensive search",
		"origin", req.Origin, "destination", req.Destination)

	direct := e.Direct(req)
	all := []route.Option{direct}

	all = append(all, e.HiddenCity(req, direct.Price)...)

	nearby := e.NearbyAirports(req)
	all = append(all, head(nearby, maxNearbyOptions)...)

	multi := e.MultiLeg(req)
	all = append(all, head(multi, maxMultiLegOptions)...)

	sortByPrice(all)

	return Result{
		Direct:         direct,
		Cheapest:       all[0],
		AllOptions:     head(all, maxMergedOptions),
		PriceAnalysis:  analyzePriceGaps(all, direct.Price),
		OptionsFound:   len(all),
		LegalityRanked: RankByLegality(all),
	}
}

func analyzePriceGaps(opts []route.Option, directPrice float64) PriceAnalysis {
	if len(opts) == 0 {
		return PriceAnalysis{}
	}

	cheapest := opts[0]
	diff := route.ComparePrices(cheapest.Price, directPrice)

	byType := make(map[string][]float64)
	for _, o := range opts {
		byType[o.RouteType] = append(byType[o.RouteType], o.Price)
	}
	avgByType := make(map[string]float64, len(byType))
	for rt, prices := range byType {
		sum := 0.0
		for _, p := range prices {
			sum += p
		}
		avgByType[rt] = pricing.Round2(sum / float64(len(prices)))
	}

	return PriceAnalysis{
		DirectPrice:        directPrice,
		CheapestPrice:      cheapest.Price,
		SavingsAmount:      pricing.Round2(abs(diff.Absolute)),
		SavingsPercentage:  pricing.Round2(abs(diff.Percentage)),
		CheapestRouteType:  cheapest.RouteType,
		AverageByRouteType: avgByType,
		PriceRange:         PriceRange{Min: opts[0].Price, Max: opts[len(opts)-1].Price},
	}
}

func sortByPrice(opts []route.Option) {
	sort.SliceStable(opts, func(i, j int) bool { return opts[i].Price < opts[j].Price })
}

func head(opts []route.Option, n int) []route.Option {
	if len(opts) > n {
		return opts[:n]
	}
	return opts
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
