package platform

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/blackwell-systems/farescout/internal/pricing"
)

// Comparator prices a fare across booking platforms using the shared
// random source for per-platform variation.
type Comparator struct {
	src pricing.Source
	log *slog.Logger
}

// NewComparator builds a comparator over the given random source.
func NewComparator(src pricing.Source, log *slog.Logger) *Comparator {
	if log == nil {
		log = slog.Default()
	}
	return &Comparator{src: src, log: log}
}

// Quote is the priced offer of one platform for the fare.
type Quote struct {
	Platform         string   `json:"platform"`
	Type             string   `json:"type"`
	BasePrice        float64  `json:"base_price"`
	Fees             float64  `json:"fees"`
	MarkupPercentage float64  `json:"markup_percentage"`
	TotalPrice       float64  `json:"total_price"`
	HiddenFees       []string `json:"hidden_fees"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	ReliabilityScore int      `json:"reliability_score"`
	ValueScore       float64  `json:"value_score"`
}

// TypeGroup collects the quotes of one platform type with its cheapest.
type TypeGroup struct {
	Platforms []Quote `json:"platforms"`
	Cheapest  Quote   `json:"cheapest"`
}

// FeeAnalysis summarizes booking fees across the compared platforms.
type FeeAnalysis struct {
	PlatformsWithFees  int      `json:"platforms_with_fees"`
	TotalFeesAcrossAll float64  `json:"total_fees_across_all"`
	AverageFee         float64  `json:"average_fee"`
	HighestFeePlatform string   `json:"highest_fee_platform"`
	FeeFreePlatforms   []string `json:"fee_free_platforms"`
	Recommendation     string   `json:"recommendation"`
}

// Comparison is the full platform comparison for a fare.
type Comparison struct {
	AllPlatforms    []Quote              `json:"all_platforms"`
	CheapestOverall Quote                `json:"cheapest_overall"`
	MostExpensive   Quote                `json:"most_expensive"`
	PriceDifference float64              `json:"price_difference"`
	ByPlatformType  map[string]TypeGroup `json:"by_platform_type"`
	Recommendations []string             `json:"recommendations"`
	FeeAnalysis     FeeAnalysis          `json:"fee_analysis"`
}

// Compare prices the fare on the named platforms, or all of them when keys
// is empty, sorted ascending by total price. Unknown keys are dropped; a
// filter with no known platform falls back to the full registry.
func (c *Comparator) Compare(basePrice float64, origin, destination string, keys []string) Comparison {
	c.log.Info("comparing booking platforms",
		"origin", origin, "destination", destination, "base_price", basePrice)

	known := lo.Filter(keys, func(key string, _ int) bool {
		_, ok := Lookup(key)
		return ok
	})
	if len(known) == 0 {
		if len(keys) > 0 {
			c.log.Warn("no known platforms in filter, comparing all", "keys", keys)
		}
		known = Keys()
	}
	sort.Strings(known)

	quotes := make([]Quote, 0, len(known))
	for _, key := range known {
		p, _ := Lookup(key)

		base := c.platformBase(basePrice, p)
		total := p.TotalPrice(base)

		quotes = append(quotes, Quote{
			Platform:         p.Name,
			Type:             p.Type,
			BasePrice:        base,
			Fees:             p.BaseFee,
			MarkupPercentage: p.PercentageMarkup,
			TotalPrice:       total,
			HiddenFees:       p.HiddenFees,
			Pros:             p.Pros,
			Cons:             p.Cons,
			ReliabilityScore: p.ReliabilityScore,
			ValueScore:       ValueScore(total, p.ReliabilityScore),
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].TotalPrice < quotes[j].TotalPrice })

	cheapest := quotes[0]
	dearest := quotes[len(quotes)-1]

	return Comparison{
		AllPlatforms:    quotes,
		CheapestOverall: cheapest,
		MostExpensive:   dearest,
		PriceDifference: pricing.Round2(dearest.TotalPrice - cheapest.TotalPrice),
		ByPlatformType:  groupByType(quotes),
		Recommendations: recommendations(quotes),
		FeeAnalysis:     analyzeFees(quotes),
	}
}

// platformBase simulates the base fare each platform would show. Meta-search
// engines pass prices through; the others vary with their contracts.
func (c *Comparator) platformBase(basePrice float64, p Platform) float64 {
	uniform := func(lo, hi float64) float64 {
		return lo + c.src.Float64()*(hi-lo)
	}

	switch p.Type {
	case TypeMetaSearch:
		return pricing.Round2(basePrice)
	case TypeAirline:
		return pricing.Round2(basePrice * uniform(0.95, 1.05))
	case TypeMajorOTA:
		return pricing.Round2(basePrice * uniform(0.98, 1.08))
	default:
		return pricing.Round2(basePrice * uniform(0.95, 1.12))
	}
}

// ValueScore combines price and reliability into a 1-10 score, weighted
// 60% price and 40% reliability. The price component is centered on a
// 400 EUR reference fare and clamped to [1, 10].
func ValueScore(totalPrice float64, reliability int) float64 {
	priceScore := 10 - (totalPrice-400)/50
	if priceScore < 1 {
		priceScore = 1
	}
	if priceScore > 10 {
		priceScore = 10
	}
	score := priceScore*0.6 + float64(reliability)*0.4
	return math.Round(score*10) / 10
}

func groupByType(quotes []Quote) map[string]TypeGroup {
	grouped := lo.GroupBy(quotes, func(q Quote) string { return q.Type })

	byType := make(map[string]TypeGroup, len(grouped))
	for ptype, qs := range grouped {
		cheapest := lo.MinBy(qs, func(a, b Quote) bool { return a.TotalPrice < b.TotalPrice })
		byType[ptype] = TypeGroup{Platforms: qs, Cheapest: cheapest}
	}
	return byType
}

func recommendations(quotes []Quote) []string {
	cheapest := quotes[0]
	mostReliable := lo.MaxBy(quotes, func(a, b Quote) bool { return a.ReliabilityScore > b.ReliabilityScore })
	bestValue := lo.MaxBy(quotes, func(a, b Quote) bool { return a.ValueScore > b.ValueScore })

	recs := []string{
		fmt.Sprintf("💰 Cheapest: %s at €%.2f", cheapest.Platform, cheapest.TotalPrice),
		fmt.Sprintf("⭐ Most Reliable: %s (score: %d/10)", mostReliable.Platform, mostReliable.ReliabilityScore),
		fmt.Sprintf("🎯 Best Value: %s (value score: %.1f/10)", bestValue.Platform, bestValue.ValueScore),
	}

	priceRange := quotes[len(quotes)-1].TotalPrice - cheapest.TotalPrice
	if priceRange > 50 {
		recs = append(recs, fmt.Sprintf("⚠️ Price range is €%.2f - shop around!", priceRange))
	}

	meta := lo.Filter(quotes, func(q Quote, _ int) bool { return q.Type == TypeMetaSearch })
	if len(meta) > 0 {
		recs = append(recs, fmt.Sprintf("💡 Use %s to compare, then book direct to avoid fees", meta[0].Platform))
	}

	return recs
}

func analyzeFees(quotes []Quote) FeeAnalysis {
	totalFees := lo.SumBy(quotes, func(q Quote) float64 { return q.Fees })
	withFees := lo.Filter(quotes, func(q Quote, _ int) bool { return q.Fees > 0 })
	feeFree := lo.FilterMap(quotes, func(q Quote, _ int) (string, bool) { return q.Platform, q.Fees == 0 })
	highest := lo.MaxBy(quotes, func(a, b Quote) bool { return a.Fees > b.Fees })

	return FeeAnalysis{
		PlatformsWithFees:  len(withFees),
		TotalFeesAcrossAll: pricing.Round2(totalFees),
		AverageFee:         pricing.Round2(totalFees / float64(len(quotes))),
		HighestFeePlatform: highest.Platform,
		FeeFreePlatforms:   feeFree,
		Recommendation:     "Use fee-free meta-search, then book direct with airline",
	}
}
