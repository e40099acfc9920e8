// Package geo simulates how the same fare is priced across regional markets
// and identifies the cheapest country to book from.
package geo

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/blackwell-systems/farescout/internal/currency"
	"github.com/blackwell-systems/farescout/internal/pricing"
)

// Savings thresholds (EUR) for the qualitative recommendation.
const (
	moderateSavingsEUR    = 20.0
	significantSavingsEUR = 50.0
)

// regionalMultipliers scale the baseline fare per booking country,
// relative to the German market.
var regionalMultipliers = map[string]float64{
	"DE": 1.0,
	"FR": 1.02,
	"GB": 1.15,
	"US": 1.12,
	"CH": 1.25,
	"ES": 0.92,
	"IT": 0.95,
	"NL": 1.05,
	"PL": 0.85,
	"TR": 0.80,
	"IN": 0.75,
	"TH": 0.82,
	"AE": 1.10,
	"SG": 1.08,
	"AU": 1.18,
	"BR": 0.88,
	"MX": 0.83,
	"AR": 0.79,
}

// currencyAdjustments capture currency-specific rounding and pricing habits.
var currencyAdjustments = map[string]float64{
	"EUR": 1.0,
	"USD": 0.98,
	"GBP": 1.02,
	"CHF": 1.01,
	"PLN": 0.96,
	"TRY": 0.93,
	"INR": 0.94,
	"THB": 0.95,
	"AED": 1.01,
	"AUD": 1.00,
}

var countryCurrencies = map[string]string{
	"DE": "EUR", "FR": "EUR", "IT": "EUR", "ES": "EUR", "NL": "EUR",
	"GB": "GBP", "US": "USD", "CH": "CHF", "PL": "PLN", "TR": "TRY",
	"IN": "INR", "TH": "THB", "AE": "AED", "SG": "USD", "AU": "AUD",
	"BR": "USD", "MX": "USD", "AR": "USD",
}

var countryNames = map[string]string{
	"DE": "Germany", "FR": "France", "GB": "United Kingdom",
	"US": "United States", "CH": "Switzerland", "ES": "Spain",
	"IT": "Italy", "NL": "Netherlands", "PL": "Poland",
	"TR": "Turkey", "IN": "India", "TH": "Thailand",
	"AE": "UAE", "SG": "Singapore", "AU": "Australia",
	"BR": "Brazil", "MX": "Mexico", "AR": "Argentina",
}

// vpnWorthwhile lists countries where the geo-pricing gap is typically large
// enough that market access matters.
var vpnWorthwhile = map[string]bool{
	"PL": true, "TR": true, "IN": true, "TH": true,
	"AR": true, "MX": true, "BR": true,
}

// MarketQuote is the simulated price of the fare in one booking country.
type MarketQuote struct {
	Country           string  `json:"country"`
	CountryName       string  `json:"country_name"`
	Currency          string  `json:"currency"`
	PriceLocal        float64 `json:"price_local"`
	PriceEUR          float64 `json:"price_eur"`
	PriceFormatted    string  `json:"price_formatted"`
	Multiplier        float64 `json:"multiplier"`
	VPNRecommended    bool    `json:"vpn_recommended"`
	SavingsVsBaseline float64 `json:"savings_vs_baseline"`
	SavingsPercentage float64 `json:"savings_percentage"`
}

// MarketAnalysis is the full geo-pricing result for a request.
type MarketAnalysis struct {
	CheapestMarket      MarketQuote   `json:"cheapest_market"`
	MostExpensiveMarket MarketQuote   `json:"most_expensive_market"`
	AllMarkets          []MarketQuote `json:"all_markets"`
	MaxSavings          float64       `json:"max_savings"`
	MaxSavingsPercent   float64       `json:"max_savings_percentage"`
	Recommendation      string        `json:"recommendation"`
	PriceSpread         PriceSpread   `json:"price_spread"`
	AccessMethods       *AccessGuide  `json:"access_methods,omitempty"`
}

// PriceSpread is the min/max/average over all market quotes in EUR.
type PriceSpread struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// CountryName resolves a country code to its display name, falling back to
// the code itself.
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}

// CountryCurrency resolves a country to its booking currency, defaulting
// to EUR for unknown countries.
func CountryCurrency(code string) string {
	if cur, ok := countryCurrencies[code]; ok {
		return cur
	}
	return "EUR"
}

// SimulateMarkets prices the fare in every configured booking country,
// sorted ascending by EUR-equivalent price.
func SimulateMarkets(basePrice float64, baseCurrency string) []MarketQuote {
	quotes := make([]MarketQuote, 0, len(regionalMultipliers))

	for country, mult := range regionalMultipliers {
		local := CountryCurrency(country)

		price := basePrice * mult
		if adj, ok := currencyAdjustments[local]; ok {
			price *= adj
		}

		priceLocal := currency.Convert(price, baseCurrency, local)
		priceEUR := currency.Convert(priceLocal, local, "EUR")

		quotes = append(quotes, MarketQuote{
			Country:           country,
			CountryName:       CountryName(country),
			Currency:          local,
			PriceLocal:        pricing.Round2(priceLocal),
			PriceEUR:          pricing.Round2(priceEUR),
			PriceFormatted:    currency.Format(priceLocal, local),
			Multiplier:        mult,
			VPNRecommended:    vpnWorthwhile[country],
			SavingsVsBaseline: pricing.Round2(basePrice - priceEUR),
			SavingsPercentage: pricing.Round2((basePrice - priceEUR) / basePrice * 100),
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].PriceEUR < quotes[j].PriceEUR })
	return quotes
}

// FindCheapestMarket runs the market simulation and summarizes the cheapest
// booking location, the spread, and a qualitative recommendation.
func FindCheapestMarket(basePrice float64, baseCurrency string) MarketAnalysis {
	quotes := SimulateMarkets(basePrice, baseCurrency)

	cheapest := quotes[0]
	dearest := quotes[len(quotes)-1]
	maxSavings := dearest.PriceEUR - cheapest.PriceEUR

	avg := lo.SumBy(quotes, func(q MarketQuote) float64 { return q.PriceEUR }) / float64(len(quotes))

	return MarketAnalysis{
		CheapestMarket:      cheapest,
		MostExpensiveMarket: dearest,
		AllMarkets:          quotes,
		MaxSavings:          pricing.Round2(maxSavings),
		MaxSavingsPercent:   pricing.Round2(maxSavings / dearest.PriceEUR * 100),
		Recommendation:      recommend(cheapest),
		PriceSpread: PriceSpread{
			Min:     cheapest.PriceEUR,
			Max:     dearest.PriceEUR,
			Average: pricing.Round2(avg),
		},
	}
}

func recommend(cheapest MarketQuote) string {
	savings := abs(cheapest.SavingsVsBaseline)
	pct := abs(cheapest.SavingsPercentage)

	switch {
	case savings < moderateSavingsEUR:
		return fmt.Sprintf("Price difference is minimal (€%.2f). Stick with your local market for simplicity.", savings)
	case savings < significantSavingsEUR:
		return fmt.Sprintf("Moderate savings possible (€%.2f, %.1f%%). Consider if you have legal access to the %s market.",
			savings, pct, cheapest.CountryName)
	default:
		return fmt.Sprintf("Significant savings (€%.2f, %.1f%%)! Worth exploring legal methods to book from %s.",
			savings, pct, cheapest.CountryName)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
