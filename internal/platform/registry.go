// Package platform compares fares across booking platforms: direct airline
// sites, major OTAs, regional sites, and meta-search engines, including fee
// structures and value scoring.
package platform

import "github.com/blackwell-systems/farescout/internal/pricing"

// Platform types.
const (
	TypeAirline    = "airline"
	TypeMajorOTA   = "major_ota"
	TypeRegional   = "regional"
	TypeMetaSearch = "meta_search"
)

// Platform describes a booking platform's fee structure and reputation.
type Platform struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	BaseFee          float64  `json:"base_fee"`
	PercentageMarkup float64  `json:"percentage_markup"`
	HiddenFees       []string `json:"hidden_fees"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	// ReliabilityScore is 1-10, higher is better.
	ReliabilityScore int `json:"reliability_score"`
}

// TotalPrice applies the platform's markup and booking fee to a base fare.
func (p Platform) TotalPrice(basePrice float64) float64 {
	return pricing.Round2(basePrice*(1+p.PercentageMarkup/100) + p.BaseFee)
}

// registry holds the known booking platforms, keyed by identifier.
var registry = map[string]Platform{
	"lufthansa_direct": {
		Name: "Lufthansa Direct", Type: TypeAirline,
		HiddenFees:       []string{"Seat selection fee", "Baggage fee"},
		Pros:             []string{"No booking fees", "Direct customer service", "Loyalty points", "Flexible cancellation"},
		Cons:             []string{"May not show cheapest options", "Limited price comparison"},
		ReliabilityScore: 10,
	},
	"ryanair_direct": {
		Name: "Ryanair Direct", Type: TypeAirline,
		HiddenFees:       []string{"Card payment fee", "Priority boarding", "Baggage fee", "Seat selection"},
		Pros:             []string{"Often lowest base fare", "Direct booking"},
		Cons:             []string{"Many hidden fees", "Strict policies"},
		ReliabilityScore: 9,
	},
	"expedia": {
		Name: "Expedia", Type: TypeMajorOTA,
		BaseFee: 12.99, PercentageMarkup: 2.5,
		HiddenFees:       []string{"Service fee"},
		Pros:             []string{"Package deals", "Rewards program", "Good customer service"},
		Cons:             []string{"Service fees", "Markup on base fare"},
		ReliabilityScore: 9,
	},
	"booking_com": {
		Name: "Booking.com", Type: TypeMajorOTA,
		PercentageMarkup: 3.0,
		HiddenFees:       []string{"Sometimes higher base prices"},
		Pros:             []string{"No visible fees", "Easy cancellation"},
		Cons:             []string{"Markup built into price", "Limited flight inventory"},
		ReliabilityScore: 8,
	},
	"kayak": {
		Name: "Kayak", Type: TypeMetaSearch,
		Pros:             []string{"Price comparison", "No fees (redirects to booking site)", "Price alerts"},
		Cons:             []string{"Redirects to other sites", "Prices may differ on final site"},
		ReliabilityScore: 9,
	},
	"skyscanner": {
		Name: "Skyscanner", Type: TypeMetaSearch,
		Pros:             []string{"Best for comparison", "Whole month view", "Flexible dates"},
		Cons:             []string{"Redirects to other sites", "Some partners unreliable"},
		ReliabilityScore: 8,
	},
	"google_flights": {
		Name: "Google Flights", Type: TypeMetaSearch,
		Pros:             []string{"Fast", "Accurate", "Great UI", "Price tracking"},
		Cons:             []string{"Redirects to other sites", "Limited to partner airlines"},
		ReliabilityScore: 10,
	},
	"momondo": {
		Name: "Momondo", Type: TypeMetaSearch,
		Pros:             []string{"Often finds cheapest options", "Good for flexible dates"},
		Cons:             []string{"Can show outdated prices", "Some sketchy partners"},
		ReliabilityScore: 7,
	},
	"opodo": {
		Name: "Opodo", Type: TypeRegional,
		BaseFee: 8.99, PercentageMarkup: 1.5,
		HiddenFees:       []string{"Service fee", "Prime membership push"},
		Pros:             []string{"European focus", "Multi-city options"},
		Cons:             []string{"Service fees", "Aggressive upselling"},
		ReliabilityScore: 6,
	},
	"edreams": {
		Name: "eDreams", Type: TypeRegional,
		BaseFee: 9.99, PercentageMarkup: 2.0,
		HiddenFees:       []string{"Service fee", "Prime membership"},
		Pros:             []string{"European inventory", "Package deals"},
		Cons:             []string{"High fees", "Poor customer service reputation"},
		ReliabilityScore: 5,
	},
	"kiwi_com": {
		Name: "Kiwi.com", Type: TypeRegional,
		PercentageMarkup: 1.0,
		HiddenFees:       []string{"Guarantee fee"},
		Pros:             []string{"Virtual interlining", "Creative routing"},
		Cons:             []string{"Self-transfer risks", "Limited support if things go wrong"},
		ReliabilityScore: 6,
	},
	"lastminute_com": {
		Name: "Lastminute.com", Type: TypeRegional,
		BaseFee: 6.99, PercentageMarkup: 1.5,
		HiddenFees:       []string{"Service fee"},
		Pros:             []string{"Good for last-minute deals", "Package options"},
		Cons:             []string{"Fees", "Not always cheapest"},
		ReliabilityScore: 7,
	},
}

// Lookup returns the platform for a registry key.
func Lookup(key string) (Platform, bool) {
	p, ok := registry[key]
	return p, ok
}

// Keys returns every registry key.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	return keys
}
