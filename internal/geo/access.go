package geo

import "fmt"

// AccessMethod describes one way of reaching another country's fares,
// including its legal standing and practical risks.
type AccessMethod struct {
	Method      string   `json:"method"`
	Legality    string   `json:"legality"`
	Description string   `json:"description"`
	Risks       []string `json:"risks"`
	Tips        []string `json:"tips"`
}

// AccessGuide lists the access methods for a target market with standing
// warnings and a country-specific recommendation.
type AccessGuide struct {
	TargetCountry       string         `json:"target_country"`
	Methods             []AccessMethod `json:"methods"`
	Warnings            []string       `json:"warnings"`
	RecommendedApproach string         `json:"recommended_approach"`
}

// PricingFactor is one reason two markets price the same fare differently.
type PricingFactor struct {
	Factor      string `json:"factor"`
	Impact      string `json:"impact"`
	Explanation string `json:"explanation"`
}

// CountryRef names a country in an explanation.
type CountryRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Explanation breaks down why fares differ between two booking countries.
type Explanation struct {
	Country1             CountryRef      `json:"country1"`
	Country2             CountryRef      `json:"country2"`
	Reasons              []PricingFactor `json:"reasons"`
	DifferenceMultiplier float64         `json:"price_difference_multiplier"`
}

var accessMethods = []AccessMethod{
	{
		Method:      "VPN Service",
		Legality:    "Gray Area",
		Description: "Use VPN to appear to browse from target country",
		Risks: []string{
			"May violate airline Terms of Service",
			"Booking might be cancelled if detected",
			"Payment card address might not match",
		},
		Tips: []string{
			"Clear cookies before connecting to VPN",
			"Use incognito/private browsing",
			"Consider using local payment method if possible",
		},
	},
	{
		Method:      "Local Travel Agency",
		Legality:    "Fully Legal",
		Description: "Contact travel agency in target country to book",
		Risks:       []string{"Service fees may offset savings"},
		Tips: []string{
			"Find agencies that serve international clients",
			"Ask for quote before committing",
			"Ensure they provide proper documentation",
		},
	},
	{
		Method:      "Local Credit Card",
		Legality:    "Fully Legal",
		Description: "Use credit card issued in target country",
		Risks:       []string{"Need to have legitimate card from that country"},
		Tips: []string{
			"Some international banks issue cards in multiple countries",
			"Transferwise/Revolut cards may help",
		},
	},
	{
		Method:      "Book While Physically Present",
		Legality:    "Fully Legal",
		Description: "Book while actually in the target country",
		Risks:       []string{"Need to travel there first"},
		Tips: []string{
			"Good for future bookings if you visit frequently",
			"Use local SIM card for extra authenticity",
		},
	},
	{
		Method:      "Multi-Currency Booking Sites",
		Legality:    "Fully Legal",
		Description: "Use OTAs that allow currency/region selection",
		Risks:       []string{"Limited options, may have fees"},
		Tips: []string{
			"Compare prices in different currencies",
			"Check if card charges foreign transaction fees",
		},
	},
}

var accessWarnings = []string{
	"Always read airline Terms of Service",
	"Misrepresenting your location may lead to booking cancellation",
	"Ensure payment card billing address matches",
	"Some countries have laws against VPN usage",
	"Consider tax implications of international bookings",
}

// LegalAccessMethods outlines the ways to book from the target country's
// market. Educational only; travelers must follow airline terms and local law.
func LegalAccessMethods(targetCountry string) *AccessGuide {
	return &AccessGuide{
		TargetCountry:       CountryName(targetCountry),
		Methods:             accessMethods,
		Warnings:            accessWarnings,
		RecommendedApproach: recommendedApproach(targetCountry),
	}
}

func recommendedApproach(country string) string {
	switch country {
	case "PL", "ES", "IT":
		return "These are EU countries. Consider using a local EU travel agency or booking while visiting."
	case "TR", "IN", "TH":
		return "Significant savings possible, but consider using reputable local travel agency rather than VPN."
	default:
		return "Evaluate if savings justify the complexity. Local travel agency is safest approach."
	}
}

// ExplainDifference breaks down why two booking countries quote the same
// fare at different prices.
func ExplainDifference(country1, country2 string) Explanation {
	var reasons []PricingFactor

	mult1, ok1 := regionalMultipliers[country1]
	if !ok1 {
		mult1 = 1.0
	}
	mult2, ok2 := regionalMultipliers[country2]
	if !ok2 {
		mult2 = 1.0
	}

	if mult1 != mult2 {
		lower := mult1
		if mult2 < lower {
			lower = mult2
		}
		diffPct := abs(mult1-mult2) / lower * 100
		reasons = append(reasons, PricingFactor{
			Factor:      "Regional Market Pricing",
			Impact:      fmt.Sprintf("%.1f%% difference", diffPct),
			Explanation: "Airlines price differently based on local market conditions, competition, and purchasing power.",
		})
	}

	curr1 := CountryCurrency(country1)
	curr2 := CountryCurrency(country2)
	if curr1 != curr2 {
		reasons = append(reasons, PricingFactor{
			Factor:      "Currency Pricing Strategy",
			Impact:      "Variable",
			Explanation: fmt.Sprintf("Prices in %s vs %s may be rounded differently and have currency-specific adjustments.", curr1, curr2),
		})
	}

	reasons = append(reasons,
		PricingFactor{
			Factor:      "Local Competition",
			Impact:      "High",
			Explanation: "Markets with more competition (like Poland, Spain) often have lower prices.",
		},
		PricingFactor{
			Factor:      "Purchasing Power",
			Impact:      "Medium",
			Explanation: "Airlines adjust prices based on average income levels in each country.",
		},
		PricingFactor{
			Factor:      "Local Taxes & Fees",
			Impact:      "Medium",
			Explanation: "Different countries have different aviation taxes and airport fees.",
		},
		PricingFactor{
			Factor:      "Point of Sale Rules",
			Impact:      "Medium",
			Explanation: "Airlines segment markets and apply different pricing rules per region.",
		},
	)

	return Explanation{
		Country1:             CountryRef{Code: country1, Name: CountryName(country1)},
		Country2:             CountryRef{Code: country2, Name: CountryName(country2)},
		Reasons:              reasons,
		DifferenceMultiplier: abs(mult1 - mult2),
	}
}
