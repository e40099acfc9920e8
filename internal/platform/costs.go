package platform

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is returned when a registry key does not exist.
var ErrUnknownPlatform = errors.New("unknown platform")

// VisibleFees are the fees a platform discloses upfront.
type VisibleFees struct {
	BookingFee       float64 `json:"booking_fee"`
	PercentageMarkup string  `json:"percentage_markup"`
}

// ExtraFee is a typical add-on cost by platform type.
type ExtraFee struct {
	Item        string `json:"item"`
	TypicalCost string `json:"typical_cost"`
}

// FeeBreakdown is the deep-dive cost analysis for one platform.
type FeeBreakdown struct {
	VisibleFees      VisibleFees `json:"visible_fees"`
	HiddenFees       []string    `json:"hidden_fees"`
	TypicalExtras    []ExtraFee  `json:"typical_extras"`
	TotalPotential   string      `json:"total_potential_fees"`
	FeeAvoidanceTips []string    `json:"fee_avoidance_tips"`
}

// HiddenCosts breaks down visible, hidden, and typical extra fees for a
// platform registry key.
func HiddenCosts(key string) (FeeBreakdown, error) {
	p, ok := Lookup(key)
	if !ok {
		return FeeBreakdown{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, key)
	}

	// Average add-on cost over a booking.
	const typicalExtras = 20.0

	return FeeBreakdown{
		VisibleFees: VisibleFees{
			BookingFee:       p.BaseFee,
			PercentageMarkup: fmt.Sprintf("%g%%", p.PercentageMarkup),
		},
		HiddenFees:    p.HiddenFees,
		TypicalExtras: typicalExtrasByType(p.Type),
		TotalPotential: fmt.Sprintf("€%.2f booking fee + ~€%.2f potential extras = ~€%.2f total fees",
			p.BaseFee, typicalExtras, p.BaseFee+typicalExtras),
		FeeAvoidanceTips: avoidanceTips(key),
	}, nil
}

func typicalExtrasByType(platformType string) []ExtraFee {
	switch platformType {
	case TypeAirline:
		return []ExtraFee{
			{Item: "Checked baggage", TypicalCost: "€25-50"},
			{Item: "Seat selection", TypicalCost: "€5-30"},
			{Item: "Priority boarding", TypicalCost: "€10-20"},
			{Item: "Meals", TypicalCost: "€8-15"},
		}
	case TypeMajorOTA:
		return []ExtraFee{
			{Item: "Service fee", TypicalCost: "€10-20"},
			{Item: "Credit card fee", TypicalCost: "€5-10"},
			{Item: "Insurance (pushed)", TypicalCost: "€15-30"},
		}
	case TypeRegional:
		return []ExtraFee{
			{Item: "Service fee", TypicalCost: "€8-15"},
			{Item: "Membership fee", TypicalCost: "€30-60/year"},
			{Item: "SMS confirmation", TypicalCost: "€2-5"},
		}
	case TypeMetaSearch:
		return []ExtraFee{{Item: "None (redirects)", TypicalCost: "€0"}}
	default:
		return nil
	}
}

func avoidanceTips(key string) []string {
	switch key {
	case "expedia":
		return []string{
			"Book as a \"member\" for reduced fees",
			"Avoid phone bookings (higher fees)",
			"Decline insurance and extras at checkout",
		}
	case "ryanair_direct":
		return []string{
			"Use Mastercard debit to avoid card fee",
			"Check in online to avoid airport fee",
			"Don't pay for seat selection unless needed",
			"Stick to cabin bag only",
		}
	case "edreams":
		return []string{
			"Decline Prime membership (often pre-selected)",
			"Use debit card to reduce payment fees",
			"Opt out of all insurance offers",
		}
	default:
		return []string{
			"Use price comparison sites to find, book direct",
			"Read all checkboxes carefully",
			"Decline optional services",
			"Use incognito mode to avoid price inflation",
		}
	}
}

// Suggestion pairs a platform strategy with its expected benefit.
type Suggestion struct {
	Platform        string `json:"platform"`
	Reason          string `json:"reason"`
	ExpectedSavings string `json:"expected_savings"`
}

// BestPlatformAdvice recommends platforms for a route type with a general
// booking strategy.
type BestPlatformAdvice struct {
	RouteType       string       `json:"route_type"`
	Priorities      []string     `json:"priorities"`
	Recommendations []Suggestion `json:"top_recommendations"`
	GeneralStrategy string       `json:"general_strategy"`
}

// BestPlatform recommends platforms for a route type. Route types:
// domestic, european, international, budget. Priorities default to price
// and reliability.
func BestPlatform(routeType string, priorities []string) BestPlatformAdvice {
	if len(priorities) == 0 {
		priorities = []string{"price", "reliability"}
	}

	var recs []Suggestion
	switch routeType {
	case "budget":
		recs = []Suggestion{
			{
				Platform:        "Google Flights + Airline Direct",
				Reason:          "Use Google to find, book direct with airline to avoid OTA fees",
				ExpectedSavings: "€10-30",
			},
			{
				Platform:        "Skyscanner",
				Reason:          "Shows budget airlines that others miss",
				ExpectedSavings: "€20-50",
			},
			{
				Platform:        "Ryanair/EasyJet Direct",
				Reason:          "Budget airlines rarely on OTAs, must book direct",
				ExpectedSavings: "Base fare often 50%+ cheaper",
			},
		}
	case "domestic":
		recs = []Suggestion{
			{
				Platform:        "Airline Direct",
				Reason:          "No OTA fees, best for domestic routes",
				ExpectedSavings: "€10-20",
			},
			{
				Platform:        "Google Flights",
				Reason:          "Quick comparison, then book direct",
				ExpectedSavings: "Time saving",
			},
		}
	case "european":
		recs = []Suggestion{
			{
				Platform:        "Skyscanner",
				Reason:          "Best European coverage including low-cost carriers",
				ExpectedSavings: "€15-40",
			},
			{
				Platform:        "Momondo",
				Reason:          "Often finds deals others miss in Europe",
				ExpectedSavings: "€20-60",
			},
			{
				Platform:        "Kiwi.com",
				Reason:          "Creative routing with self-transfers",
				ExpectedSavings: "€30-100 (with risk)",
			},
		}
	default:
		recs = []Suggestion{
			{
				Platform:        "Google Flights",
				Reason:          "Best for long-haul comparison",
				ExpectedSavings: "Research tool",
			},
			{
				Platform:        "Airline Direct",
				Reason:          "Book direct for international for better support",
				ExpectedSavings: "€20-50 in fees avoided",
			},
			{
				Platform:        "Kayak",
				Reason:          "Good international coverage",
				ExpectedSavings: "€25-75",
			},
		}
	}

	return BestPlatformAdvice{
		RouteType:       routeType,
		Priorities:      priorities,
		Recommendations: recs,
		GeneralStrategy: generalStrategy(priorities),
	}
}

func generalStrategy(priorities []string) string {
	has := func(p string) bool {
		for _, x := range priorities {
			if x == p {
				return true
			}
		}
		return false
	}

	switch {
	case has("price"):
		return "1. Use Google Flights or Skyscanner to find best price\n" +
			"2. Note the airline and exact flight\n" +
			"3. Go to airline's website and book directly\n" +
			"4. This avoids OTA fees while getting best price"
	case has("flexibility"):
		return "1. Book directly with airline for better flexibility\n" +
			"2. OTAs often have stricter cancellation policies\n" +
			"3. Airline credits are easier to use than OTA vouchers"
	default:
		return "1. Compare on meta-search engines\n" +
			"2. Check both OTAs and airline direct\n" +
			"3. Consider total cost including all fees\n" +
			"4. Factor in reliability and customer service"
	}
}
