// Package fares documents ticket classes, routing economics, fare
// conditions, and cost reduction tips.
package fares

// TicketClass describes one fare class and when it pays off.
type TicketClass struct {
	Description     string   `json:"description"`
	TypicalFeatures []string `json:"typical_features"`
	CostDelta       string   `json:"cost_delta"`
	Recommendation  string   `json:"recommendation"`
}

// Rules is the fare-rules knowledge base.
type Rules struct {
	TicketClasses     map[string]TicketClass `json:"ticket_classes"`
	RoutingLogic      map[string]string      `json:"routing_logic"`
	PricingConditions map[string]string      `json:"pricing_conditions"`
	CostReductionTips []string               `json:"cost_reduction_tips"`
}

// Analyze returns the fare-rules knowledge base: ticket classes, routing
// economics, fare conditions, and cost tips.
func Analyze() Rules {
	return Rules{
		TicketClasses: map[string]TicketClass{
			"economy_basic": {
				Description:     "Cheapest option, most restrictions",
				TypicalFeatures: []string{"No changes", "No refunds", "Last to board", "No seat selection"},
				CostDelta:       "20-30% vs standard economy",
				Recommendation:  "Good for certain travel, no flexibility needed",
			},
			"economy_standard": {
				Description:     "Standard economy with moderate flexibility",
				TypicalFeatures: []string{"Paid changes allowed", "Seat selection", "Standard baggage"},
				CostDelta:       "Baseline",
				Recommendation:  "Best balance of price and flexibility",
			},
			"economy_flex": {
				Description:     "Flexible economy ticket",
				TypicalFeatures: []string{"Free changes", "Refundable (with fee)", "Priority boarding"},
				CostDelta:       "30-50% vs standard",
				Recommendation:  "Only if high chance of changes needed",
			},
			"premium_economy": {
				Description:     "Enhanced comfort, moderate price increase",
				TypicalFeatures: []string{"More legroom", "Better meals", "Priority boarding", "More baggage"},
				CostDelta:       "50-100% vs economy",
				Recommendation:  "Consider for long-haul (8+ hours)",
			},
		},
		RoutingLogic: map[string]string{
			"direct_flights": "Most expensive but most convenient",
			"one_stop":       "15-30% cheaper, reasonable for medium distances",
			"two_stops":      "30-50% cheaper, only worthwhile for large savings",
			"self_transfer":  "Cheapest but highest risk, no protection",
		},
		PricingConditions: map[string]string{
			"advance_purchase":    "Book 21-90 days ahead for best economy prices",
			"saturday_night_stay": "Often required for cheap fares (legacy rule)",
			"minimum_stay":        "Some fares require 2-7 night minimum",
			"maximum_stay":        "Typically 1-12 months from departure",
		},
		CostReductionTips: []string{
			"Choose basic economy if no baggage needed",
			"Bring own food to avoid inflated onboard prices",
			"Select free seats (usually middle seats)",
			"Join loyalty program even for one flight (better support)",
			"Book separate one-way tickets if cheaper than round-trip",
			"Consider nearby airports (may save 30%+)",
			"Fly Tuesday/Wednesday instead of Friday/Sunday (10-20% cheaper)",
			"Book on Tuesday afternoon for weekly low prices",
		},
	}
}
