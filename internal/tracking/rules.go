package tracking

import (
	"fmt"

	"github.com/blackwell-systems/farescout/internal/route"
)

// AlertService describes one price-alert service and its setup.
type AlertService struct {
	Service       string   `json:"service"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Setup         []string `json:"setup"`
	Effectiveness string   `json:"effectiveness"`
}

// AlertSetup is the recommended alert-service configuration.
type AlertSetup struct {
	RecommendedServices []AlertService `json:"recommended_services"`
	RecommendedApproach string         `json:"recommended_approach"`
	AlertThreshold      string         `json:"alert_threshold"`
	AlertFrequency      string         `json:"alert_frequency"`
}

// BehavioralRule is one discipline rule that keeps prices stable.
type BehavioralRule struct {
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
	Rationale   string `json:"rationale"`
}

// RotationSlot assigns a platform to a search attempt.
type RotationSlot struct {
	SearchNumber int    `json:"search_number"`
	Platform     string `json:"platform"`
	Reason       string `json:"reason"`
}

// PlatformRotation is the schedule for spreading searches across platforms.
type PlatformRotation struct {
	Platforms          []string       `json:"platforms"`
	RotationSchedule   []RotationSlot `json:"rotation_schedule"`
	Rule               string         `json:"rule"`
	MaxPlatformsPerDay int            `json:"max_platforms_per_day"`
}

// SessionStep is one phase of the search-session protocol.
type SessionStep struct {
	Step    string   `json:"step"`
	Actions []string `json:"actions"`
}

// AlertRecommendations returns the recommended alert services with setup
// instructions.
func AlertRecommendations() AlertSetup {
	return AlertSetup{
		RecommendedServices: []AlertService{
			{
				Service: "Google Flights Price Tracking",
				Pros:    []string{"Free", "Reliable", "No manual searching needed"},
				Cons:    []string{"Limited to Google Flights inventory"},
				Setup: []string{
					"Search flight on Google Flights",
					"Click \"Track prices\" toggle",
					"Receive email alerts on price changes",
					"Check email instead of searching repeatedly",
				},
				Effectiveness: "Very High",
			},
			{
				Service: "Kayak Price Alerts",
				Pros:    []string{"Multi-platform comparison", "Flexible date tracking"},
				Cons:    []string{"Can be slow to update"},
				Setup: []string{
					"Search on Kayak.com",
					"Create free account",
					"Click \"Create Price Alert\"",
					"Set target price threshold",
				},
				Effectiveness: "High",
			},
			{
				Service: "Skyscanner Price Alerts",
				Pros:    []string{"Whole month view", "Good for flexible dates"},
				Cons:    []string{"Alerts can be delayed"},
				Setup: []string{
					"Search on Skyscanner",
					"Click \"Get Price Alerts\"",
					"Enter email",
					"Choose alert frequency",
				},
				Effectiveness: "High",
			},
			{
				Service: "Hopper App",
				Pros:    []string{"Predictive analytics", "Buy/wait recommendations"},
				Cons:    []string{"Mobile only", "Some features require subscription"},
				Setup: []string{
					"Download Hopper app",
					"Search flight",
					"Enable \"Watch This Trip\"",
					"Get push notifications",
				},
				Effectiveness: "Very High",
			},
			{
				Service: "AirfareWatchdog",
				Pros:    []string{"Finds mistake fares", "Manual deal hunting"},
				Cons:    []string{"US-focused"},
				Setup: []string{
					"Sign up on AirfareWatchdog.com",
					"Set departure city",
					"Receive weekly deal emails",
				},
				Effectiveness: "Medium",
			},
		},
		RecommendedApproach: "Use 2-3 alert services simultaneously for best coverage",
		AlertThreshold:      "Set alerts for 10-15% below current price",
		AlertFrequency:      "Daily digest preferred over real-time to avoid spam",
	}
}

// BehavioralRules returns the discipline rules for keeping tracked prices
// stable.
func BehavioralRules() []BehavioralRule {
	return []BehavioralRule{
		{
			Rule:        "One Search Per Session",
			Description: "Search for your specific route once, then close browser",
			Importance:  "Critical",
			Rationale:   "Multiple searches in one session strongly trigger inflation",
		},
		{
			Rule:        "Always Use Incognito Mode",
			Description: "Never search in regular browser mode",
			Importance:  "Critical",
			Rationale:   "Prevents cookie tracking across sessions",
		},
		{
			Rule:        "Minimum 24-Hour Gap",
			Description: "Wait at least 24 hours between manual searches",
			Importance:  "High",
			Rationale:   "Frequent searches detected even across incognito sessions via IP",
		},
		{
			Rule:        "Rotate Platforms",
			Description: "Don't search same route on same platform twice in a row",
			Importance:  "High",
			Rationale:   "Platform-specific tracking can link sessions",
		},
		{
			Rule:        "Prefer Alerts Over Searches",
			Description: "Set up alerts and wait, rather than searching actively",
			Importance:  "Very High",
			Rationale:   "Alerts are passive and don't trigger inflation",
		},
		{
			Rule:        "Clear All Data Between Sessions",
			Description: "Clear cookies, cache, and localStorage",
			Importance:  "High",
			Rationale:   "Complete data cleanup prevents session linking",
		},
		{
			Rule:        "Randomize Search Times",
			Description: "Don't search at the same time each day",
			Importance:  "Medium",
			Rationale:   "Pattern detection can link searches",
		},
		{
			Rule:        "Book Immediately If Target Met",
			Description: "When target price is reached, book within 1 hour",
			Importance:  "Critical",
			Rationale:   "Prices can change quickly, hesitation causes missed opportunities",
		},
		{
			Rule:        "Don't Complete Booking Unless Committing",
			Description: "Never enter passenger details unless ready to purchase",
			Importance:  "High",
			Rationale:   "Cart abandonment heavily tracked and can raise future prices",
		},
		{
			Rule:        "Use Different Devices",
			Description: "Rotate between phone, tablet, computer",
			Importance:  "Medium",
			Rationale:   "Device fingerprinting can link searches",
		},
	}
}

// Rotation returns the platform rotation schedule.
func Rotation() PlatformRotation {
	return PlatformRotation{
		Platforms: []string{
			"Google Flights", "Airline Direct", "Kayak",
			"Skyscanner", "Momondo", "Expedia",
		},
		RotationSchedule: []RotationSlot{
			{SearchNumber: 1, Platform: "Google Flights", Reason: "Best for initial price discovery"},
			{SearchNumber: 2, Platform: "Airline Direct", Reason: "Check direct pricing"},
			{SearchNumber: 3, Platform: "Kayak", Reason: "Multi-platform comparison"},
			{SearchNumber: 4, Platform: "Skyscanner", Reason: "Alternative inventory"},
			{SearchNumber: 5, Platform: "Momondo", Reason: "Often finds hidden deals"},
		},
		Rule:               "Never use same platform twice in a row",
		MaxPlatformsPerDay: 2,
	}
}

// SessionProtocol returns the five-phase search session procedure.
func SessionProtocol() []SessionStep {
	return []SessionStep{
		{
			Step: "1. Preparation",
			Actions: []string{
				"Close all browser windows",
				"Clear all cookies and cache",
				"Optional: Connect to VPN",
				"Wait at least 24 hours since last search",
			},
		},
		{
			Step: "2. Session Start",
			Actions: []string{
				"Open new incognito/private window",
				"Navigate directly to booking site (don't use Google search)",
				"Verify cookies are disabled/cleared",
				"Start timer for session duration",
			},
		},
		{
			Step: "3. Search Execution",
			Actions: []string{
				"Enter flight details exactly once",
				"Review results",
				"Take screenshot of best prices",
				"Do NOT search additional dates or routes",
				"Complete session in under 10 minutes",
			},
		},
		{
			Step: "4. Decision Point",
			Actions: []string{
				"If price meets target: Book immediately",
				"If price too high: Close browser without booking",
				"Do NOT start booking process unless committing",
				"Do NOT browse other options",
			},
		},
		{
			Step: "5. Session End",
			Actions: []string{
				"Close all browser windows",
				"Clear cookies and cache again",
				"Log price in tracking spreadsheet",
				"Set reminder for next search time",
				"Disconnect VPN if used",
			},
		},
	}
}

// WeekPlan is one week of the worked tracking example.
type WeekPlan struct {
	Week      int      `json:"week"`
	Actions   []string `json:"actions"`
	Searches  string   `json:"searches"`
	TimeSpent string   `json:"time_spent"`
}

// ExampleScenario frames the worked example.
type ExampleScenario struct {
	Route              string  `json:"route"`
	DepartureDate      string  `json:"departure_date"`
	DaysUntilDeparture int     `json:"days_until_departure"`
	TargetPrice        float64 `json:"target_price"`
	CurrentPrice       float64 `json:"current_price"`
}

// Example is a worked five-week tracking plan.
type Example struct {
	Scenario        ExampleScenario   `json:"scenario"`
	WeekByWeekPlan  []WeekPlan        `json:"week_by_week_plan"`
	TotalSearches   string            `json:"total_searches"`
	TotalTime       string            `json:"total_time"`
	ExpectedOutcome string            `json:"expected_outcome"`
	Comparison      map[string]string `json:"comparison"`
}

// PracticalExample builds a worked tracking plan for a route departing in
// daysUntil days.
func (p *Planner) PracticalExample(origin, destination string, daysUntil int) Example {
	departure := p.now().AddDate(0, 0, daysUntil)

	return Example{
		Scenario: ExampleScenario{
			Route:              fmt.Sprintf("%s → %s", origin, destination),
			DepartureDate:      departure.Format(route.DateFormat),
			DaysUntilDeparture: daysUntil,
			TargetPrice:        450.00,
			CurrentPrice:       520.00,
		},
		WeekByWeekPlan: []WeekPlan{
			{
				Week: 1,
				Actions: []string{
					"Set up Google Flights price alert",
					"Set up Kayak price alert",
					"Manual search on Google Flights (incognito)",
					"Log baseline price: €520",
					"Set calendar reminder for next search",
				},
				Searches:  "1",
				TimeSpent: "15 minutes setup + 5 minutes search",
			},
			{
				Week: 2,
				Actions: []string{
					"Check alert emails (no manual search needed)",
					"If no alerts, one manual search mid-week",
					"Use different platform (Kayak)",
					"Log any price changes",
				},
				Searches:  "0-1 (prefer 0)",
				TimeSpent: "5 minutes",
			},
			{
				Week: 3,
				Actions: []string{
					"Monitor alerts daily",
					"Manual search if 7+ days since last",
					"Consider booking if price drops to €480",
					"Research alternative airports",
				},
				Searches:  "1-2",
				TimeSpent: "10 minutes",
			},
			{
				Week: 4,
				Actions: []string{
					"Daily alert monitoring",
					"Manual search every 3 days",
					"Book immediately if hits €450 target",
					"Consider booking even if slight above target",
				},
				Searches:  "2-3",
				TimeSpent: "15 minutes",
			},
			{
				Week: 5,
				Actions: []string{
					"Increase to daily monitoring",
					"Book if any significant drop occurs",
					"Consider that prices may only increase from here",
					"Make final decision by end of week",
				},
				Searches:  "3-5",
				TimeSpent: "20 minutes",
			},
		},
		TotalSearches:   "7-12 over 5 weeks",
		TotalTime:       "~1 hour over 5 weeks",
		ExpectedOutcome: "Catch 10-20% price drop without triggering inflation",
		Comparison: map[string]string{
			"without_strategy": "30+ searches, prices artificially inflated 10-15%",
			"with_strategy":    "7-12 searches, prices remain stable",
		},
	}
}
