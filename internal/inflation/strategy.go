package inflation

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/farescout/internal/route"
)

// AvoidanceStep is one step of the anti-inflation search method.
type AvoidanceStep struct {
	Step          int      `json:"step"`
	Action        string   `json:"action"`
	Reason        string   `json:"reason"`
	Effectiveness string   `json:"effectiveness"`
	Instructions  []string `json:"instructions"`
}

// AvoidanceStrategy is the complete step-by-step method with a quick
// checklist.
type AvoidanceStrategy struct {
	Steps               []AvoidanceStep `json:"step_by_step_method"`
	QuickChecklist      []string        `json:"quick_checklist"`
	EffectivenessRating string          `json:"effectiveness_rating"`
}

// Countermeasure is a technical setup for advanced users.
type Countermeasure struct {
	Method        string   `json:"method"`
	Platform      string   `json:"platform"`
	Description   string   `json:"description"`
	Difficulty    string   `json:"difficulty"`
	Effectiveness string   `json:"effectiveness"`
	Setup         []string `json:"setup"`
}

// SearchInfo identifies the route and attempt a protocol applies to.
type SearchInfo struct {
	Route        string `json:"route"`
	Date         string `json:"date"`
	SearchNumber int    `json:"search_number"`
	RiskLevel    string `json:"risk_level"`
}

// Protocol is the exact procedure for one search attempt. Precautions
// escalate with the attempt number.
type Protocol struct {
	SearchInfo         SearchInfo `json:"search_info"`
	PreSearchChecklist []string   `json:"pre_search_checklist"`
	SearchExecution    []string   `json:"search_execution"`
	PostSearchActions  []string   `json:"post_search_actions"`
	Warnings           []string   `json:"warnings"`
	RiskLevel          string     `json:"risk_level"`
}

// PlannedSearch schedules one route within a multi-route search plan.
type PlannedSearch struct {
	Route     route.Request `json:"route"`
	SearchDay int           `json:"search_day"`
	Session   int           `json:"session"`
	TimeOfDay string        `json:"time_of_day"`
	Platform  string        `json:"platform"`
	UseVPN    bool          `json:"use_vpn"`
}

// SearchPlan spreads several route searches over days to keep each one
// looking like a first search.
type SearchPlan struct {
	TotalRoutes int             `json:"total_routes"`
	Timeline    []PlannedSearch `json:"recommended_timeline"`
}

// Avoidance returns the ten-step anti-inflation method.
func Avoidance() AvoidanceStrategy {
	return AvoidanceStrategy{
		Steps: []AvoidanceStep{
			{
				Step: 1, Action: "Use Incognito/Private Browsing",
				Reason:        "Prevents cookie tracking and session continuity",
				Effectiveness: "High",
				Instructions: []string{
					"Chrome/Edge: Ctrl+Shift+N (Windows) or Cmd+Shift+N (Mac)",
					"Firefox: Ctrl+Shift+P (Windows) or Cmd+Shift+P (Mac)",
					"Safari: Cmd+Shift+N",
					"Start fresh incognito window for each search session",
				},
			},
			{
				Step: 2, Action: "Clear Cookies and Cache",
				Reason:        "Remove existing tracking data",
				Effectiveness: "Very High",
				Instructions: []string{
					"Before searching, clear all cookies for airline/OTA sites",
					"Clear browser cache completely",
					"Use CCleaner or similar tool for thorough cleaning",
					"Or use browser privacy mode which auto-clears on close",
				},
			},
			{
				Step: 3, Action: "Use VPN",
				Reason:        "Masks IP address and location",
				Effectiveness: "Very High",
				Instructions: []string{
					"Connect to VPN before opening browser",
					"Choose server in country with lower pricing (e.g., Poland, Turkey)",
					"Verify IP changed using whatismyip.com",
					"Keep VPN on for entire search and booking process",
				},
			},
			{
				Step: 4, Action: "Rotate User Agent",
				Reason:        "Prevents device fingerprinting",
				Effectiveness: "Medium",
				Instructions: []string{
					"Install User Agent Switcher browser extension",
					"Rotate between different browsers and OS signatures",
					"Use desktop user agent (mobile often shows higher prices)",
					"Change user agent between search sessions",
				},
			},
			{
				Step: 5, Action: "Limit Search Frequency",
				Reason:        "Avoid triggering repeated search detection",
				Effectiveness: "High",
				Instructions: []string{
					"Maximum 2 searches per route per day",
					"Wait at least 6 hours between searches for same route",
					"Use different devices/browsers for additional searches",
					"Track prices passively with alerts instead of searching",
				},
			},
			{
				Step: 6, Action: "Search at Optimal Times",
				Reason:        "Avoid peak pricing periods",
				Effectiveness: "Medium",
				Instructions: []string{
					"Search Tuesday-Thursday for best prices",
					"Search early morning (6-8 AM) when prices reset",
					"Avoid weekend and evening searches",
					"Book Tuesday afternoon (3-5 PM) for weekly price drops",
				},
			},
			{
				Step: 7, Action: "Use Multiple Platforms",
				Reason:        "Compare without triggering single site tracking",
				Effectiveness: "High",
				Instructions: []string{
					"Check airline direct, then OTAs separately",
					"Use different browser sessions for each platform",
					"Don't search same route on multiple sites in quick succession",
					"Spread searches across 2-3 days if not urgent",
				},
			},
			{
				Step: 8, Action: "Minimize Session Duration",
				Reason:        "Avoid high-interest detection",
				Effectiveness: "Medium",
				Instructions: []string{
					"Know what you want before searching",
					"Spend maximum 5-10 minutes per session",
					"Don't browse multiple dates/routes in one session",
					"Close browser immediately after each search",
				},
			},
			{
				Step: 9, Action: "Book Immediately When Ready",
				Reason:        "Prevent cart abandonment tracking",
				Effectiveness: "High",
				Instructions: []string{
					"Don't start booking process unless ready to complete",
					"Have payment info ready before clicking \"Book\"",
					"Complete entire booking in one session",
					"If must abandon, clear all cookies before returning",
				},
			},
			{
				Step: 10, Action: "Use Generic Email",
				Reason:        "Avoid corporate/premium user profiling",
				Effectiveness: "Low",
				Instructions: []string{
					"Use personal email, not corporate",
					"Avoid premium domain emails",
					"Use generic Gmail/Outlook addresses",
					"Don't use email that's in airline loyalty program",
				},
			},
		},
		QuickChecklist: []string{
			"☐ Incognito/private window",
			"☐ VPN connected (optional but recommended)",
			"☐ Cookies cleared",
			"☐ Desktop user agent",
			"☐ First search of the day for this route",
			"☐ Tuesday-Thursday, morning time",
			"☐ Ready to book if price is right",
			"☐ Payment info prepared",
			"☐ Will close browser immediately after",
		},
		EffectivenessRating: "Following all steps can reduce inflation by 10-25%",
	}
}

// TechnicalCountermeasures lists advanced setups for isolating searches.
func TechnicalCountermeasures() []Countermeasure {
	return []Countermeasure{
		{
			Method: "Browser Containers", Platform: "Firefox Multi-Account Containers",
			Description: "Isolate searches in separate containers",
			Difficulty:  "Easy", Effectiveness: "Very High",
			Setup: []string{
				"Install Firefox Multi-Account Containers extension",
				"Create separate container for each airline/OTA",
				"Each container has isolated cookies and storage",
				"Prevents cross-site tracking",
			},
		},
		{
			Method: "Virtual Machines", Platform: "VirtualBox, VMware",
			Description: "Use fresh VM for each search",
			Difficulty:  "Hard", Effectiveness: "Very High",
			Setup: []string{
				"Create clean Windows/Linux VM",
				"Take snapshot of clean state",
				"Search for flights",
				"Revert to snapshot after each search",
			},
		},
		{
			Method: "Browser Automation Scripts", Platform: "Selenium, Puppeteer",
			Description: "Automated searches with randomization",
			Difficulty:  "Hard", Effectiveness: "High",
			Setup: []string{
				"Script that clears cache, rotates user agents",
				"Randomize timing between actions",
				"Rotate through VPN endpoints",
				"Extract prices without triggering bot detection",
			},
		},
		{
			Method: "Temporary Email Services", Platform: "Temp-mail.org, 10minutemail",
			Description: "Use disposable emails for price checking",
			Difficulty:  "Easy", Effectiveness: "Medium",
			Setup: []string{
				"Generate temporary email",
				"Use for price checks and alerts",
				"Switch to real email only when booking",
				"Prevents email-based tracking",
			},
		},
		{
			Method: "Anti-Fingerprint Browser", Platform: "Tor Browser, Brave",
			Description: "Browser designed to prevent fingerprinting",
			Difficulty:  "Easy", Effectiveness: "Very High",
			Setup: []string{
				"Use Tor Browser or Brave in private mode",
				"Built-in fingerprint protection",
				"Randomizes many fingerprint vectors",
				"Note: Some sites block Tor",
			},
		},
	}
}

// SearchProtocol generates the procedure for a specific search attempt.
// Precautions escalate at the second attempt and again from the third on.
func SearchProtocol(origin, destination string, departure time.Time, searchNumber int) Protocol {
	p := Protocol{
		SearchInfo: SearchInfo{
			Route:        fmt.Sprintf("%s → %s", origin, destination),
			Date:         departure.Format(route.DateFormat),
			SearchNumber: searchNumber,
			RiskLevel:    assessRisk(searchNumber),
		},
	}

	switch {
	case searchNumber <= 1:
		p.PreSearchChecklist = []string{
			"Open incognito window",
			"Optionally connect VPN",
			"Navigate directly to booking site",
		}
		p.RiskLevel = "Low"
	case searchNumber == 2:
		p.PreSearchChecklist = []string{
			"Wait at least 6 hours since last search",
			"Open fresh incognito window",
			"Clear all cookies",
			"Consider using VPN",
		}
		p.RiskLevel = "Medium"
	default:
		p.PreSearchChecklist = []string{
			"CRITICAL: Wait 24 hours since last search",
			"Use different browser or device",
			"Clear ALL browser data",
			"MUST use VPN with different location",
			"Use different user agent",
			"Consider using different platform",
		}
		p.RiskLevel = "High"
		p.Warnings = []string{
			fmt.Sprintf("This is search #%d - HIGH INFLATION RISK", searchNumber),
			"Prices likely already inflated from previous searches",
			"Consider waiting 48-72 hours for prices to reset",
		}
	}

	p.SearchExecution = []string{
		"Keep session under 10 minutes",
		"Search only for exact route needed",
		"Do not browse other dates or routes",
		"If found good price, book immediately",
		"If not booking, close browser immediately",
	}
	p.PostSearchActions = []string{
		"Close browser completely",
		"If searched 3+ times, stop and wait 48 hours",
		"Set up price alert instead of manual searching",
		"Log price for tracking purposes",
	}

	return p
}

func assessRisk(searchNumber int) string {
	switch searchNumber {
	case 1:
		return "Low - First search, minimal tracking"
	case 2:
		return "Medium - Second search, some tracking possible"
	case 3:
		return "High - Third search, likely being tracked"
	default:
		return "Very High - Multiple searches, prices likely inflated"
	}
}

// CreateSearchPlan spreads searches for several routes across days, two per
// day, alternating platforms and enabling VPN after the first two.
func CreateSearchPlan(routes []route.Request) SearchPlan {
	plan := SearchPlan{TotalRoutes: len(routes)}

	for i, r := range routes {
		timeOfDay := "Morning"
		if i%2 == 1 {
			timeOfDay = "Afternoon"
		}
		platform := "OTA"
		if i%3 == 0 {
			platform = "Direct airline"
		}
		plan.Timeline = append(plan.Timeline, PlannedSearch{
			Route:     r,
			SearchDay: i/2 + 1,
			Session:   i%2 + 1,
			TimeOfDay: timeOfDay,
			Platform:  platform,
			UseVPN:    i > 2,
		})
	}

	return plan
}
