// Package inflation catalogs how airline sites detect repeated interest and
// raise prices, and provides the countermeasure playbooks.
package inflation

import (
	"fmt"

	"github.com/samber/lo"
)

// TrackingMethod describes one signal airlines use to recognize a shopper.
type TrackingMethod struct {
	DetectionMethod  string `json:"detection_method"`
	WhatTracked      string `json:"what_tracked"`
	InflationTrigger string `json:"inflation_trigger"`
	Severity         string `json:"severity"`
	DetectionWindow  string `json:"detection_window"`
}

// TrackingAnalysis is the full tracking-method catalog with a severity
// summary.
type TrackingAnalysis struct {
	Methods      map[string]TrackingMethod `json:"tracking_methods"`
	TotalMethods int                       `json:"total_methods"`
	HighSeverity []string                  `json:"high_severity"`
	Summary      string                    `json:"summary"`
}

// Trigger is a shopper behavior that raises quoted prices.
type Trigger struct {
	Trigger         string `json:"trigger"`
	Description     string `json:"description"`
	HowDetected     string `json:"how_detected"`
	TypicalIncrease string `json:"typical_increase"`
	TimeToTrigger   string `json:"time_to_trigger"`
	EvidenceLevel   string `json:"evidence_level"`
}

var trackingMethods = map[string]TrackingMethod{
	"cookies": {
		DetectionMethod:  "HTTP Cookies",
		WhatTracked:      "Previous searches, viewed routes, search frequency",
		InflationTrigger: "Repeated searches for same route within short timeframe",
		Severity:         "High",
		DetectionWindow:  "7-30 days",
	},
	"browser_fingerprint": {
		DetectionMethod:  "Browser Fingerprinting",
		WhatTracked:      "Browser version, plugins, screen resolution, fonts, timezone",
		InflationTrigger: "Unique browser signature matches previous sessions",
		Severity:         "Very High",
		DetectionWindow:  "Persistent until browser profile changes",
	},
	"ip_address": {
		DetectionMethod:  "IP Address Tracking",
		WhatTracked:      "Geographic location, ISP, previous searches from same IP",
		InflationTrigger: "Multiple searches from same IP address",
		Severity:         "Medium",
		DetectionWindow:  "24 hours - 7 days",
	},
	"user_agent": {
		DetectionMethod:  "User Agent String",
		WhatTracked:      "Device type, OS, browser version",
		InflationTrigger: "Pattern of searches from same device signature",
		Severity:         "Low",
		DetectionWindow:  "Session-based",
	},
	"device_type": {
		DetectionMethod:  "Device Detection",
		WhatTracked:      "Mobile vs Desktop, operating system",
		InflationTrigger: "Mobile users often shown higher prices",
		Severity:         "Medium",
		DetectionWindow:  "Per session",
	},
	"location_data": {
		DetectionMethod:  "Geolocation",
		WhatTracked:      "Country, city, timezone from IP and browser",
		InflationTrigger: "High-income locations see higher prices",
		Severity:         "High",
		DetectionWindow:  "Persistent",
	},
	"search_history": {
		DetectionMethod:  "Search Pattern Analysis",
		WhatTracked:      "Number of searches, time between searches, routes searched",
		InflationTrigger: "3+ searches for same route in 24 hours",
		Severity:         "Very High",
		DetectionWindow:  "1-7 days",
	},
	"time_of_day": {
		DetectionMethod:  "Time-Based Pricing",
		WhatTracked:      "Time of search, day of week",
		InflationTrigger: "Evening/weekend searches often priced higher",
		Severity:         "Medium",
		DetectionWindow:  "Real-time",
	},
	"session_duration": {
		DetectionMethod:  "Session Behavior Analysis",
		WhatTracked:      "How long on site, pages viewed, booking abandonment",
		InflationTrigger: "Long sessions without booking indicate high interest",
		Severity:         "High",
		DetectionWindow:  "Current session + cookie lifetime",
	},
	"payment_signals": {
		DetectionMethod:  "Payment Method Detection",
		WhatTracked:      "Premium credit cards, corporate cards",
		InflationTrigger: "Premium card holders may see higher prices",
		Severity:         "Medium",
		DetectionWindow:  "Transaction-based",
	},
}

func severe(m TrackingMethod) bool {
	return m.Severity == "High" || m.Severity == "Very High"
}

// AnalyzeTrackingMethods returns the tracking-method catalog with the
// high-severity subset and a summary.
func AnalyzeTrackingMethods() TrackingAnalysis {
	high := lo.Keys(lo.PickBy(trackingMethods, func(_ string, m TrackingMethod) bool {
		return severe(m)
	}))

	return TrackingAnalysis{
		Methods:      trackingMethods,
		TotalMethods: len(trackingMethods),
		HighSeverity: high,
		Summary: fmt.Sprintf(
			"Airlines use %d different tracking methods. %d are high severity and most likely to cause price inflation. "+
				"The most effective countermeasures are: incognito mode, cookie clearing, VPN usage, and limiting search frequency.",
			len(trackingMethods), len(high)),
	}
}

// InflationTriggers lists the shopper behaviors known to raise quotes.
func InflationTriggers() []Trigger {
	return []Trigger{
		{
			Trigger:         "Repeated Searches",
			Description:     "Searching for the same route 3+ times in 24 hours",
			HowDetected:     "Cookies + IP tracking + browser fingerprint",
			TypicalIncrease: "5-20%",
			TimeToTrigger:   "3-5 searches",
			EvidenceLevel:   "Well documented",
		},
		{
			Trigger:         "Long Session Duration",
			Description:     "Spending 15+ minutes browsing flights without booking",
			HowDetected:     "Session analytics and behavior tracking",
			TypicalIncrease: "3-10%",
			TimeToTrigger:   "15-30 minutes",
			EvidenceLevel:   "Industry reported",
		},
		{
			Trigger:         "Premium Location",
			Description:     "Searching from high-income zip codes or countries",
			HowDetected:     "IP geolocation and billing address",
			TypicalIncrease: "10-25%",
			TimeToTrigger:   "Immediate",
			EvidenceLevel:   "Confirmed by studies",
		},
		{
			Trigger:         "Mobile Device",
			Description:     "Using mobile phone vs desktop computer",
			HowDetected:     "User agent and screen size",
			TypicalIncrease: "5-15%",
			TimeToTrigger:   "Immediate",
			EvidenceLevel:   "Mixed evidence",
		},
		{
			Trigger:         "Peak Search Times",
			Description:     "Searching during evening hours or weekends",
			HowDetected:     "Server timestamp",
			TypicalIncrease: "3-8%",
			TimeToTrigger:   "Immediate",
			EvidenceLevel:   "Anecdotal",
		},
		{
			Trigger:         "Returning Visitor",
			Description:     "Recognized as previous visitor who didn't book",
			HowDetected:     "Cookies and localStorage",
			TypicalIncrease: "5-15%",
			TimeToTrigger:   "2nd visit",
			EvidenceLevel:   "Well documented",
		},
		{
			Trigger:         "Cart Abandonment",
			Description:     "Starting booking process but not completing",
			HowDetected:     "Session tracking and cookies",
			TypicalIncrease: "5-12%",
			TimeToTrigger:   "Next visit",
			EvidenceLevel:   "Industry reported",
		},
		{
			Trigger:         "Premium Card Signals",
			Description:     "Using premium credit card or corporate email",
			HowDetected:     "Payment processing and form data",
			TypicalIncrease: "5-10%",
			TimeToTrigger:   "At payment",
			EvidenceLevel:   "Suspected",
		},
	}
}
