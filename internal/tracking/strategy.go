// Package tracking builds passive price-monitoring strategies that catch
// drops without triggering search-based price inflation.
package tracking

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/blackwell-systems/farescout/internal/pricing"
	"github.com/blackwell-systems/farescout/internal/route"
)

// Planner creates tracking strategies. The random source jitters the
// recommended search times.
type Planner struct {
	src pricing.Source
	now func() time.Time
	log *slog.Logger
}

// NewPlanner builds a planner over the given random source.
func NewPlanner(src pricing.Source, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	return &Planner{src: src, now: time.Now, log: log}
}

// WithNow overrides the clock, for tests.
func (p *Planner) WithNow(now func() time.Time) *Planner {
	p.now = now
	return p
}

// Frequency is the manual-search cadence for a booking horizon.
type Frequency struct {
	Frequency          string `json:"frequency"`
	MaxSearchesPerWeek int    `json:"max_searches_per_week"`
	MinHoursBetween    int    `json:"min_hours_between"`
	Reason             string `json:"reason"`
}

// ScheduledSearch is one planned search slot in the next seven days.
type ScheduledSearch struct {
	Date            string `json:"date"`
	Day             string `json:"day"`
	RecommendedTime string `json:"recommended_time"`
	TimeZone        string `json:"time_zone"`
	Notes           string `json:"notes"`
}

// DropThresholds are the price levels at which to act, derived from the
// target price.
type DropThresholds struct {
	TargetPrice     float64           `json:"target_price,omitempty"`
	ExcellentPrice  float64           `json:"excellent_price,omitempty"`
	GoodPrice       float64           `json:"good_price,omitempty"`
	AcceptablePrice float64           `json:"acceptable_price,omitempty"`
	Overpriced      float64           `json:"overpriced,omitempty"`
	Actions         map[string]string `json:"actions,omitempty"`
	Note            string            `json:"note,omitempty"`
	Recommendation  string            `json:"recommendation,omitempty"`
}

// Strategy is the complete tracking plan for one route.
type Strategy struct {
	Route              string            `json:"route"`
	DepartureDate      string            `json:"departure_date"`
	ReturnDate         string            `json:"return_date,omitempty"`
	TargetPrice        float64           `json:"target_price,omitempty"`
	FlexibilityDays    int               `json:"flexibility_days"`
	DaysUntilDeparture int               `json:"days_until_departure"`
	SearchFrequency    Frequency         `json:"search_frequency"`
	SearchSchedule     []ScheduledSearch `json:"search_schedule"`
	AlertSetup         AlertSetup        `json:"alert_setup"`
	BehavioralRules    []BehavioralRule  `json:"behavioral_rules"`
	PlatformRotation   PlatformRotation  `json:"platform_rotation"`
	SessionProtocol    []SessionStep     `json:"session_protocol"`
	DropThresholds     DropThresholds    `json:"price_drop_thresholds"`
}

// DefaultFlexibilityDays is used when the caller does not specify date
// flexibility.
const DefaultFlexibilityDays = 3

// CreateStrategy builds the full tracking strategy for a request.
func (p *Planner) CreateStrategy(req route.Request, flexibilityDays int) Strategy {
	p.log.Info("creating tracking strategy",
		"origin", req.Origin, "destination", req.Destination)

	if flexibilityDays <= 0 {
		flexibilityDays = DefaultFlexibilityDays
	}

	days := route.DaysUntil(req.Departure, p.now())
	freq := SearchFrequency(days)

	s := Strategy{
		Route:              fmt.Sprintf("%s → %s", req.Origin, req.Destination),
		DepartureDate:      req.Departure.Format(route.DateFormat),
		TargetPrice:        req.TargetPrice,
		FlexibilityDays:    flexibilityDays,
		DaysUntilDeparture: days,
		SearchFrequency:    freq,
		SearchSchedule:     p.schedule(freq),
		AlertSetup:         AlertRecommendations(),
		BehavioralRules:    BehavioralRules(),
		PlatformRotation:   Rotation(),
		SessionProtocol:    SessionProtocol(),
		DropThresholds:     CalculateDropThresholds(req.TargetPrice),
	}
	if req.Return != nil {
		s.ReturnDate = req.Return.Format(route.DateFormat)
	}
	return s
}

// SearchFrequency maps the booking horizon to a safe manual-search cadence.
// Never more than one search per day for the same route until the final
// week.
func SearchFrequency(daysUntil int) Frequency {
	switch {
	case daysUntil > 90:
		return Frequency{
			Frequency:          "Once per week",
			MaxSearchesPerWeek: 1,
			MinHoursBetween:    168,
			Reason:             "Far from departure, prices stable, infrequent checking sufficient",
		}
	case daysUntil > 30:
		return Frequency{
			Frequency:          "Twice per week",
			MaxSearchesPerWeek: 2,
			MinHoursBetween:    72,
			Reason:             "Entering optimal booking window, moderate monitoring",
		}
	case daysUntil > 14:
		return Frequency{
			Frequency:          "Every other day",
			MaxSearchesPerWeek: 3,
			MinHoursBetween:    48,
			Reason:             "Close to departure, prices may fluctuate",
		}
	case daysUntil > 7:
		return Frequency{
			Frequency:          "Daily",
			MaxSearchesPerWeek: 7,
			MinHoursBetween:    24,
			Reason:             "Last 2 weeks, daily monitoring recommended",
		}
	default:
		return Frequency{
			Frequency:          "Every 12 hours",
			MaxSearchesPerWeek: 14,
			MinHoursBetween:    12,
			Reason:             "Final week, frequent monitoring but be cautious of inflation",
		}
	}
}

// optimalTimes are the search slots around the daily fare resets.
var optimalTimes = []string{"06:00", "07:00", "15:00", "16:00"}

// schedule plans the next seven days of searches at the cadence the
// frequency allows, each at a randomized optimal time.
func (p *Planner) schedule(freq Frequency) []ScheduledSearch {
	var schedule []ScheduledSearch
	start := p.now()

	for day := 0; day < 7; day++ {
		var shouldSearch bool
		switch {
		case freq.MaxSearchesPerWeek >= 7:
			shouldSearch = true
		case freq.MaxSearchesPerWeek >= 3:
			shouldSearch = day%2 == 0
		default:
			shouldSearch = day%7 == 0
		}
		if !shouldSearch {
			continue
		}

		date := start.AddDate(0, 0, day)
		schedule = append(schedule, ScheduledSearch{
			Date:            date.Format(route.DateFormat),
			Day:             date.Weekday().String(),
			RecommendedTime: optimalTimes[p.src.Intn(len(optimalTimes))],
			TimeZone:        "Local",
			Notes:           "Use incognito mode, clear cookies first",
		})
	}
	return schedule
}

// CalculateDropThresholds derives the act-on-price levels from a target
// price. Without a target, only a generic recommendation is returned.
func CalculateDropThresholds(targetPrice float64) DropThresholds {
	if targetPrice <= 0 {
		return DropThresholds{
			Note:           "No target price set",
			Recommendation: "Monitor for 10-15% drops from initial price",
		}
	}

	return DropThresholds{
		TargetPrice:     targetPrice,
		ExcellentPrice:  pricing.Round2(targetPrice * 0.85),
		GoodPrice:       pricing.Round2(targetPrice * 0.95),
		AcceptablePrice: targetPrice,
		Overpriced:      pricing.Round2(targetPrice * 1.10),
		Actions: map[string]string{
			"excellent":  "BOOK IMMEDIATELY - Exceptional deal",
			"good":       "BOOK SOON - Good opportunity",
			"acceptable": "BOOK if in optimal window",
			"overpriced": "WAIT - Above target, continue monitoring",
		},
	}
}
