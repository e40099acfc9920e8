package historical

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/farescout/internal/route"
)

// DayPattern describes one group of week days with a pricing effect.
type DayPattern struct {
	Days   []string `json:"days"`
	Reason string   `json:"reason"`
	Effect string   `json:"effect"`
}

// DayOfWeekPatterns groups the best and worst days to book and to fly.
type DayOfWeekPatterns struct {
	BestDaysToBook  DayPattern `json:"best_days_to_book"`
	WorstDaysToBook DayPattern `json:"worst_days_to_book"`
	BestDaysToFly   DayPattern `json:"best_days_to_fly"`
	WorstDaysToFly  DayPattern `json:"worst_days_to_fly"`
}

var dayPatterns = DayOfWeekPatterns{
	BestDaysToBook: DayPattern{
		Days:   []string{"Tuesday", "Wednesday", "Thursday"},
		Reason: "Airlines often release sales Monday evening, prices adjust Tuesday",
		Effect: "5-10%",
	},
	WorstDaysToBook: DayPattern{
		Days:   []string{"Friday", "Saturday", "Sunday"},
		Reason: "Weekend leisure demand, fewer business sales",
		Effect: "5-15%",
	},
	BestDaysToFly: DayPattern{
		Days:   []string{"Tuesday", "Wednesday", "Saturday"},
		Reason: "Lower demand = lower prices",
		Effect: "10-20%",
	},
	WorstDaysToFly: DayPattern{
		Days:   []string{"Friday", "Sunday"},
		Reason: "Business and weekend travelers create high demand",
		Effect: "15-30%",
	},
}

// AlternativeDay is a nearby date that falls on a cheaper weekday.
type AlternativeDay struct {
	Date   string `json:"date"`
	Day    string `json:"day"`
	Offset int    `json:"offset"`
}

// DaySlot evaluates one date against the weekday patterns.
type DaySlot struct {
	Day            string           `json:"day"`
	IsOptimal      bool             `json:"is_optimal"`
	IsExpensive    bool             `json:"is_expensive"`
	ExpectedImpact string           `json:"expected_impact"`
	Alternatives   []AlternativeDay `json:"better_alternatives,omitempty"`
}

// DayAnalysis evaluates the departure and booking weekdays.
type DayAnalysis struct {
	Departure      DaySlot           `json:"departure_analysis"`
	Booking        DaySlot           `json:"booking_analysis"`
	Patterns       DayOfWeekPatterns `json:"patterns"`
	Recommendation string            `json:"recommendation"`
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// DayOfWeek analyzes the departure and booking dates against the weekday
// pricing patterns. The booking date defaults to the analyzer clock.
func (a *Analyzer) DayOfWeek(departure time.Time, booking *time.Time) DayAnalysis {
	bookDate := a.now()
	if booking != nil {
		bookDate = *booking
	}

	depDay := departure.Weekday().String()
	bookDay := bookDate.Weekday().String()

	goodDep := containsDay(dayPatterns.BestDaysToFly.Days, depDay)
	badDep := containsDay(dayPatterns.WorstDaysToFly.Days, depDay)
	goodBook := containsDay(dayPatterns.BestDaysToBook.Days, bookDay)
	badBook := containsDay(dayPatterns.WorstDaysToBook.Days, bookDay)

	alternatives := betterDays(departure, dayPatterns.BestDaysToFly.Days)

	return DayAnalysis{
		Departure: DaySlot{
			Day:            depDay,
			IsOptimal:      goodDep,
			IsExpensive:    badDep,
			ExpectedImpact: dayImpact(depDay, true),
			Alternatives:   alternatives,
		},
		Booking: DaySlot{
			Day:            bookDay,
			IsOptimal:      goodBook,
			IsExpensive:    badBook,
			ExpectedImpact: dayImpact(bookDay, false),
		},
		Patterns:       dayPatterns,
		Recommendation: dayRecommendation(goodDep, goodBook, alternatives),
	}
}

// betterDays scans ±3 days around the target for cheaper weekdays, keeping
// at most three.
func betterDays(target time.Time, goodDays []string) []AlternativeDay {
	var alternatives []AlternativeDay
	for _, offset := range []int{-3, -2, -1, 1, 2, 3} {
		alt := target.AddDate(0, 0, offset)
		if containsDay(goodDays, alt.Weekday().String()) {
			alternatives = append(alternatives, AlternativeDay{
				Date:   alt.Format(route.DateFormat),
				Day:    alt.Weekday().String(),
				Offset: offset,
			})
		}
	}
	if len(alternatives) > 3 {
		alternatives = alternatives[:3]
	}
	return alternatives
}

func dayImpact(day string, flying bool) string {
	if flying {
		if containsDay(dayPatterns.BestDaysToFly.Days, day) {
			return "-" + dayPatterns.BestDaysToFly.Effect
		}
		if containsDay(dayPatterns.WorstDaysToFly.Days, day) {
			return "+" + dayPatterns.WorstDaysToFly.Effect
		}
		return "0%"
	}
	if containsDay(dayPatterns.BestDaysToBook.Days, day) {
		return "-" + dayPatterns.BestDaysToBook.Effect
	}
	if containsDay(dayPatterns.WorstDaysToBook.Days, day) {
		return "+" + dayPatterns.WorstDaysToBook.Effect
	}
	return "0%"
}

func dayRecommendation(goodDep, goodBook bool, alternatives []AlternativeDay) string {
	switch {
	case goodDep && goodBook:
		return "✓ Optimal - Both departure and booking days are ideal"
	case goodDep:
		return "✓ Good departure day, consider booking on Tuesday/Wednesday if possible"
	case len(alternatives) > 0:
		alt := alternatives[0]
		return fmt.Sprintf("Consider flying on %s (%s) instead for better pricing", alt.Day, alt.Date)
	default:
		return "Current day has higher demand. Monitor prices and book during Tuesday-Thursday if possible"
	}
}

// Season describes a demand season with its price multiplier.
type Season struct {
	Name           string  `json:"name"`
	Months         []int   `json:"months,omitempty"`
	Multiplier     float64 `json:"multiplier"`
	BookingAdvance string  `json:"booking_advance"`
	Note           string  `json:"note"`
}

var peakSeasons = []Season{
	{
		Name: "Summer (Jun-Aug)", Months: []int{6, 7, 8}, Multiplier: 1.3,
		BookingAdvance: "Book 3-6 months ahead",
		Note:           "Highest demand, prices 30% above average",
	},
	{
		Name: "Christmas/New Year (Dec 20 - Jan 5)", Months: []int{12, 1}, Multiplier: 1.4,
		BookingAdvance: "Book 4-6 months ahead",
		Note:           "Peak holiday travel, prices 40% above average",
	},
	{
		Name: "Easter Week", Months: []int{3, 4}, Multiplier: 1.2,
		BookingAdvance: "Book 2-3 months ahead",
		Note:           "Spring break demand",
	},
}

var offPeakSeasons = []Season{
	{
		Name: "Late Winter (Jan 15 - Mar 15)", Months: []int{1, 2, 3}, Multiplier: 0.75,
		BookingAdvance: "Book 1-2 months ahead",
		Note:           "Lowest demand, best deals",
	},
	{
		Name: "Fall (Sep - Nov)", Months: []int{9, 10, 11}, Multiplier: 0.85,
		BookingAdvance: "Book 1-3 months ahead",
		Note:           "Good prices after summer rush",
	},
}

// identifySeason matches the month against peak seasons first, then
// off-peak, defaulting to a neutral shoulder season.
func identifySeason(month int) Season {
	for _, s := range peakSeasons {
		for _, m := range s.Months {
			if m == month {
				return s
			}
		}
	}
	for _, s := range offPeakSeasons {
		for _, m := range s.Months {
			if m == month {
				return s
			}
		}
	}
	return Season{
		Name:           "Shoulder Season",
		Multiplier:     1.0,
		BookingAdvance: "Book 1-2 months ahead",
		Note:           "Moderate demand",
	}
}

// PriceImpact quantifies the seasonal multiplier with a worked example.
type PriceImpact struct {
	Multiplier      float64 `json:"multiplier"`
	VsAverage       string  `json:"vs_average"`
	ExampleBase     float64 `json:"example_base"`
	ExampleSeasonal float64 `json:"example_seasonal"`
}

// SeasonalAnalysis places the departure date in its demand season.
type SeasonalAnalysis struct {
	DepartureDate string      `json:"departure_date"`
	Month         string      `json:"month"`
	Season        Season      `json:"season"`
	PriceImpact   PriceImpact `json:"price_impact"`
	BookingAdvice string      `json:"booking_advice"`
	PeakSeasons   []Season    `json:"peak_seasons"`
	OffPeak       []Season    `json:"off_peak_seasons"`
}

// seasonalExampleBase is the reference fare used to illustrate the
// multiplier.
const seasonalExampleBase = 300.0

// Seasonal analyzes the seasonal pricing pattern for a departure date.
func (a *Analyzer) Seasonal(departure time.Time) SeasonalAnalysis {
	season := identifySeason(int(departure.Month()))

	return SeasonalAnalysis{
		DepartureDate: departure.Format(route.DateFormat),
		Month:         departure.Month().String(),
		Season:        season,
		PriceImpact: PriceImpact{
			Multiplier:      season.Multiplier,
			VsAverage:       fmt.Sprintf("%+.0f%%", (season.Multiplier-1)*100),
			ExampleBase:     seasonalExampleBase,
			ExampleSeasonal: seasonalExampleBase * season.Multiplier,
		},
		BookingAdvice: season.BookingAdvance,
		PeakSeasons:   peakSeasons,
		OffPeak:       offPeakSeasons,
	}
}

// ResetEvent is one recurring fare update window.
type ResetEvent struct {
	Time        string `json:"time,omitempty"`
	Timing      string `json:"timing,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	WhatHappens string `json:"what_happens"`
	Opportunity string `json:"opportunity"`
}

// FareResets lists when airlines typically update fares and release
// inventory.
type FareResets struct {
	DailyResets       []ResetEvent `json:"daily_resets"`
	WeeklyResets      []ResetEvent `json:"weekly_resets"`
	InventoryReleases []ResetEvent `json:"inventory_releases"`
	BestSearchTimes   []string     `json:"best_search_times"`
}

// FareResetTimes returns the recurring fare update and inventory release
// schedule.
func FareResetTimes() FareResets {
	return FareResets{
		DailyResets: []ResetEvent{
			{
				Time: "12:00 AM - 2:00 AM EST", Frequency: "Daily",
				WhatHappens: "Automated fare updates, expired sales removed",
				Opportunity: "New inventory released at base fares",
			},
			{
				Time: "3:00 AM - 5:00 AM Local", Frequency: "Daily",
				WhatHappens: "Regional fare adjustments",
				Opportunity: "Catch pricing errors before correction",
			},
		},
		WeeklyResets: []ResetEvent{
			{
				Time: "Monday 5:00 PM - 11:59 PM EST", Frequency: "Weekly",
				WhatHappens: "Airlines release weekend sales",
				Opportunity: "New sale fares available",
			},
			{
				Time: "Tuesday 3:00 PM EST", Frequency: "Weekly",
				WhatHappens: "Competitors match Monday sales",
				Opportunity: "Best time to find matching lower prices",
			},
		},
		InventoryReleases: []ResetEvent{
			{
				Timing:      "330 days before departure",
				WhatHappens: "Initial schedule release",
				Opportunity: "Early bird fares (not always cheapest)",
			},
			{
				Timing:      "90-120 days before departure",
				WhatHappens: "Major inventory release",
				Opportunity: "Optimal pricing for most routes",
			},
			{
				Timing:      "21-30 days before departure",
				WhatHappens: "Inventory assessment and repricing",
				Opportunity: "Last chance for good deals before last-minute surge",
			},
			{
				Timing:      "7 days before departure",
				WhatHappens: "Last-minute premium pricing",
				Opportunity: "Only for unsold inventory on unpopular routes",
			},
		},
		BestSearchTimes: []string{
			"Tuesday 3:00 PM EST (weekly low point)",
			"Wednesday 12:00 PM EST (mid-week stability)",
			"Sunday 5:00 AM EST (weekend fare updates)",
		},
	}
}
