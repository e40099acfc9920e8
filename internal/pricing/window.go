// Package pricing simulates base fares from static tables with an injectable
// random source, so behavior is reproducible in tests and the simulator can
// later be swapped for a real pricing backend.
package pricing

import "time"

// Booking window statuses, from earliest to latest.
const (
	WindowTooEarly = "too_early"
	WindowGood     = "good"
	WindowOptimal  = "optimal"
	WindowLate     = "late"
	WindowVeryLate = "very_late"
)

// Window describes where a departure date sits relative to the general
// booking-window heuristics.
type Window struct {
	Status             string `json:"status"`
	Recommendation     string `json:"recommendation"`
	OptimalDaysBefore  [2]int `json:"optimal_days_before"`
	DaysUntilDeparture int    `json:"days_until_departure"`
}

// BookingWindow classifies the departure date against the general
// days-until-departure tiers.
func BookingWindow(departure, now time.Time) Window {
	days := int(departure.Sub(now).Hours() / 24)
	w := Window{DaysUntilDeparture: days}

	switch {
	case days > 180:
		w.Status = WindowTooEarly
		w.Recommendation = "Wait until 2-3 months before departure"
		w.OptimalDaysBefore = [2]int{60, 90}
	case days > 90:
		w.Status = WindowGood
		w.Recommendation = "Good time to book, prices stable"
		w.OptimalDaysBefore = [2]int{60, 90}
	case days > 21:
		w.Status = WindowOptimal
		w.Recommendation = "Optimal booking window"
		w.OptimalDaysBefore = [2]int{21, 90}
	case days > 7:
		w.Status = WindowLate
		w.Recommendation = "Book soon, prices may increase"
		w.OptimalDaysBefore = [2]int{7, 21}
	default:
		w.Status = WindowVeryLate
		w.Recommendation = "Last minute - expect high prices"
		w.OptimalDaysBefore = [2]int{0, 7}
	}
	return w
}
