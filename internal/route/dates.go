package route

import (
	"fmt"
	"time"
)

// DateFormat is the canonical date layout used across reports and exports.
const DateFormat = "2006-01-02"

// dateLayouts are the accepted input layouts, tried in order.
var dateLayouts = []string{DateFormat, "02.01.2006", "02/01/2006"}

// ParseDate parses a date string in one of the supported layouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q", s)
}

// DaysUntil returns the whole days from now until t.
func DaysUntil(t time.Time, now time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}

// DateRange returns the list of consecutive dates starting at start.
func DateRange(start time.Time, days int) []time.Time {
	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}
