// Package route defines the core route and priced-option value types shared
// by all analyzers, plus request validation and date parsing.
package route

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Type tags describe how a priced option was constructed.
const (
	TypeDirect        = "direct"
	TypeHiddenCity    = "hidden_city"
	TypeNearbyAirport = "nearby_airport"
	TypeMultiLegSplit = "multi_leg_split"
)

// Request is a validated analysis request. Airport codes must be 3-letter
// IATA identifiers; the departure date must precede the return date when a
// return date is present.
type Request struct {
	Origin      string     `json:"origin" validate:"required,len=3,alpha"`
	Destination string     `json:"destination" validate:"required,len=3,alpha"`
	Departure   time.Time  `json:"departure" validate:"required"`
	Return      *time.Time `json:"return,omitempty"`
	TargetPrice float64    `json:"target_price,omitempty" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks the request's structural invariants.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	if r.Return != nil && !r.Departure.Before(*r.Return) {
		return fmt.Errorf("invalid request: departure %s is not before return %s",
			r.Departure.Format(DateFormat), r.Return.Format(DateFormat))
	}
	return nil
}

// RoundTrip reports whether the request has a return date.
func (r Request) RoundTrip() bool {
	return r.Return != nil
}

// Leg is one flight segment within a priced option.
type Leg struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Departure   string  `json:"departure"`
	Airline     string  `json:"airline,omitempty"`
	Price       float64 `json:"price,omitempty"`
	BookingType string  `json:"booking_type,omitempty"`
	Skipped     bool    `json:"skipped,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// Option is an immutable priced routing variant. Constructed once by the
// search engine; read-only afterward.
type Option struct {
	Origin       string            `json:"origin"`
	Destination  string            `json:"destination"`
	Departure    string            `json:"departure_date"`
	Return       string            `json:"return_date,omitempty"`
	Price        float64           `json:"price"`
	Currency     string            `json:"currency"`
	RouteType    string            `json:"route_type"`
	Legs         []Leg             `json:"legs"`
	Description  string            `json:"route_description,omitempty"`
	BookingLinks map[string]string `json:"booking_links,omitempty"`
}

// PriceDiff describes the difference between two prices.
type PriceDiff struct {
	Absolute   float64 `json:"absolute"`
	Percentage float64 `json:"percentage"`
	Cheaper    bool    `json:"cheaper"`
}

// ComparePrices computes the difference of a against baseline b.
func ComparePrices(a, b float64) PriceDiff {
	diff := a - b
	pct := 0.0
	if b > 0 {
		pct = diff / b * 100
	}
	return PriceDiff{Absolute: diff, Percentage: pct, Cheaper: a < b}
}

// FormatDuration renders a duration in minutes as "2h 5m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
