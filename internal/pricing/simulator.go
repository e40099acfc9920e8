package pricing

import (
	"math"
	"math/rand"
	"time"

	"github.com/blackwell-systems/farescout/internal/airports"
)

// Source supplies randomness to the simulator. Tests inject a deterministic
// implementation; production uses math/rand.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded math/rand-backed source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

const (
	baselineFare            = 150.0
	internationalMultiplier = 2.5
	roundTripMultiplier     = 1.8
	lateMultiplier          = 1.2
	veryLateMultiplier      = 1.5
	jitterMin               = 0.8
	jitterMax               = 1.3
)

// Simulator produces simulated fares for routes. It stands in for a live
// pricing backend; callers treat it as opaque.
type Simulator struct {
	table *airports.Table
	src   Source
	now   func() time.Time
}

// NewSimulator builds a simulator over the given airport table and random
// source.
func NewSimulator(table *airports.Table, src Source) *Simulator {
	return &Simulator{table: table, src: src, now: time.Now}
}

// WithNow overrides the clock, for tests.
func (s *Simulator) WithNow(now func() time.Time) *Simulator {
	s.now = now
	return s
}

// Rand exposes the simulator's random source for collaborators that need
// jitter from the same stream.
func (s *Simulator) Rand() Source {
	return s.src
}

// uniform returns a value in [lo, hi).
func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.src.Float64()*(hi-lo)
}

// BasePrice simulates a one-way fare for the route on the given date.
// International routes cost more; fares rise as the booking window closes.
func (s *Simulator) BasePrice(origin, destination string, departure time.Time) float64 {
	price := baselineFare

	originCountry := s.table.Country(origin)
	destCountry := s.table.Country(destination)
	if originCountry != "" && destCountry != "" && originCountry != destCountry {
		price *= internationalMultiplier
	}

	price *= s.uniform(jitterMin, jitterMax)

	switch BookingWindow(departure, s.now()).Status {
	case WindowVeryLate:
		price *= veryLateMultiplier
	case WindowLate:
		price *= lateMultiplier
	}

	return Round2(price)
}

// RoundTripPrice simulates a round-trip fare from a one-way base.
func (s *Simulator) RoundTripPrice(origin, destination string, departure time.Time) float64 {
	return Round2(s.BasePrice(origin, destination, departure) * roundTripMultiplier)
}

// Jitter scales price by a uniform factor in [lo, hi).
func (s *Simulator) Jitter(price, lo, hi float64) float64 {
	return Round2(price * s.uniform(lo, hi))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
