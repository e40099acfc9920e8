package store

import (
	"time"

	"github.com/blackwell-systems/farescout/internal/tracking"
)

// ObservationRow is one logged price observation.
type ObservationRow struct {
	ID          int64     `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Platform    string    `json:"platform,omitempty"`
	SeenAt      time.Time `json:"seen_at"`
}

// InsertObservation logs a price observation for a route.
func (db *DB) InsertObservation(o *ObservationRow) (int64, error) {
	seenAt := o.SeenAt
	if seenAt.IsZero() {
		seenAt = time.Now()
	}
	result, err := db.conn.Exec(
		`INSERT INTO observations (origin, destination, price, currency, platform, seen_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		o.Origin, o.Destination, o.Price, o.Currency, o.Platform,
		seenAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetObservations returns all observations for a route, oldest first.
func (db *DB) GetObservations(origin, destination string) ([]ObservationRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, origin, destination, price, currency, platform, seen_at
		 FROM observations WHERE origin = ? AND destination = ? ORDER BY seen_at ASC`,
		origin, destination,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var obs []ObservationRow
	for rows.Next() {
		var o ObservationRow
		var seenAt string
		if err := rows.Scan(&o.ID, &o.Origin, &o.Destination, &o.Price, &o.Currency, &o.Platform, &seenAt); err != nil {
			return nil, err
		}
		o.SeenAt, _ = time.Parse(time.RFC3339, seenAt)
		obs = append(obs, o)
	}
	return obs, rows.Err()
}

// History converts a route's logged observations into the form the
// stability monitor consumes.
func (db *DB) History(origin, destination string) ([]tracking.Observation, error) {
	rows, err := db.GetObservations(origin, destination)
	if err != nil {
		return nil, err
	}
	history := make([]tracking.Observation, 0, len(rows))
	for _, o := range rows {
		history = append(history, tracking.Observation{Price: o.Price, Timestamp: o.SeenAt})
	}
	return history, nil
}
