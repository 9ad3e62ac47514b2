package models

import "time"

// DateLayout is the canonical day key used for per-day rows
// (drill selections, regulation reports, wellness answers).
const DateLayout = "2006-01-02"

// DateOf returns the day key for a timestamp, in UTC.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

type Athlete struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	Tier      Tier      `json:"tier"`
	WeightLbs float64   `json:"weight_lbs"`
	CreatedAt time.Time `json:"created_at"`
}
