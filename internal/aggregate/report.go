package aggregate

import "time"

// FieldStats holds the windowed extrema and mean of one numeric field.
// All three are NaN when the window is empty.
type FieldStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// SummaryReport describes the records inside a trailing time window.
// An empty window leaves every stat NaN, which encoding/json rejects;
// adapters check Count before serializing.
type SummaryReport struct {
	Count             int                   `json:"count"`
	TotalMeasurements int                   `json:"total_measurements"`
	WindowMinutes     int                   `json:"window_minutes"`
	HealthyRatio      float64               `json:"healthy_ratio"`
	LastUpdated       time.Time             `json:"last_updated"`
	Stats             map[string]FieldStats `json:"stats"`
}

// AverageReport carries the arithmetic mean of every numeric field
// over a trailing time window.
type AverageReport struct {
	Timestamp     time.Time          `json:"timestamp"`
	Count         int                `json:"count"`
	WindowMinutes int                `json:"window_minutes"`
	Means         map[string]float64 `json:"means"`
}
