package database

import "time"

// ComputeHistory is one audit row for a request served by the
// compute endpoint — the descendant of the teacher's Luminaire/
// PhotometricData tables, reduced to operational telemetry since this
// system has no luminaire catalog to persist.
type ComputeHistory struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	Units            string    `json:"units"`
	IlluminanceUnits string    `json:"illuminance_units"`
	PointCount       int       `json:"point_count"`
	LevelCount       int       `json:"level_count"`
	DurationMs       int64     `json:"duration_ms"`
	Succeeded        bool      `json:"succeeded"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
