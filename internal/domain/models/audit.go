package models

import "time"

// AuditEvent is published after each completed execution for boundary
// observability. Nothing in the system reads these back.
type AuditEvent struct {
	Query        string      `json:"query"`
	Composition  Composition `json:"composition"`
	Assets       []string    `json:"assets"`
	SeriesLength int         `json:"series_length"`
	Iterations   int         `json:"iterations,omitempty"`
	Stable       bool        `json:"stable,omitempty"`
	DurationMS   int64       `json:"duration_ms"`
	Timestamp    time.Time   `json:"timestamp"`
}
