package model

import "time"

// Run records a single execution of a catalog demo.
// This is a pure domain model with no database-specific dependencies or tags;
// it is shared across the HTTP, service, and repository layers.
type Run struct {
	ID        string    `json:"id"`
	Pattern   string    `json:"pattern"`
	Category  string    `json:"category"`
	Steps     int       `json:"steps"`
	TracePath string    `json:"trace_path"`
	CreatedAt time.Time `json:"created_at"`
}
