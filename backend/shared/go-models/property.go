package models

import (
	"time"

	"github.com/google/uuid"
)

// Property is a listing owned by an agent. Only the by-property agent search
// reads it.
type Property struct {
	ID           uuid.UUID `json:"id"`
	AgentID      uuid.UUID `json:"agent_id"`
	Title        string    `json:"title"`
	PropertyType string    `json:"property_type"`
	Location     string    `json:"location"`
	Bedrooms     int       `json:"bedrooms"`
	Size         float64   `json:"size"`
	SizeUnit     string    `json:"size_unit"` // marla, kanal, sqft
	CreatedAt    time.Time `json:"created_at"`
}
