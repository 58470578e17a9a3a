package models

import (
	"time"

	"github.com/google/uuid"
)

// Agent is a listed real-estate professional as stored in the agents table.
type Agent struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	AgencyName      string    `json:"agency_name"`
	ExperienceYears int       `json:"experience"`
	NationalID      string    `json:"national_id"`
	Address         string    `json:"address"`

	// Attachment is an opaque reference to an uploaded licence/ID scan.
	Attachment *string `json:"attachment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
