package models

import (
	"time"

	"github.com/google/uuid"
)

// User is any account that can sign in to the marketplace.
type User struct {
	Versioned

	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON

	// Type is one of utils.AdminAccountType, AgentAccountType, UserAccountType.
	Type string `json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) GetID() string {
	return u.ID.String()
}

func (u *User) IsAdmin() bool {
	return u.Type == "admin"
}
