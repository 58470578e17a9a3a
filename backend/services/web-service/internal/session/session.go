package session

import (
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// Session is the signed-in visitor, created at login and dropped at logout
// or expiry.
type Session struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	APIToken  string    `json:"api_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) IsAdmin() bool {
	return s.Type == utils.AdminAccountType
}
