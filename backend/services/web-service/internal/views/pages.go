package views

import (
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/agents"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/featured"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/session"
)

// Base is embedded in every page.
type Base struct {
	Title   string
	Session *session.Session
}

type HomePage struct {
	Base
	Area  string
	View  featured.View
	Cards []featured.Card
}

type DirectoryPage struct {
	Base
	Query  string
	Intent string
	View   featured.View
	Cards  []featured.Card
}

type ProfilePage struct {
	Base
	Agent      agents.Agent
	RatingText string
	ContactURL string
	Related    []featured.Card
}

type LoginPage struct {
	Base
	Heading   string
	Action    string
	AdminOnly bool
	Email     string
	Error     string
}

type AdminPage struct {
	Base
	AgentCount int
	Error      string
}

type ResetPage struct {
	Base
	RequestStep   bool
	ResetStep     bool
	Done          bool
	Email         string
	Message       string
	Error         string
	RedirectTo    string
	RedirectAfter time.Duration
}

type ErrorPage struct {
	Base
	Status  int
	Message string
}
