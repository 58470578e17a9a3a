package app

import (
	"fmt"
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/agents"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/apiclient"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/config"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/login"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/passwordreset"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/placeholder"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/session"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/views"
)

const (
	sessionCookieName = "estatehub_session"
	resetCookieName   = "estatehub_reset"

	// resetStateTTL bounds how long a half-finished reset wizard is remembered.
	resetStateTTL = 1 * time.Hour
)

// App holds the frontend's long-lived dependencies.
type App struct {
	Config      *config.Config
	API         *apiclient.Client
	Agents      *agents.Client
	Renderer    *views.Renderer
	Sessions    *session.CookieStore[session.Session]
	ResetStates *session.CookieStore[passwordreset.State]
	UserLogin   *login.Form
	AdminLogin  *login.Form
}

// NewApp wires the API client, templates and cookie stores. A nil
// placeholder source falls back to random values.
func NewApp(cfg *config.Config, src placeholder.Source) (*App, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if src == nil {
		src = placeholder.NewRandom()
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	return &App{
		Config:      cfg,
		API:         api,
		Agents:      agents.NewClient(api, src),
		Renderer:    renderer,
		Sessions:    session.NewCookieStore[session.Session](sessionCookieName, cfg.SessionKey, cfg.SessionTTL, cfg.LDFlag_SecureCookies),
		ResetStates: session.NewCookieStore[passwordreset.State](resetCookieName, cfg.SessionKey, resetStateTTL, cfg.LDFlag_SecureCookies),
		UserLogin:   login.NewForm(api, false, cfg.SessionTTL),
		AdminLogin:  login.NewForm(api, true, cfg.SessionTTL),
	}, nil
}
