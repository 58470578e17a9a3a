package controllers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/agents"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/featured"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/routes"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/session"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/views"
)

// SessionStore holds the signed-in visitor.
type SessionStore = session.Store[session.Session]

// pages is embedded by every controller that renders HTML.
type pages struct {
	renderer *views.Renderer
	sessions SessionStore
}

// currentSession is nil for anonymous visitors and expired sessions.
func (p pages) currentSession(r *http.Request) *session.Session {
	s, err := p.sessions.Get(r)
	if err != nil {
		return nil
	}
	if !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt) {
		return nil
	}
	return &s
}

func (p pages) base(r *http.Request, title string) views.Base {
	return views.Base{Title: title, Session: p.currentSession(r)}
}

func (p pages) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	p.renderer.Render(w, status, views.PageError, views.ErrorPage{
		Base:    p.base(r, http.StatusText(status)),
		Status:  status,
		Message: msg,
	})
}

// NotFoundHandler renders the 404 page for unmatched routes.
func (p pages) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, r, http.StatusNotFound, "Page not found")
}

func profileHref(a agents.Agent) string {
	if a.ID == "" {
		return ""
	}
	return routes.Agents + "/" + url.PathEscape(a.ID)
}

func contactHref(a agents.Agent) string {
	if a.Email == "" {
		return ""
	}
	return "mailto:" + a.Email
}

var cardActions = featured.CardActions{
	ViewProfile: profileHref,
	Contact:     contactHref,
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
