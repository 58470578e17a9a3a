// Package views renders the site's HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageHome      = "home.html"
	PageDirectory = "agents.html"
	PageProfile   = "agent.html"
	PageLogin     = "login.html"
	PageAdmin     = "admin.html"
	PageReset     = "forgot_password.html"
	PageError     = "error.html"
)

var pageNames = []string{PageHome, PageDirectory, PageProfile, PageLogin, PageAdmin, PageReset, PageError}

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"seconds": func(d time.Duration) int {
		return int(d.Round(time.Second) / time.Second)
	},
}

// Renderer holds one parsed template set per page, each layered on the
// shared layout and partials.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes page with status. The page is rendered to a buffer first so
// a template error still yields a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := r.pages[page]
	if !ok {
		utils.Logger.Errorf("Unknown page template %q", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to render %s", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
