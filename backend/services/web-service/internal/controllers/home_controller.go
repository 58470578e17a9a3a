package controllers

import (
	"net/http"
	"strings"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/featured"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/views"
)

type HomeController struct {
	pages
	fetcher featured.Fetcher
	limit   int
}

func NewHomeController(renderer *views.Renderer, sessions SessionStore, fetcher featured.Fetcher, limit int) *HomeController {
	return &HomeController{
		pages:   pages{renderer: renderer, sessions: sessions},
		fetcher: fetcher,
		limit:   limit,
	}
}

// HomeHandler features up to limit agents, narrowed by ?area= when given.
func (c *HomeController) HomeHandler(w http.ResponseWriter, r *http.Request) {
	area := strings.TrimSpace(r.URL.Query().Get("area"))
	view := featured.NewSection(c.fetcher, c.limit).Load(r.Context(), area)

	c.renderer.Render(w, http.StatusOK, views.PageHome, views.HomePage{
		Base:  c.base(r, ""),
		Area:  area,
		View:  view,
		Cards: view.Cards(cardActions),
	})
}
