package controllers

import (
	"net/http"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/apiclient"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/routes"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/views"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

const msgSummaryFailed = "Failed to load dashboard data."

type AdminController struct {
	pages
	api *apiclient.Client
}

func NewAdminController(renderer *views.Renderer, sessions SessionStore, api *apiclient.Client) *AdminController {
	return &AdminController{
		pages: pages{renderer: renderer, sessions: sessions},
		api:   api,
	}
}

// DashboardHandler requires an admin session; everyone else is sent to the
// admin login page.
func (c *AdminController) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	sess := c.currentSession(r)
	if sess == nil || !sess.IsAdmin() {
		redirect(w, r, routes.AdminLogin)
		return
	}

	page := views.AdminPage{Base: views.Base{Title: "Dashboard", Session: sess}}
	var resp dtos.AdminSummaryResponse
	if err := c.api.WithToken(sess.APIToken).Get(r.Context(), "/admin/summary", &resp); err != nil {
		utils.Logger.WithError(err).WithField("user_id", sess.UserID).Warn("Failed to load admin summary")
		page.Error = apiclient.ServerMessage(err, msgSummaryFailed)
	} else {
		page.AgentCount = resp.AgentCount
	}
	c.renderer.Render(w, http.StatusOK, views.PageAdmin, page)
}
