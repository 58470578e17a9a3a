package controllers

import (
	"net/http"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/services"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

type AdminController struct {
	agentService services.AgentService
}

func NewAdminController(agentService services.AgentService) *AdminController {
	return &AdminController{agentService: agentService}
}

// SummaryHandler serves GET /admin/summary behind AdminAuthMiddleware.
func (c *AdminController) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	count, err := c.agentService.Count(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load summary", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AdminSummaryResponse{Success: true, AgentCount: count})
}
