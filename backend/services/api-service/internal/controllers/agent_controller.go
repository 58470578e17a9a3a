package controllers

import (
	"net/http"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/api-service/internal/services"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

type AgentController struct {
	agentService services.AgentService
}

func NewAgentController(agentService services.AgentService) *AgentController {
	return &AgentController{agentService: agentService}
}

// ListAgentsHandler serves GET /agents.
func (c *AgentController) ListAgentsHandler(w http.ResponseWriter, r *http.Request) {
	agents, err := c.agentService.ListAll(r.Context())
	c.respondList(w, agents, err)
}

// SearchByAreaHandler serves GET /agents/search/{area}.
func (c *AgentController) SearchByAreaHandler(w http.ResponseWriter, r *http.Request) {
	agents, err := c.agentService.SearchByArea(r.Context(), pathVar(r, "area"))
	c.respondList(w, agents, err)
}

// SearchByPropertyHandler serves GET /agents/by-property/{query}.
func (c *AgentController) SearchByPropertyHandler(w http.ResponseWriter, r *http.Request) {
	agents, err := c.agentService.SearchByProperty(r.Context(), pathVar(r, "query"))
	c.respondList(w, agents, err)
}

// GetAgentHandler serves GET /agents/{id}.
func (c *AgentController) GetAgentHandler(w http.ResponseWriter, r *http.Request) {
	agent, err := c.agentService.GetByID(r.Context(), pathVar(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AgentResponse{Success: true, Data: agent})
}

func (c *AgentController) respondList(w http.ResponseWriter, agents []dtos.Agent, err error) {
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load agents", err)
		return
	}
	if agents == nil {
		agents = []dtos.Agent{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AgentsResponse{Success: true, Data: agents})
}
