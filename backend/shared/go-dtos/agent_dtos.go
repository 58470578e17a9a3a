package dtos

import (
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
)

// Agent is the raw agent record as served by GET /agents*. It deliberately
// mirrors the stored row; presentation fields are derived client-side.
type Agent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	AgencyName string    `json:"agency_name"`
	Experience int       `json:"experience"`
	NationalID string    `json:"national_id,omitempty"`
	Address    string    `json:"address"`
	Attachment *string   `json:"attachment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewAgentFromModel creates an Agent DTO from a models.Agent.
func NewAgentFromModel(a models.Agent) Agent {
	return Agent{
		ID:         a.ID.String(),
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		AgencyName: a.AgencyName,
		Experience: a.ExperienceYears,
		NationalID: a.NationalID,
		Address:    a.Address,
		Attachment: a.Attachment,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// NewAgentsFromModels keeps order and never returns nil, so the JSON body is
// always an array.
func NewAgentsFromModels(in []*models.Agent) []Agent {
	out := make([]Agent, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		out = append(out, NewAgentFromModel(*a))
	}
	return out
}

// AgentsResponse is the body of the collection endpoints.
type AgentsResponse struct {
	Success bool    `json:"success"`
	Data    []Agent `json:"data"`
	Error   string  `json:"error,omitempty"`
}

// AgentResponse is the body of GET /agents/{id}.
type AgentResponse struct {
	Success bool   `json:"success"`
	Data    *Agent `json:"data"`
	Error   string `json:"error,omitempty"`
}
