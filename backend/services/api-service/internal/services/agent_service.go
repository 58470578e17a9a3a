package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// AgentService serves the public agent directory.
type AgentService interface {
	ListAll(ctx context.Context) ([]dtos.Agent, error)
	SearchByArea(ctx context.Context, area string) ([]dtos.Agent, error)
	SearchByProperty(ctx context.Context, query string) ([]dtos.Agent, error)
	GetByID(ctx context.Context, id string) (*dtos.Agent, error)
	Count(ctx context.Context) (int, error)
}

type agentService struct {
	repo repositories.AgentRepository
}

func NewAgentService(repo repositories.AgentRepository) AgentService {
	return &agentService{repo: repo}
}

func (s *agentService) ListAll(ctx context.Context) ([]dtos.Agent, error) {
	agents, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.NewAgentsFromModels(agents), nil
}

func (s *agentService) SearchByArea(ctx context.Context, area string) ([]dtos.Agent, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return s.ListAll(ctx)
	}
	agents, err := s.repo.SearchByArea(ctx, area)
	if err != nil {
		return nil, err
	}
	return dtos.NewAgentsFromModels(agents), nil
}

// SearchByProperty splits the query into terms; an agent matches when one
// of its listings contains all of them.
func (s *agentService) SearchByProperty(ctx context.Context, query string) ([]dtos.Agent, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return s.ListAll(ctx)
	}
	agents, err := s.repo.SearchByProperty(ctx, terms)
	if err != nil {
		return nil, err
	}
	return dtos.NewAgentsFromModels(agents), nil
}

func (s *agentService) GetByID(ctx context.Context, id string) (*dtos.Agent, error) {
	agentID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrAgentNotFound
	}
	agent, err := s.repo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, utils.ErrAgentNotFound
	}
	out := dtos.NewAgentFromModel(*agent)
	return &out, nil
}

func (s *agentService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
