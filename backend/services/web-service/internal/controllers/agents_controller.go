package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/agents"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/featured"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/views"
)

const relatedAgentsLimit = featured.DefaultLimit

var errAgentMissing = errors.New("agent not found")

type AgentsController struct {
	pages
	client *agents.Client
}

func NewAgentsController(renderer *views.Renderer, sessions SessionStore, client *agents.Client) *AgentsController {
	return &AgentsController{
		pages:  pages{renderer: renderer, sessions: sessions},
		client: client,
	}
}

// intentFetcher pins the directory's search intent onto a featured.Fetcher.
type intentFetcher struct {
	client *agents.Client
	intent agents.Intent
}

func (f intentFetcher) FetchAllAgents(ctx context.Context) []agents.Agent {
	return f.client.FetchAllAgents(ctx)
}

func (f intentFetcher) FetchAgentsByArea(ctx context.Context, text string) []agents.Agent {
	return f.client.FetchAgents(ctx, agents.Query{Text: text, Intent: f.intent})
}

// DirectoryHandler lists every matching agent for ?q= and ?intent=.
func (c *AgentsController) DirectoryHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	intent := agents.ParseIntent(r.URL.Query().Get("intent"))

	section := featured.NewSection(intentFetcher{client: c.client, intent: intent}, 0)
	view := section.Load(r.Context(), q)

	c.renderer.Render(w, http.StatusOK, views.PageDirectory, views.DirectoryPage{
		Base:   c.base(r, "Agents"),
		Query:  q,
		Intent: intent.String(),
		View:   view,
		Cards:  view.Cards(cardActions),
	})
}

// ProfileHandler loads the agent and the full list side by side; the list
// supplies other agents working the same area.
func (c *AgentsController) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var (
		agent *agents.Agent
		all   []agents.Agent
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		agent = c.client.FetchAgentByID(ctx, id)
		if agent == nil {
			return errAgentMissing
		}
		return nil
	})
	g.Go(func() error {
		all = c.client.FetchAllAgents(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		c.renderError(w, r, http.StatusNotFound, "Agent not found")
		return
	}

	related := featured.View{State: featured.StateLoaded, Agents: relatedAgents(*agent, all)}
	c.renderer.Render(w, http.StatusOK, views.PageProfile, views.ProfilePage{
		Base:       c.base(r, agent.Name),
		Agent:      *agent,
		RatingText: fmt.Sprintf("%.1f", agent.Rating),
		ContactURL: contactHref(*agent),
		Related:    related.Cards(cardActions),
	})
}

func relatedAgents(agent agents.Agent, all []agents.Agent) []agents.Agent {
	area := strings.TrimSpace(agent.Area)
	if area == "" {
		return nil
	}
	var out []agents.Agent
	for _, a := range all {
		if a.ID == agent.ID || !strings.EqualFold(strings.TrimSpace(a.Area), area) {
			continue
		}
		out = append(out, a)
		if len(out) == relatedAgentsLimit {
			break
		}
	}
	return out
}
