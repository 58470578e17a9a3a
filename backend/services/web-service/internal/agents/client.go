package agents

import (
	"context"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/apiclient"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/placeholder"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

const (
	pathAgents           = "/agents"
	pathAgentsByArea     = "/agents/search/"
	pathAgentsByProperty = "/agents/by-property/"
)

// Query is a directory search. Blank Text lists every agent.
type Query struct {
	Text   string
	Intent Intent
}

// Client fetches agents from the API and normalizes them. Failures never
// surface as errors: list calls yield an empty slice and FetchAgentByID nil.
type Client struct {
	api          *apiclient.Client
	placeholders placeholder.Source
}

// NewClient uses a Random placeholder source when src is nil.
func NewClient(api *apiclient.Client, src placeholder.Source) *Client {
	if src == nil {
		src = placeholder.NewRandom()
	}
	return &Client{api: api, placeholders: src}
}

func (c *Client) FetchAllAgents(ctx context.Context) []Agent {
	return c.fetchList(ctx, pathAgents, "")
}

// FetchAgentsByArea is FetchAgents with IntentAuto.
func (c *Client) FetchAgentsByArea(ctx context.Context, query string) []Agent {
	return c.FetchAgents(ctx, Query{Text: query, Intent: IntentAuto})
}

func (c *Client) FetchAgents(ctx context.Context, q Query) []Agent {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return c.FetchAllAgents(ctx)
	}

	intent := q.Intent
	if intent == IntentAuto {
		intent = ClassifyQuery(text)
	}

	path := pathAgentsByArea + url.PathEscape(text)
	if intent == IntentProperty {
		path = pathAgentsByProperty + url.PathEscape(text)
	}
	return c.fetchList(ctx, path, text)
}

func (c *Client) FetchAgentByID(ctx context.Context, id string) *Agent {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	var resp dtos.AgentResponse
	path := pathAgents + "/" + url.PathEscape(id)
	if err := c.api.Get(ctx, path, &resp); err != nil {
		utils.Logger.WithError(err).WithField("path", path).Warn("Failed to fetch agent")
		return nil
	}
	if !resp.Success || resp.Data == nil {
		utils.Logger.WithFields(logrus.Fields{"path": path, "error": resp.Error}).Warn("Agent lookup unsuccessful")
		return nil
	}

	a := normalizeOne(*resp.Data, "", c.placeholders)
	return &a
}

func (c *Client) fetchList(ctx context.Context, path, query string) []Agent {
	var resp dtos.AgentsResponse
	if err := c.api.Get(ctx, path, &resp); err != nil {
		utils.Logger.WithError(err).WithField("path", path).Warn("Failed to fetch agents")
		return []Agent{}
	}
	if !resp.Success || resp.Data == nil {
		utils.Logger.WithFields(logrus.Fields{"path": path, "error": resp.Error}).Warn("Agent listing unsuccessful")
		return []Agent{}
	}
	return Normalize(resp.Data, query, c.placeholders)
}
