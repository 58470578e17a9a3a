package agents

import (
	"strings"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/avatar"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/placeholder"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-dtos"
)

// Agent is the presentation record the site renders. It is rebuilt from the
// raw API record on every fetch.
type Agent struct {
	ID         string
	Name       string
	Agency     string
	Email      string
	Phone      string
	Avatar     string
	Experience int
	Properties int
	Rating     float64
	Reviews    int
	Verified   bool
	Area       string
}

// Normalize maps raw records one-to-one, in order. Area falls back to query
// when the record has no address. Rating, Reviews and Properties come from src.
func Normalize(raw []dtos.Agent, query string, src placeholder.Source) []Agent {
	out := make([]Agent, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeOne(r, query, src))
	}
	return out
}

func normalizeOne(r dtos.Agent, query string, src placeholder.Source) Agent {
	area := r.Address
	if strings.TrimSpace(area) == "" {
		area = query
	}
	p := src.Next()
	return Agent{
		ID:         r.ID,
		Name:       r.Name,
		Agency:     r.AgencyName,
		Email:      r.Email,
		Phone:      r.Phone,
		Avatar:     avatar.URL(r.Name),
		Experience: r.Experience,
		Properties: p.Properties,
		Rating:     p.Rating,
		Reviews:    p.Reviews,
		Verified:   true,
		Area:       area,
	}
}
