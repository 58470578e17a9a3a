// Package featured holds the state behind an agent grid: which request is
// current, whether it has resolved, and what to show.
package featured

import (
	"context"
	"strings"
	"sync"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/agents"
)

// DefaultLimit is how many agents the home page features.
const DefaultLimit = 4

// Fetcher is the subset of agents.Client a Section needs.
type Fetcher interface {
	FetchAllAgents(ctx context.Context) []agents.Agent
	FetchAgentsByArea(ctx context.Context, area string) []agents.Agent
}

// State is exactly one of loading, empty or loaded.
type State int

const (
	StateLoading State = iota
	StateEmpty
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	default:
		return "loading"
	}
}

// View is a snapshot of a Section.
type View struct {
	State  State
	Area   string
	Agents []agents.Agent
}

// Section tracks one agent grid. Every SetArea issues a tagged request and
// only the most recently issued one may update the view; older responses
// are dropped when they land.
type Section struct {
	fetcher Fetcher
	limit   int

	mu     sync.Mutex
	seq    uint64
	state  State
	area   string
	agents []agents.Agent
}

// NewSection shows at most limit agents; limit <= 0 shows all of them.
func NewSection(fetcher Fetcher, limit int) *Section {
	return &Section{fetcher: fetcher, limit: limit, state: StateLoading}
}

// SetArea starts exactly one fetch for area (blank means every agent). The
// returned channel is closed once that fetch has resolved, whether or not
// its result was applied.
func (s *Section) SetArea(ctx context.Context, area string) <-chan struct{} {
	s.mu.Lock()
	s.seq++
	tag := s.seq
	s.state = StateLoading
	s.area = area
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		var result []agents.Agent
		if strings.TrimSpace(area) == "" {
			result = s.fetcher.FetchAllAgents(ctx)
		} else {
			result = s.fetcher.FetchAgentsByArea(ctx, area)
		}
		s.apply(tag, result)
	}()
	return done
}

// Load is SetArea followed by waiting for it.
func (s *Section) Load(ctx context.Context, area string) View {
	<-s.SetArea(ctx, area)
	return s.View()
}

func (s *Section) apply(tag uint64, result []agents.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tag != s.seq {
		return
	}
	s.agents = result
	if len(result) == 0 {
		s.state = StateEmpty
	} else {
		s.state = StateLoaded
	}
}

func (s *Section) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{State: s.state, Area: s.area}
	if s.state != StateLoaded {
		return v
	}
	n := len(s.agents)
	if s.limit > 0 && n > s.limit {
		n = s.limit
	}
	v.Agents = append([]agents.Agent(nil), s.agents[:n]...)
	return v
}

// Cards renders the current view's agents.
func (s *Section) Cards(actions CardActions) []Card {
	return s.View().Cards(actions)
}

func (v View) IsLoading() bool { return v.State == StateLoading }
func (v View) IsEmpty() bool   { return v.State == StateEmpty }
func (v View) IsLoaded() bool  { return v.State == StateLoaded }
