package featured

import (
	"fmt"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/services/web-service/internal/agents"
)

// CardActions are supplied by the page. A nil func leaves that action off
// the card.
type CardActions struct {
	ViewProfile func(agents.Agent) string
	Contact     func(agents.Agent) string
}

// Card is one agent tile ready for the template.
type Card struct {
	Agent       agents.Agent
	RatingLabel string
	ProfileHref string
	ContactHref string
}

func (c Card) HasProfile() bool { return c.ProfileHref != "" }
func (c Card) HasContact() bool { return c.ContactHref != "" }

// Cards maps visible agents to cards. Only a loaded view has any.
func (v View) Cards(actions CardActions) []Card {
	if v.State != StateLoaded {
		return nil
	}
	out := make([]Card, 0, len(v.Agents))
	for _, a := range v.Agents {
		c := Card{Agent: a, RatingLabel: fmt.Sprintf("%.1f", a.Rating)}
		if actions.ViewProfile != nil {
			c.ProfileHref = actions.ViewProfile(a)
		}
		if actions.Contact != nil {
			c.ContactHref = actions.Contact(a)
		}
		out = append(out, c)
	}
	return out
}
