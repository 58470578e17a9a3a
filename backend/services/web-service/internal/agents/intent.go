package agents

import "strings"

// Intent says how a search query should be interpreted.
type Intent int

const (
	// IntentAuto classifies the query by keyword.
	IntentAuto Intent = iota
	// IntentArea searches agent addresses.
	IntentArea
	// IntentProperty searches the agents' listings.
	IntentProperty
)

func (i Intent) String() string {
	switch i {
	case IntentArea:
		return "area"
	case IntentProperty:
		return "property"
	default:
		return "auto"
	}
}

// ParseIntent reads the ?intent= query value; anything unknown is IntentAuto.
func ParseIntent(s string) Intent {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "area":
		return IntentArea
	case "property":
		return IntentProperty
	default:
		return IntentAuto
	}
}

var propertyKeywords = []string{
	// unit sizes
	"marla", "kanal", "sqft", "sq ft", "square", "acre",
	// property types
	"house", "home", "apartment", "flat", "plot", "villa", "penthouse",
	"commercial", "residential", "shop", "office",
	// bedrooms
	"bedroom", "bed", "bhk", "room",
}

// ClassifyQuery returns IntentProperty when the query mentions any property
// keyword (case-insensitive substring), IntentArea otherwise.
func ClassifyQuery(query string) Intent {
	q := strings.ToLower(query)
	for _, kw := range propertyKeywords {
		if strings.Contains(q, kw) {
			return IntentProperty
		}
	}
	return IntentArea
}
