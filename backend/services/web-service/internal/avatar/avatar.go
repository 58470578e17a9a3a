// Package avatar builds generated-avatar image URLs for agents.
package avatar

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	serviceURL = "https://ui-avatars.com/api/"
	size       = 128

	// FallbackName seeds the avatar when an agent has no usable name.
	FallbackName = "Agent"
)

// URL returns the avatar image URL for name. It never fails and is stable
// for a given input.
func URL(name string) string {
	seed := strings.TrimSpace(name)
	if seed == "" {
		seed = FallbackName
	}
	return fmt.Sprintf("%s?name=%s&background=random&size=%d", serviceURL, url.QueryEscape(seed), size)
}
