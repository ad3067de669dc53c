package main

import (
	"strings"

	"github.com/piaxar/splitwise-mcp/splitwise"
)

// Toolset binds the MCP tool handlers to a resolved Splitwise configuration.
// The config is threaded in at construction; handlers never read the
// environment mid-call.
type Toolset struct {
	cfg splitwise.Config
}

func NewToolset(cfg splitwise.Config) *Toolset {
	return &Toolset{cfg: cfg}
}

// requireAPIKey fails before any network call when no API key is configured.
func (t *Toolset) requireAPIKey() error {
	if t.cfg.APIKey == "" {
		return &splitwise.APIError{
			Kind:    splitwise.KindAuthentication,
			Message: "SPLITWISE_API_KEY environment variable is required",
		}
	}
	return nil
}

// fullName joins first and last name with a single space; an absent last name
// leaves no trailing space.
func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
