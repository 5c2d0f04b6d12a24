package mcp

import (
	"github.com/campushq/resourcehub/internal/core/ports/driven"
	"github.com/campushq/resourcehub/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers similarity queries and grounded questions.
	Search driving.SearchService

	// Resources lists the ingested resource records.
	Resources driven.ResourceStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Resources is optional; list_resources is simply not registered.
	return nil
}
