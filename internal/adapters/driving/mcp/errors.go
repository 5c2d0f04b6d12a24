// Package mcp provides an MCP (Model Context Protocol) server adapter for
// resourcehub. It lets AI assistants search the ingested campus resources
// and ask questions grounded in them.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
