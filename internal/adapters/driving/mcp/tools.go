package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/campushq/resourcehub/internal/core/domain"
)

// SearchInput is the input schema for the search and ask tools.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"the search query or question"`
	Department string `json:"department,omitempty" jsonschema:"restrict to resources of this department"`
	Subject    string `json:"subject,omitempty" jsonschema:"restrict to resources of this subject"`
	UploadedBy string `json:"uploaded_by,omitempty" jsonschema:"restrict to resources of this uploader"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []ResourceHitOutput `json:"results"`
	Count   int                 `json:"count"`
}

// ResourceHitOutput represents a single aggregated search hit.
type ResourceHitOutput struct {
	ResourceID string  `json:"resource_id"`
	Title      string  `json:"title"`
	Score      float64 `json:"score"`
	Snippet    string  `json:"snippet"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string              `json:"answer"`
	Sources []ResourceHitOutput `json:"sources"`
}

// ListResourcesInput is the input schema for the list_resources tool.
type ListResourcesInput struct{}

// ListResourcesOutput is the output schema for the list_resources tool.
type ListResourcesOutput struct {
	Resources []ResourceOutput `json:"resources"`
	Count     int              `json:"count"`
}

// ResourceOutput represents one ingested resource record.
type ResourceOutput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	FileName   string `json:"file_name"`
	Department string `json:"department,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Summary    string `json:"summary,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the ingested campus resources by similarity",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a question answered from the ingested campus resources",
	}, s.handleAsk)

	if s.ports.Resources != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_resources",
			Description: "List all ingested campus resources",
		}, s.handleListResources)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	hits, err := s.ports.Search.Search(ctx, input.Query, filtersFromInput(input))
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, SearchOutput{
		Results: hitsToOutput(hits),
		Count:   len(hits),
	}, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Search.Ask(ctx, input.Query, filtersFromInput(input))
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		Answer:  answer.Text,
		Sources: hitsToOutput(answer.Hits),
	}, nil
}

// handleListResources handles the list_resources tool invocation.
func (s *Server) handleListResources(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListResourcesInput,
) (*mcp.CallToolResult, ListResourcesOutput, error) {
	resources, err := s.ports.Resources.List(ctx)
	if err != nil {
		return nil, ListResourcesOutput{}, err
	}

	output := ListResourcesOutput{
		Resources: make([]ResourceOutput, len(resources)),
		Count:     len(resources),
	}
	for i, resource := range resources {
		output.Resources[i] = ResourceOutput{
			ID:         resource.ID,
			Title:      resource.Title,
			FileName:   resource.FileName,
			Department: resource.Department,
			Subject:    resource.Subject,
			Summary:    resource.Summary,
		}
	}
	return nil, output, nil
}

func filtersFromInput(input SearchInput) domain.SearchFilters {
	return domain.SearchFilters{
		Department: input.Department,
		Subject:    input.Subject,
		UploadedBy: input.UploadedBy,
	}
}

func hitsToOutput(hits []domain.ResourceHit) []ResourceHitOutput {
	out := make([]ResourceHitOutput, len(hits))
	for i, hit := range hits {
		out[i] = ResourceHitOutput{
			ResourceID: hit.ResourceID,
			Title:      hit.Title,
			Score:      hit.Score,
			Snippet:    hit.Snippet,
		}
	}
	return out
}
