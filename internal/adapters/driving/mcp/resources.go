package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/chembalance/internal/core/domain"
)

// uriScheme is the custom URI scheme for chembalance resources.
const uriScheme = "chembalance://"

// historyEntryJSON is the resource form of a history entry, matching the
// HTTP GET /history body.
type historyEntryJSON struct {
	ID       string `json:"id"`
	Original string `json:"original"`
	Balanced string `json:"balanced"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.History == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Every equation balanced by this process, oldest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{id}",
		Name:        "history-entry",
		Description: "A single history entry",
		MIMEType:    "application/json",
	}, s.handleHistoryEntryResource)
}

// handleHistoryResource returns the whole history as JSON.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.History.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	infos := make([]historyEntryJSON, len(entries))
	for i, e := range entries {
		infos[i] = toEntryJSON(e)
	}
	return jsonResource(req.Params.URI, infos)
}

// handleHistoryEntryResource returns one entry by ID.
func (s *Server) handleHistoryEntryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractHistoryID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entries, err := s.ports.History.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	for _, e := range entries {
		if e.ID == id {
			return jsonResource(req.Params.URI, toEntryJSON(e))
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func toEntryJSON(e domain.HistoryEntry) historyEntryJSON {
	return historyEntryJSON{ID: e.ID, Original: e.Original, Balanced: e.Balanced}
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractHistoryID extracts the entry ID from a URI like chembalance://history/{id}.
func extractHistoryID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
