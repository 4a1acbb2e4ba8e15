package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for suanming resources.
	uriScheme = "suanming://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "hexagrams",
		Name:        "hexagrams",
		Description: "The 64 hexagrams in King Wen order",
		MIMEType:    mimeJSON,
	}, s.handleHexagramsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "trigrams",
		Name:        "trigrams",
		Description: "The eight trigrams",
		MIMEType:    mimeJSON,
	}, s.handleTrigramsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "hexagrams/{code}",
		Name:        "hexagram",
		Description: "A single hexagram by binary code, bottom line first",
		MIMEType:    mimeJSON,
	}, s.handleHexagramResource)
}

func (s *Server) handleHexagramsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	figures := s.ports.Symbols.Hexagrams()
	out := make([]FigureOutput, len(figures))
	for i, fig := range figures {
		out[i] = toFigureOutput(fig)
	}
	return jsonResource(req.Params.URI, out)
}

func (s *Server) handleTrigramsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	trigrams := s.ports.Symbols.Trigrams()
	out := make([]TrigramOutput, len(trigrams))
	for i, t := range trigrams {
		out[i] = toTrigramOutput(t)
	}
	return jsonResource(req.Params.URI, out)
}

func (s *Server) handleHexagramResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	code, err := domain.ParseCode(extractCode(req.Params.URI))
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, toFigureOutput(s.ports.Symbols.Hexagram(code)))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractCode extracts the code from a URI like suanming://hexagrams/{code}.
func extractCode(uri string) string {
	const prefix = uriScheme + "hexagrams/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
