package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/suanming/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

const instructions = `suanming casts I Ching hexagrams with the three-coin method.
Lines are numbered 1 (bottom) to 6 (top). Codes are six binary digits,
bottom line first, 1 for yang. Manual notation uses + young yang,
- young yin, A old yin (changing) and B old yang (changing).
Use the hexagram_question prompt to interpret a cast with your own model.`

const shutdownGrace = 5 * time.Second

var log = logger.For("mcp")

// Server exposes casting over the Model Context Protocol.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer registers the casting tools, the reference resources and,
// when an interpretation port is present, the prompt and interpret tool.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "suanming", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}

	s.registerTools()
	s.registerResources()
	if ports.Interpretation != nil {
		s.registerPrompts()
		if ports.Interpretation.Available() {
			s.registerInterpretTool()
		}
	}
	return s, nil
}

// Run serves over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	log.Info("serving on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves streamable HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("http shutdown: %v", err)
		}
	}()

	log.Info("listening on %s", addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler returns the streamable HTTP handler for embedding in another mux.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}
