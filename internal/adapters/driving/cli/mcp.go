package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suanming/internal/adapters/driving/mcp"
	"github.com/custodia-labs/suanming/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve casting and lookup to MCP clients",
	Long: `Serve casting, notation parsing and hexagram lookup to MCP clients.

JSON-RPC runs over stdio unless --port is given, in which case the server
speaks streamable HTTP on --host:--port.

Tools:     cast_hexagram, parse_notation, resolve_hexagram,
           interpret_hexagram (only with a reachable model)
Resources: suanming://hexagrams, suanming://trigrams,
           suanming://hexagrams/{code}
Prompts:   hexagram_question

Client configuration for stdio:
  {"mcpServers": {"suanming": {"command": "suanming", "args": ["mcp", "serve"]}}}`,
	Example: `  suanming mcp serve
  suanming mcp serve --port 8080
  suanming mcp serve --host 0.0.0.0 --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpServeCmd.Flags().String("host", "localhost", "interface to bind with --port")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")
	if port < 0 || port > 65535 {
		return fmt.Errorf("port %d out of range", port)
	}

	server, err := mcp.NewServer(mcpPorts())
	if err != nil {
		return err
	}

	if port == 0 {
		logger.Debug("mcp: serving stdio")
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}

// mcpPorts always hands over Interpretation when it exists: the question
// prompt needs no model, and the server itself decides whether to offer
// the interpret tool.
func mcpPorts() *mcp.Ports {
	ports := &mcp.Ports{Casting: castingService, Symbols: symbolService}
	if interpretationService != nil {
		ports.Interpretation = interpretationService
	}
	return ports
}
