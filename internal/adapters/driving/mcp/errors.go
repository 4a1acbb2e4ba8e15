// Package mcp provides an MCP (Model Context Protocol) server adapter for suanming.
// It lets AI assistants cast hexagrams and read the reference tables.
package mcp

import "errors"

var (
	// ErrMissingCastingService is returned when the casting service is not provided.
	ErrMissingCastingService = errors.New("mcp: casting service is required")

	// ErrMissingSymbolService is returned when the symbol service is not provided.
	ErrMissingSymbolService = errors.New("mcp: symbol service is required")
)
