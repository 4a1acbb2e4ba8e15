package mcp

import (
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Casting produces casting results.
	Casting driving.CastingService

	// Symbols resolves codes against the reference tables.
	Symbols driving.SymbolService

	// Interpretation is optional. Without it the interpret tool is not registered.
	Interpretation driving.InterpretationService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Casting == nil {
		return ErrMissingCastingService
	}
	if p.Symbols == nil {
		return ErrMissingSymbolService
	}
	return nil
}
