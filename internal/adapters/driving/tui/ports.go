// Package tui provides an interactive terminal user interface for suanming.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Casting produces coin and manual casts.
	Casting driving.CastingService

	// Symbols resolves the reference tables.
	Symbols driving.SymbolService

	// Interpretation asks the language model about a result. Optional.
	Interpretation driving.InterpretationService

	// Settings backs the settings view. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a Ports aggregate with the required services.
func NewPorts(casting driving.CastingService, symbols driving.SymbolService) *Ports {
	return &Ports{
		Casting: casting,
		Symbols: symbols,
	}
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

// canInterpret reports whether an interpretation service is wired and usable.
func (p *Ports) canInterpret() bool {
	return p.Interpretation != nil && p.Interpretation.Available()
}
