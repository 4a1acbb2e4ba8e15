package tui

import "errors"

// Errors returned by NewApp and Ports.Validate.
var (
	ErrInvalidPorts          = errors.New("tui: no ports given")
	ErrMissingCastingService = errors.New("tui: casting service is required")
	ErrMissingSymbolService  = errors.New("tui: symbol service is required")
)
