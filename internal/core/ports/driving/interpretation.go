package driving

import (
	"context"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

// InterpretationService asks a language model to interpret a cast.
type InterpretationService interface {
	// Prompt builds the question that would be sent for result.
	Prompt(result domain.CastingResult, question string) (string, error)

	// Interpret sends the cast to the model and returns the reading.
	// Returns domain.ErrLLMUnavailable when no model is configured.
	Interpret(ctx context.Context, result domain.CastingResult, question string) (domain.Reading, error)

	// Available reports whether a model is configured.
	Available() bool
}
