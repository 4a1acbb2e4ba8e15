package domain

import "errors"

// Sentinel errors. Adapters wrap them with %w; callers test with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidNotation wraps every *ParseError.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidCode is a string that is not a six- or three-digit binary code.
	ErrInvalidCode = errors.New("invalid code")

	// ErrInvalidReference means the hexagram or trigram table failed Validate.
	ErrInvalidReference = errors.New("invalid reference data")

	// ErrLLMUnavailable means no model is configured. Casting is unaffected.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrUnsupportedType is an unknown provider or setting value type.
	ErrUnsupportedType = errors.New("unsupported type")
)
