package driven

// PromptStore serves the templates used to phrase a cast for the model.
type PromptStore interface {
	// Load returns the named template. Stores fall back to the built-in
	// text for the names below and error for anything else.
	Load(name string) (string, error)

	// Reload drops anything cached so the next Load reads the source again.
	Reload()
}

// Prompt names.
const (
	// PromptSystem is the interpreter persona. No placeholders.
	PromptSystem = "divination_system"

	// PromptQuestion takes three %s, in order: primary hexagram name,
	// changing-lines sentence, question topic.
	PromptQuestion = "divination_question"

	// PromptDisclaimer follows every interpretation. No placeholders.
	PromptDisclaimer = "disclaimer"
)
