package domain

// CastMethod identifies which front end produced a casting result.
type CastMethod string

const (
	// CastMethodCoins is the three-coin probabilistic cast.
	CastMethodCoins CastMethod = "coins"

	// CastMethodManual is a cast entered in manual notation.
	CastMethodManual CastMethod = "manual"
)

// CastOptions configures a coin cast.
type CastOptions struct {
	// Quiet suppresses per-line narration. It never changes the result.
	Quiet bool

	// Seed, when set, makes this cast reproducible regardless of the
	// caster's configured coins.
	Seed *int64

	// Narrator sees each line as it is drawn. Nil or Quiet keeps the cast
	// silent.
	Narrator LineObserver
}

// LineObserver receives line draws while a coin cast is in progress.
// It only observes; nothing it does can change the cast.
type LineObserver interface {
	// LineCast is called once per line, bottom line first.
	LineCast(draw LineDraw)
}

// CastingResult is the outcome of a single cast or parse.
type CastingResult struct {
	Method CastMethod `json:"method"`

	// Primary is the hexagram as cast.
	Primary Figure `json:"primary"`

	// Changing holds the positions flipped to obtain Changed.
	Changing ChangingSet `json:"changing"`

	// Changed equals Primary when Changing is empty.
	Changed Figure `json:"changed"`

	// Draws holds the six coin draws, bottom first. Empty for manual casts.
	Draws []LineDraw `json:"draws,omitempty"`
}

// HasChanges reports whether any line is changing.
func (r CastingResult) HasChanges() bool {
	return !r.Changing.IsEmpty()
}

// Notation returns the result in manual notation.
func (r CastingResult) Notation() string {
	return FormatNotation(r.Primary.Code, r.Changing)
}

// Lines returns the six primary lines, bottom first.
func (r CastingResult) Lines() [LineCount]Line {
	var lines [LineCount]Line
	for i := 0; i < LineCount && i < len(r.Primary.Code); i++ {
		lines[i] = Line{Value: r.Primary.Code.Value(i), Changing: r.Changing.Has(i)}
	}
	return lines
}

// Reading is a casting result together with its AI interpretation.
type Reading struct {
	Result   CastingResult `json:"result"`
	Question string        `json:"question"`

	// Prompt is the question sent to the language model.
	Prompt string `json:"prompt"`

	// Interpretation is the model's answer with the disclaimer appended.
	Interpretation string `json:"interpretation"`

	// Model is the name of the model that produced the interpretation.
	Model string `json:"model"`
}
