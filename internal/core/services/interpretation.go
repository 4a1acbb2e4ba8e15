package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driven"
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
	"github.com/custodia-labs/suanming/internal/logger"
)

// Ensure InterpretationService implements the interface.
var _ driving.InterpretationService = (*InterpretationService)(nil)

var interpretLog = logger.For("interpretation")

// InterpretationService phrases a cast as a question and asks an LLM about it.
type InterpretationService struct {
	llm         driven.LLMService
	promptStore driven.PromptStore
	opts        driven.ChatOptions
}

// NewInterpretationService creates a new interpretation service.
// llm may be nil, in which case Interpret returns domain.ErrLLMUnavailable.
func NewInterpretationService(llm driven.LLMService, settings domain.LLMSettings) *InterpretationService {
	opts := driven.ChatOptions{
		MaxTokens:   settings.MaxTokens,
		Temperature: settings.Temperature,
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = domain.DefaultLLMMaxTokens
	}
	if opts.Temperature <= 0 {
		opts.Temperature = domain.DefaultLLMTemperature
	}
	return &InterpretationService{llm: llm, opts: opts}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the service uses the built-in prompts.
func (s *InterpretationService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Available reports whether a model is configured.
func (s *InterpretationService) Available() bool {
	return s.llm != nil
}

// ChangingLinesText describes the changing lines with 1-based positions,
// e.g. "其中第4, 5爻为变爻，变为雷天大壮。", or "无变爻。" when there are none.
func ChangingLinesText(result domain.CastingResult) string {
	if !result.HasChanges() {
		return "无变爻。"
	}
	positions := result.Changing.Positions()
	labels := make([]string, len(positions))
	for i, p := range positions {
		labels[i] = strconv.Itoa(p + 1)
	}
	return fmt.Sprintf("其中第%s爻为变爻，变为%s。", strings.Join(labels, ", "), result.Changed.Name)
}

// Prompt builds the user question for result.
func (s *InterpretationService) Prompt(result domain.CastingResult, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: question must not be empty", domain.ErrInvalidInput)
	}

	template := s.loadPrompt(driven.PromptQuestion, domain.DefaultQuestionPrompt)
	if strings.Count(template, "%s") != 3 {
		interpretLog.Warn("prompt %q needs three %%s placeholders, using built-in", driven.PromptQuestion)
		template = domain.DefaultQuestionPrompt
	}
	return fmt.Sprintf(template, result.Primary.Name, ChangingLinesText(result), question), nil
}

// Interpret asks the configured model to interpret result.
func (s *InterpretationService) Interpret(
	ctx context.Context, result domain.CastingResult, question string,
) (domain.Reading, error) {
	logger.Section("Interpretation")

	if s.llm == nil {
		return domain.Reading{}, domain.ErrLLMUnavailable
	}

	prompt, err := s.Prompt(result, question)
	if err != nil {
		return domain.Reading{}, err
	}
	interpretLog.Debug("model %s, prompt %d runes", s.llm.ModelName(), len([]rune(prompt)))

	messages := []driven.ChatMessage{
		{Role: driven.RoleSystem, Content: s.loadPrompt(driven.PromptSystem, domain.DefaultSystemPrompt)},
		{Role: driven.RoleUser, Content: prompt},
	}

	done := interpretLog.Timed("chat")
	content, err := s.llm.Chat(ctx, messages, s.opts)
	done()
	if err != nil {
		return domain.Reading{}, fmt.Errorf("interpret %s: %w", result.Primary.Name, err)
	}

	disclaimer := s.loadPrompt(driven.PromptDisclaimer, domain.DefaultDisclaimer)
	return domain.Reading{
		Result:         result,
		Question:       strings.TrimSpace(question),
		Prompt:         prompt,
		Interpretation: strings.TrimSpace(content) + "\n\n" + disclaimer,
		Model:          s.llm.ModelName(),
	}, nil
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (s *InterpretationService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		return fallback
	}
	return prompt
}
