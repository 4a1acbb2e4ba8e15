package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "hexagram_question",
		Description: "Phrase a cast as a question for a language model to interpret",
		Arguments: []*mcp.PromptArgument{
			{Name: "question", Description: "what the cast is about", Required: true},
			{Name: "notation", Description: "six symbols bottom first such as +++AB-; a fresh cast when empty"},
			{Name: "seed", Description: "seed for a reproducible fresh cast"},
		},
	}, s.handleQuestionPrompt)
}

func (s *Server) handleQuestionPrompt(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	seed, err := parseSeed(args["seed"])
	if err != nil {
		return nil, err
	}
	result, err := s.castFor(args["notation"], seed)
	if err != nil {
		return nil, err
	}

	prompt, err := s.ports.Interpretation.Prompt(result, args["question"])
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("%s -> %s", result.Primary.Name, result.Changed.Name),
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: plain.Result(result)}},
			{Role: "user", Content: &mcp.TextContent{Text: prompt}},
		},
	}, nil
}

func parseSeed(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: seed must be an integer", domain.ErrInvalidInput)
	}
	return &v, nil
}
