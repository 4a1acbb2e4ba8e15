package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

var (
	interpretNotation   string
	interpretQuestion   string
	interpretSeed       int64
	interpretQuiet      bool
	interpretJSON       bool
	interpretShowPrompt bool
)

var interpretCmd = &cobra.Command{
	Use:   "interpret",
	Short: "Cast a hexagram and ask the model to interpret it",
	Long: `Casts a hexagram (or resolves --notation) and asks the configured
language model to interpret it for your question.

Configure a provider first:
  suanming settings set llm.api_key <key>

Examples:
  suanming interpret --question "事业"
  suanming interpret --notation +++AB- --question "感情"`,
	Args: cobra.NoArgs,
	RunE: runInterpret,
}

func init() {
	interpretCmd.Flags().StringVarP(&interpretQuestion, "question", "Q", "", "what the cast is about")
	interpretCmd.Flags().StringVarP(&interpretNotation, "notation", "n", "", "use manual notation instead of casting")
	interpretCmd.Flags().Int64Var(&interpretSeed, "seed", 0, "seed the coins for a reproducible cast")
	interpretCmd.Flags().BoolVarP(&interpretQuiet, "quiet", "q", false, "do not print each line as it is cast")
	interpretCmd.Flags().BoolVar(&interpretJSON, "json", false, "output the reading as JSON")
	interpretCmd.Flags().BoolVar(&interpretShowPrompt, "prompt", false, "print the prompt without calling the model")
	_ = interpretCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(interpretCmd)
}

func runInterpret(cmd *cobra.Command, _ []string) error {
	if castingService == nil {
		return errNotConfigured
	}
	if interpretationService == nil {
		return errors.New("interpretation service not configured")
	}

	result, err := interpretResult(cmd)
	if err != nil {
		return err
	}

	if interpretShowPrompt {
		prompt, err := interpretationService.Prompt(result, interpretQuestion)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return nil
	}

	if !interpretationService.Available() {
		return fmt.Errorf("%w: set llm.api_key or SUANMING_API_KEY", domain.ErrLLMUnavailable)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reading, err := interpretationService.Interpret(ctx, result, interpretQuestion)
	if err != nil {
		return err
	}

	if interpretJSON {
		data, err := json.MarshalIndent(reading, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal reading: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.Reading(reading))
	return nil
}

func interpretResult(cmd *cobra.Command) (domain.CastingResult, error) {
	if notation := strings.TrimSpace(interpretNotation); notation != "" {
		return castingService.Manual(notation)
	}

	opts := castOptions(cmd, interpretQuiet, interpretSeed)
	if interpretJSON || interpretShowPrompt {
		opts.Quiet = true
	}
	return castingService.Cast(opts), nil
}
