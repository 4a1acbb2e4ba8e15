package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suanming/internal/adapters/driving/render"
	"github.com/custodia-labs/suanming/internal/core/domain"
)

var (
	castQuiet bool
	castSeed  int64
	castJSON  bool
)

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Cast a hexagram with three coins",
	Long: `Tosses three coins six times, bottom line first, and prints each line
as it is drawn followed by the primary and changed hexagrams.

Three heads give old yin (六), two heads young yang (七), one head young
yin (八) and no heads old yang (九). Old lines are changing lines.`,
	Args: cobra.NoArgs,
	RunE: runCast,
}

func init() {
	castCmd.Flags().BoolVarP(&castQuiet, "quiet", "q", false, "do not print each line as it is cast")
	castCmd.Flags().Int64Var(&castSeed, "seed", 0, "seed the coins for a reproducible cast")
	castCmd.Flags().BoolVar(&castJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(castCmd)
}

func runCast(cmd *cobra.Command, _ []string) error {
	if castingService == nil {
		return errNotConfigured
	}

	opts := castOptions(cmd, castQuiet, castSeed)
	if castJSON {
		opts.Quiet = true
	}

	result := castingService.Cast(opts)
	return outputResult(cmd, result, castJSON)
}

// castOptions builds options from flags, falling back to saved settings
// for flags the user did not pass. Narration goes to the command's output.
func castOptions(cmd *cobra.Command, quiet bool, seed int64) domain.CastOptions {
	opts := domain.CastOptions{
		Quiet:    quiet,
		Narrator: render.NewNarrator(cmd.OutOrStdout(), renderer),
	}

	var saved domain.CastSettings
	if settings := currentSettings(); settings != nil {
		saved = settings.Cast
	}

	if !cmd.Flags().Changed("quiet") {
		opts.Quiet = saved.Quiet
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = &seed
	} else if saved.Seed != 0 {
		s := saved.Seed
		opts.Seed = &s
	}
	return opts
}

func outputResult(cmd *cobra.Command, result domain.CastingResult, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.Result(result))
	return nil
}
