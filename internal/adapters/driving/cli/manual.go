package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var (
	manualJSON     bool
	manualNotation string
)

var manualCmd = &cobra.Command{
	Use:     "manual [notation]",
	Aliases: []string{"parse"},
	Short:   "Resolve a hexagram from manual notation",
	Long: `Resolves six lines written bottom first, one symbol per line:

  +  young yang (七)
  -  young yin (八)
  A  old yin (六), changing
  B  old yang (九), changing

A notation that starts with - reads as a flag on its own. Pass it after
-- or through --notation instead.

Examples:
  suanming manual +++AB-
  suanming manual -- -+++++
  suanming manual -n ------`,
	Args: cobra.MaximumNArgs(1),
	RunE: runManual,
}

func init() {
	manualCmd.Flags().StringVarP(&manualNotation, "notation", "n", "", "six symbols, bottom line first")
	manualCmd.Flags().BoolVar(&manualJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(manualCmd)
}

func runManual(cmd *cobra.Command, args []string) error {
	if castingService == nil {
		return errNotConfigured
	}

	notation := manualNotation
	switch {
	case len(args) == 1 && cmd.Flags().Changed("notation"):
		return errors.New("give the notation as an argument or with --notation, not both")
	case len(args) == 1:
		notation = args[0]
	case !cmd.Flags().Changed("notation"):
		return errors.New("manual needs a notation such as +++AB-")
	}

	result, err := castingService.Manual(strings.TrimSpace(notation))
	if err != nil {
		return err
	}

	return outputResult(cmd, result, manualJSON)
}
