package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/suanming/internal/adapters/driving/tui"
)

var errNotTerminal = errors.New("the TUI needs an interactive terminal")

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Cast and browse hexagrams in a full-screen terminal UI",
	Long: `Open the full-screen terminal UI.

From the menu: cast coins, enter manual notation, browse the 64 hexagrams
and 8 trigrams, or edit settings. The result view draws the primary and
changed hexagrams side by side and can ask the model for a reading.

Keys:
  1-6      pick a menu entry     c   cast
  ↑/k ↓/j  move                  i   interpret (with a model)
  enter    select or edit        t   switch table
  esc      back                  r   reset a setting
  ?        help                  q   quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	// A panic inside bubbletea leaves the terminal in raw mode; report it
	// as an error once the program has restored the screen.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("TUI panic: %v\n%s", r, debug.Stack())
		}
	}()

	ports := tui.NewPorts(castingService, symbolService)
	ports.Interpretation = interpretationService
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("create TUI: %w", err)
	}
	if ctx := cmd.Context(); ctx != nil {
		app.WithContext(ctx)
	}
	if err := app.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
