// Package cli provides the suanming command line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suanming/internal/adapters/driving/render"
	"github.com/custodia-labs/suanming/internal/core/domain"
	"github.com/custodia-labs/suanming/internal/core/ports/driving"
	"github.com/custodia-labs/suanming/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the core services the commands drive.
type Services struct {
	Casting        driving.CastingService
	Symbols        driving.SymbolService
	Interpretation driving.InterpretationService
	Settings       driving.SettingsService

	// Effective is the stored settings with environment overrides applied.
	// Commands fall back to Settings.Get when it is nil.
	Effective *domain.AppSettings
}

// Options carries the global flags a Bootstrap needs.
type Options struct {
	// ConfigDir is empty unless --config-dir was given.
	ConfigDir string

	Pretty  bool
	Verbose bool
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	castingService        driving.CastingService
	symbolService         driving.SymbolService
	interpretationService driving.InterpretationService
	settingsService       driving.SettingsService
	effectiveSettings     *domain.AppSettings

	renderer = render.New(false)
)

var (
	bootstrap Bootstrap

	verbose   bool
	pretty    bool
	configDir string
)

var errNotConfigured = errors.New("casting service not configured")

var rootCmd = &cobra.Command{
	Use:   "suanming",
	Short: "Cast and interpret I Ching hexagrams",
	Long: `suanming casts hexagrams with the three-coin method or from manual
notation, resolves the primary and changed hexagrams, and can ask a
language model for an interpretation.

Manual notation lists six lines bottom first:
  +  young yang    -  young yin
  A  old yin       B  old yang`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "colour output and draw the lines")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.suanming)")
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices installs the services the commands use.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	castingService = s.Casting
	symbolService = s.Symbols
	interpretationService = s.Interpretation
	settingsService = s.Settings
	effectiveSettings = s.Effective
}

// currentSettings returns the effective settings, nil when none are available.
func currentSettings() *domain.AppSettings {
	if effectiveSettings != nil {
		return effectiveSettings
	}
	if settingsService == nil {
		return nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("failed to read settings: %v", err)
		return nil
	}
	return settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetColor(pretty)
	renderer = render.New(pretty)

	if bootstrap == nil {
		return nil
	}

	s, err := bootstrap(Options{ConfigDir: configDir, Pretty: pretty, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(s)
	return nil
}
