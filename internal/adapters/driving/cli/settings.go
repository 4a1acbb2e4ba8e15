package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/suanming/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the interpretation provider and casting defaults.

Settings are stored in ~/.suanming/config.toml. Environment variables
(SUANMING_API_KEY, SUANMING_BASE_URL, SUANMING_MODEL, SUANMING_PROVIDER,
SUANMING_SEED) override the file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by key, for example:

  suanming settings set llm.api_key sk-...
  suanming settings set llm.temperature 0.5
  suanming settings set cast.quiet true

Run 'suanming settings keys' for the list of keys.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure LLM provider",
	Long:  `Interactively configure the LLM provider used for interpretation.`,
	RunE:  runSettingsLLM,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[LLM]")
	fmt.Fprintf(out, "  Provider: %s\n", settings.LLM.Provider.Description())
	fmt.Fprintf(out, "  Model: %s\n", settings.LLM.Model)
	fmt.Fprintf(out, "  Base URL: %s\n", settings.LLM.BaseURL)
	if settings.LLM.Provider.RequiresAPIKey() {
		if settings.LLM.APIKey != "" {
			fmt.Fprintf(out, "  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
		} else {
			fmt.Fprintf(out, "  API Key: (not set)\n")
		}
	}
	fmt.Fprintf(out, "  Temperature: %s\n", strconv.FormatFloat(settings.LLM.Temperature, 'f', -1, 64))
	fmt.Fprintf(out, "  Max Tokens: %d\n", settings.LLM.MaxTokens)
	fmt.Fprintf(out, "  Timeout: %ds\n", settings.LLM.TimeoutSeconds)
	if settings.LLM.RequestsPerMinute > 0 {
		fmt.Fprintf(out, "  Rate Limit: %d/min\n", settings.LLM.RequestsPerMinute)
	} else {
		fmt.Fprintln(out, "  Rate Limit: (unlimited)")
	}
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	fmt.Fprintf(out, "  Status: %s\n", status)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Cast]")
	if settings.Cast.Seed != 0 {
		fmt.Fprintf(out, "  Seed: %d\n", settings.Cast.Seed)
	} else {
		fmt.Fprintln(out, "  Seed: (random)")
	}
	fmt.Fprintf(out, "  Quiet: %t\n", settings.Cast.Quiet)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	shown := value
	if key == "llm.api_key" {
		shown = maskAPIKey(value)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, shown)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key := args[0]
	if err := settingsService.Reset(key); err != nil {
		return fmt.Errorf("failed to reset %s: %w", key, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reset %s to default\n", key)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	for _, key := range settingsService.Keys() {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	return configureLLMProvider(cmd, reader)
}

func configureLLMProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		fmt.Fprintf(out, "  %d. %s\n", i+1, p.Description())
	}
	fmt.Fprint(out, "\nEnter choice [1]: ")
	idx := parseChoice(readLine(reader), len(providers), 1)
	selectedProvider := providers[idx-1]

	defaultModel := domain.DefaultLLMModels()[selectedProvider]
	fmt.Fprintf(out, "Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		fmt.Fprint(out, "Enter API key: ")
		apiKey = readPassword(cmd.InOrStdin(), reader)
		fmt.Fprintln(out)
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetLLMProvider(selectedProvider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprint(out, "Validating configuration... ")
	if err := settingsService.ValidateLLMConfig(ctx); err != nil {
		fmt.Fprintf(out, "FAILED: %v\n", err)
		return fmt.Errorf("LLM configuration validation failed: %w", err)
	}
	fmt.Fprintln(out, "OK")

	fmt.Fprintf(out, "LLM provider configured: %s (%s)\n", selectedProvider.Description(), model)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo when in is the terminal.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
