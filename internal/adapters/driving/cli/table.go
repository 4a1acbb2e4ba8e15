package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	tableTrigrams bool
	tableJSON     bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List the hexagram reference table",
	Long: `Lists the 64 hexagrams in King Wen order with their bottom-first code,
trigram glyphs (upper then lower) and name. Use --trigrams for the eight
trigrams.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().BoolVarP(&tableTrigrams, "trigrams", "t", false, "list trigrams instead of hexagrams")
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "output the table as JSON")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	if symbolService == nil {
		return errors.New("symbol service not configured")
	}

	var rows any
	if tableTrigrams {
		rows = symbolService.Trigrams()
	} else {
		rows = symbolService.Hexagrams()
	}

	if tableJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal table: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if tableTrigrams {
		fmt.Fprint(cmd.OutOrStdout(), renderer.Trigrams(symbolService.Trigrams()))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.Hexagrams(symbolService.Hexagrams()))
	return nil
}
