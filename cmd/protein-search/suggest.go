// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proteinlab/protein-search/internal/query"
	"github.com/proteinlab/protein-search/internal/render"
	"github.com/proteinlab/protein-search/pkg/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [prefix]",
	Short: "Get typeahead suggestions for a prefix",
	Long: `Suggest asks the backend for typeahead suggestions matching a prefix.
Prefixes shorter than two characters issue no request and yield an empty
list, mirroring the interactive behavior.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().Bool("json", false, "output suggestions as JSON")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	prefix := strings.TrimSpace(strings.Join(args, " "))

	client := query.NewClient(queryConfig(cmd))
	items, err := client.Autocomplete(context.Background(), prefix)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		if items == nil {
			items = []types.SuggestionItem{} // never null in JSON output
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	render.FormatSuggestions(items, os.Stdout)
	return nil
}
