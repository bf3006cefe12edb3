// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proteinlab/protein-search/internal/history"
	"github.com/proteinlab/protein-search/internal/query"
	"github.com/proteinlab/protein-search/internal/render"
	"github.com/proteinlab/protein-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the backend for a protein",
	Long: `Search submits a protein query to the backend and renders the result:
protein name, organism, sequence, the 3-D viewer reference for the first
PDB id, optional raw structure data, cross-reference links, and a BLAST
alignment link.

A service error ("not found" etc.) is shown verbatim. A network failure
is reported as a single generic message.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output the raw result as JSON")
	searchCmd.Flags().Bool("html", false, "output the rich HTML result page")
	searchCmd.Flags().Bool("raw", false, "include the raw structure text in plain output")
	searchCmd.Flags().String("save", "", "save the query and result to a YAML session file")
	searchCmd.Flags().String("load", "", "re-render a saved session file instead of querying")
	searchCmd.Flags().Bool("no-history", false, "do not record this search in the history log")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if loadPath, _ := cmd.Flags().GetString("load"); loadPath != "" {
		sf, err := query.ReadSession(loadPath)
		if err != nil {
			return err
		}
		return outputResult(cmd, sf.Result)
	}

	queryText := strings.TrimSpace(strings.Join(args, " "))
	if queryText == "" {
		return fmt.Errorf("query is empty: provide a protein name or identifier")
	}

	client := query.NewClient(queryConfig(cmd))
	result, err := client.Search(context.Background(), queryText)
	if err != nil {
		// Transport failure: one generic message, nothing propagated
		// further up. The process stays usable for the next invocation.
		fmt.Fprintln(os.Stderr, "warning:", err)
		fmt.Fprintln(os.Stdout, render.NetworkErrorMessage)
		cmd.SilenceErrors = true
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := query.WriteSession(savePath, queryText, client.Endpoint(), result); err != nil {
			return err
		}
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordHistory(queryText, result)
	}

	return outputResult(cmd, result)
}

// recordHistory logs the search, warning instead of failing: a broken
// history database must not break search itself.
func recordHistory(queryText string, result types.SearchResult) {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), queryText, result); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}

func outputResult(cmd *cobra.Command, result types.SearchResult) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	model := render.Render(result)

	if htmlOutput, _ := cmd.Flags().GetBool("html"); htmlOutput {
		return render.WriteHTML(model, os.Stdout)
	}

	render.FormatText(model, os.Stdout)
	if rawOutput, _ := cmd.Flags().GetBool("raw"); rawOutput && model.RawStructure != "" {
		fmt.Fprintln(os.Stdout, model.RawStructure)
	}
	return nil
}
