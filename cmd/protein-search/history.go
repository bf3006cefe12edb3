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
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches from the local history log",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all logged searches",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No searches recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-24s  %-30s  %s\n", "When", "Query", "Protein", "PDB")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 84))
	for _, e := range entries {
		protein := e.Protein
		if len(protein) > 30 {
			protein = protein[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-24s  %-30s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Query, protein, e.PDBID)
	}
	return nil
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d entries.\n", n)
	return nil
}
