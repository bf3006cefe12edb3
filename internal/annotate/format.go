// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotate

import (
	"fmt"
	"io"
	"strings"

	"github.com/proteinlab/protein-search/pkg/types"
)

// FormatTable writes annotations as a human-readable table, one row per
// gene, using the flattened compatibility fields.
func FormatTable(resp types.AnnotationResponse, w io.Writer) {
	if len(resp.Annotations) == 0 {
		fmt.Fprintln(w, "No annotations found.")
		return
	}

	fmt.Fprintf(w, "%-18s  %-10s  %-6s  %s\n", "Ensembl ID", "Symbol", "GO", "Terms")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, ann := range resp.Annotations {
		terms := strings.Join(ann.GOTerms, "; ")
		if len(terms) > 40 {
			terms = terms[:37] + "..."
		}
		fmt.Fprintf(w, "%-18s  %-10s  %-6d  %s\n",
			ann.EnsemblID, ann.GeneSymbol, len(ann.GOIDs), terms)
	}

	fmt.Fprintf(w, "\n%d of %d ids annotated (service %s)\n",
		resp.Meta.CountProcessed, resp.Meta.CountInput, resp.Meta.Version)
	if resp.Meta.UniProt.Enabled {
		fmt.Fprintf(w, "UniProt fallback: %d fetched\n", resp.Meta.UniProt.FetchCount)
	}
	if resp.Meta.NCBI.Enabled {
		fmt.Fprintf(w, "NCBI fallback: %d fetched\n", resp.Meta.NCBI.FetchCount)
	}
}

// FormatSources writes the per-source comparison view for one gene,
// showing what Ensembl, UniProt, and NCBI each reported.
func FormatSources(ann types.Annotation, w io.Writer) {
	fmt.Fprintf(w, "%s\n", ann.EnsemblID)
	writeSource(w, "ensembl", "", ann.Sources.Ensembl)
	writeSource(w, "uniprot", ann.Sources.UniProt.ID, ann.Sources.UniProt)
	writeSource(w, "ncbi", ann.Sources.NCBI.ID, ann.Sources.NCBI)
}

func writeSource(w io.Writer, name, id string, src types.SourceAnnotation) {
	label := name
	if id != "" {
		label = fmt.Sprintf("%s (%s)", name, id)
	}
	symbol := src.Symbol
	if symbol == "" {
		symbol = "-"
	}
	fmt.Fprintf(w, "  %-24s  symbol=%-10s  go=%d\n", label, symbol, len(src.GO))
}
