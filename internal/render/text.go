// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/proteinlab/protein-search/pkg/types"
)

// FormatText writes the minimal plain-text view of a display model to w.
func FormatText(m DisplayModel, w io.Writer) {
	if m.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", m.Error)
		return
	}

	fmt.Fprintf(w, "Protein:  %s\n", m.ProteinName)
	fmt.Fprintf(w, "Organism: %s\n", m.Organism)
	fmt.Fprintf(w, "Sequence: %s\n", wrapSequence(m.Sequence, 60))

	if m.ViewerPDBID != "" {
		fmt.Fprintf(w, "PDB:      %s (%s)\n", m.ViewerPDBID, m.ViewerURL)
	} else {
		fmt.Fprintf(w, "PDB:      %s\n", m.Placeholder)
	}

	if m.RawStructure != "" {
		fmt.Fprintf(w, "Raw structure: %d bytes (use --raw to print)\n", len(m.RawStructure))
	}

	if len(m.CrossLinks) > 0 {
		fmt.Fprintln(w, "Cross-references:")
		for _, cl := range m.CrossLinks {
			fmt.Fprintf(w, "  %-10s %-12s %s\n", cl.DB, cl.ID, cl.URL)
		}
	}

	if m.AlignmentURL != "" {
		fmt.Fprintf(w, "Align:    %s\n", m.AlignmentURL)
	}
}

// FormatSuggestions writes one suggestion per line.
func FormatSuggestions(items []types.SuggestionItem, w io.Writer) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No suggestions.")
		return
	}
	for _, s := range items {
		fmt.Fprintf(w, "%-12s  %s\n", s.ID, s.Name)
	}
}

// wrapSequence inserts newlines so long sequences stay readable,
// indenting continuation lines under the field value.
func wrapSequence(seq string, width int) string {
	if len(seq) <= width {
		return seq
	}
	var b strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		if i > 0 {
			b.WriteString("\n          ")
		}
		b.WriteString(seq[i:end])
	}
	return b.String()
}
