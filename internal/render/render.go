// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns search results into a display model and writes it
// as plain text or HTML. The model building is pure so the rendering
// rules are testable without any output medium.
package render

import (
	"net/url"

	"github.com/proteinlab/protein-search/pkg/types"
)

// NoStructureMessage is shown in place of the 3-D viewer when a result
// carries no PDB ids.
const NoStructureMessage = "3D structure not available"

// NetworkErrorMessage is the generic line shown for transport failures.
// Service-reported errors are rendered verbatim instead.
const NetworkErrorMessage = "Network error: could not reach the search service"

// viewerBase embeds the 3Dmol.js viewer for a PDB id.
const viewerBase = "https://3dmol.org/viewer.html"

// alignmentBase is the NCBI BLAST protein search form.
const alignmentBase = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

// DisplayModel is everything a result view shows. Exactly one of Error
// and the protein fields is populated, mirroring the service contract.
type DisplayModel struct {
	// Error is a service-reported message, shown alone in error style.
	Error string

	ProteinName string
	Organism    string
	Sequence    string

	// ViewerURL embeds the 3-D viewer for the first PDB id; empty when
	// the result has none, in which case Placeholder is shown.
	ViewerPDBID string
	ViewerURL   string
	Placeholder string

	// RawStructure holds the optional raw PDB text behind a toggle.
	RawStructure string

	// CrossLinks is the togglable external-reference list.
	CrossLinks []types.CrossLink

	// AlignmentURL links the external alignment tool, parameterized by
	// the sequence.
	AlignmentURL string
}

// Render builds the display model for a search result. Pure: no I/O, no
// DOM-equivalent side effects.
func Render(r types.SearchResult) DisplayModel {
	if r.IsError() {
		return DisplayModel{Error: r.Error}
	}

	m := DisplayModel{
		ProteinName:  r.ProteinName,
		Organism:     r.Organism,
		Sequence:     r.Sequence,
		RawStructure: r.PDBText,
		CrossLinks:   r.CrossLinks,
	}

	if len(r.PDBIDs) > 0 {
		m.ViewerPDBID = r.PDBIDs[0]
		m.ViewerURL = ViewerURL(r.PDBIDs[0])
	} else {
		m.Placeholder = NoStructureMessage
	}

	if r.Sequence != "" {
		m.AlignmentURL = AlignmentURL(r.Sequence)
	}
	return m
}

// ViewerURL returns the 3Dmol.js embed URL for a PDB id.
func ViewerURL(pdbID string) string {
	return viewerBase + "?" + url.Values{
		"pdb":   {pdbID},
		"style": {"cartoon:color~spectrum"},
	}.Encode()
}

// AlignmentURL returns a BLAST protein search prefilled with the sequence.
func AlignmentURL(sequence string) string {
	return alignmentBase + "?" + url.Values{
		"PROGRAM":   {"blastp"},
		"PAGE_TYPE": {"BlastSearch"},
		"QUERY":     {sequence},
	}.Encode()
}
