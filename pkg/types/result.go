// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CrossLink is an external database reference returned alongside a
// protein record.
type CrossLink struct {
	DB  string `json:"db" yaml:"db"`
	ID  string `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

// SearchResult is the search service's response for one query. Either
// Error is set and every other field is empty, or Error is empty and the
// protein fields are populated.
type SearchResult struct {
	ProteinName string      `json:"protein_name,omitempty" yaml:"protein_name,omitempty"`
	Organism    string      `json:"organism,omitempty" yaml:"organism,omitempty"`
	Sequence    string      `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	PDBIDs      []string    `json:"pdb_ids,omitempty" yaml:"pdb_ids,omitempty"`
	PDBText     string      `json:"pdb_text,omitempty" yaml:"pdb_text,omitempty"`
	CrossLinks  []CrossLink `json:"cross_links,omitempty" yaml:"cross_links,omitempty"`

	// Error is the service's structured error message ("not found" etc).
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// IsError reports whether the service returned a structured error
// instead of protein data.
func (r SearchResult) IsError() bool {
	return r.Error != ""
}

// SuggestionItem is one typeahead entry. Name is the display text,
// ID the value copied into the query field on selection.
type SuggestionItem struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}
