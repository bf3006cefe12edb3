// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
)

// GOTerm pairs a Gene Ontology identifier with its description. The
// annotation service serializes each term as a two-element array
// [id, description].
type GOTerm struct {
	ID          string
	Description string
}

// UnmarshalJSON decodes the wire tuple form [id, description].
func (g *GOTerm) UnmarshalJSON(data []byte) error {
	var tuple []string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("decoding GO term: %w", err)
	}
	if len(tuple) > 0 {
		g.ID = tuple[0]
	}
	if len(tuple) > 1 {
		g.Description = tuple[1]
	}
	return nil
}

// MarshalJSON encodes the wire tuple form [id, description].
func (g GOTerm) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{g.ID, g.Description})
}

// SourceAnnotation holds one upstream source's view of a gene: its own
// identifier for the gene (empty for Ensembl itself), the gene symbol,
// and the GO terms it reported.
type SourceAnnotation struct {
	ID     string   `json:"id,omitempty"`
	Symbol string   `json:"symbol"`
	GO     []GOTerm `json:"go"`
}

// AnnotationSources groups the per-source data the service preserves for
// comparison: Ensembl first, then the UniProt and NCBI fallbacks.
type AnnotationSources struct {
	Ensembl SourceAnnotation `json:"ensembl"`
	UniProt SourceAnnotation `json:"uniprot"`
	NCBI    SourceAnnotation `json:"ncbi"`
}

// MergedAnnotation holds the GO ids merged across sources and the joined
// description per id.
type MergedAnnotation struct {
	GOIDs          []string          `json:"go_ids"`
	GODescriptions map[string]string `json:"go_descriptions"`
}

// Annotation is the per-gene annotation record, including the flattened
// compatibility fields the service adds on top of the per-source data.
type Annotation struct {
	EnsemblID string            `json:"ensembl_id"`
	Sources   AnnotationSources `json:"sources"`
	Merged    MergedAnnotation  `json:"merged"`

	// Compatibility fields: best available symbol plus the merged GO id
	// list and a parallel list of descriptions.
	GeneSymbol string   `json:"gene_symbol"`
	GOIDs      []string `json:"go_ids"`
	GOTerms    []string `json:"go_terms"`
}

// SourceMeta reports whether a fallback source was enabled and how many
// gene records were fetched from it.
type SourceMeta struct {
	Enabled    bool `json:"enabled"`
	FetchCount int  `json:"fetch_count"`
}

// AnnotationMeta describes one annotation run.
type AnnotationMeta struct {
	Version        string     `json:"version"`
	CountInput     int        `json:"count_input"`
	CountProcessed int        `json:"count_processed"`
	Timestamp      string     `json:"timestamp"`
	UniProt        SourceMeta `json:"uniprot"`
	NCBI           SourceMeta `json:"ncbi"`
}

// AnnotationResponse is the full /annotate payload.
type AnnotationResponse struct {
	Annotations []Annotation   `json:"annotations"`
	GeneSymbols []string       `json:"gene_symbols"`
	GOIDs       []string       `json:"go_ids"`
	Meta        AnnotationMeta `json:"meta"`

	// Error is set instead of the fields above when the request was
	// rejected (no ids, too many ids, upstream failure).
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}
