// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"path/filepath"
	"testing"

	"github.com/proteinlab/protein-search/pkg/types"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")

	result := types.SearchResult{
		ProteinName: "Lysozyme C",
		Organism:    "Gallus gallus",
		Sequence:    "KVFGRCELAA",
		PDBIDs:      []string{"1LYZ"},
		CrossLinks: []types.CrossLink{
			{DB: "UniProt", ID: "P00698", URL: "https://www.uniprot.org/uniprotkb/P00698"},
		},
	}
	if err := WriteSession(path, "lysozyme", "http://127.0.0.1:5000", result); err != nil {
		t.Fatalf("WriteSession: %v", err)
	}

	sf, err := ReadSession(path)
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	if sf.Query != "lysozyme" {
		t.Errorf("Query = %q", sf.Query)
	}
	if sf.Result.ProteinName != result.ProteinName {
		t.Errorf("ProteinName = %q", sf.Result.ProteinName)
	}
	if len(sf.Result.CrossLinks) != 1 || sf.Result.CrossLinks[0].ID != "P00698" {
		t.Errorf("CrossLinks = %v", sf.Result.CrossLinks)
	}
	if sf.Saved.IsZero() {
		t.Error("Saved timestamp not set")
	}
}

func TestReadSessionMissingFile(t *testing.T) {
	if _, err := ReadSession(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("ReadSession should fail for a missing file")
	}
}
