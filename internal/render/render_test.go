// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/proteinlab/protein-search/pkg/types"
)

func TestRenderServiceError(t *testing.T) {
	m := Render(types.SearchResult{Error: "not found"})

	if m.Error != "not found" {
		t.Errorf("Error = %q, want %q", m.Error, "not found")
	}
	// An error model carries no protein fields.
	if m.ProteinName != "" || m.Organism != "" || m.Sequence != "" ||
		m.ViewerURL != "" || m.RawStructure != "" || len(m.CrossLinks) != 0 ||
		m.AlignmentURL != "" {
		t.Errorf("error model carries data fields: %+v", m)
	}
}

func TestRenderNoPDBIDs(t *testing.T) {
	m := Render(types.SearchResult{
		ProteinName: "Ubiquitin",
		Organism:    "Homo sapiens",
		Sequence:    "MQIFVKTLTG",
	})

	if m.ViewerURL != "" || m.ViewerPDBID != "" {
		t.Errorf("viewer set without PDB ids: %+v", m)
	}
	if m.Placeholder != NoStructureMessage {
		t.Errorf("Placeholder = %q, want %q", m.Placeholder, NoStructureMessage)
	}
}

func TestRenderFirstPDBIDNoRawText(t *testing.T) {
	m := Render(types.SearchResult{
		ProteinName: "Hemoglobin subunit beta",
		Sequence:    "MVHLTPEEK",
		PDBIDs:      []string{"1ABC", "2DEF"},
	})

	if m.ViewerPDBID != "1ABC" {
		t.Errorf("ViewerPDBID = %q, want first id", m.ViewerPDBID)
	}
	if !strings.Contains(m.ViewerURL, "pdb=1ABC") {
		t.Errorf("ViewerURL = %q, missing pdb id", m.ViewerURL)
	}
	if m.Placeholder != "" {
		t.Errorf("Placeholder = %q, want empty", m.Placeholder)
	}
	if m.RawStructure != "" {
		t.Errorf("RawStructure = %q, want empty without pdb_text", m.RawStructure)
	}
}

func TestRenderRawStructureAndLinks(t *testing.T) {
	m := Render(types.SearchResult{
		ProteinName: "Lysozyme C",
		Sequence:    "KVFGRCELAA",
		PDBIDs:      []string{"1LYZ"},
		PDBText:     "HEADER    HYDROLASE",
		CrossLinks: []types.CrossLink{
			{DB: "UniProt", ID: "P00698", URL: "https://www.uniprot.org/uniprotkb/P00698"},
			{DB: "Pfam", ID: "PF00062", URL: "https://www.ebi.ac.uk/interpro/entry/pfam/PF00062"},
		},
	})

	if m.RawStructure == "" {
		t.Error("RawStructure missing")
	}
	if len(m.CrossLinks) != 2 {
		t.Errorf("CrossLinks = %v", m.CrossLinks)
	}
}

func TestAlignmentURLEscapesSequence(t *testing.T) {
	m := Render(types.SearchResult{ProteinName: "X", Sequence: "MV HL"})
	if !strings.Contains(m.AlignmentURL, "QUERY=MV+HL") {
		t.Errorf("AlignmentURL = %q, sequence not encoded", m.AlignmentURL)
	}
	if !strings.Contains(m.AlignmentURL, "PROGRAM=blastp") {
		t.Errorf("AlignmentURL = %q, missing program", m.AlignmentURL)
	}
}

func TestFormatTextError(t *testing.T) {
	var buf bytes.Buffer
	FormatText(Render(types.SearchResult{Error: "not found"}), &buf)

	out := buf.String()
	if out != "Error: not found\n" {
		t.Errorf("output = %q", out)
	}
}

func TestFormatTextPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	FormatText(Render(types.SearchResult{ProteinName: "Ubiquitin", Sequence: "MQIFVKTLTG"}), &buf)

	if !strings.Contains(buf.String(), NoStructureMessage) {
		t.Errorf("output missing placeholder: %q", buf.String())
	}
}

func TestWriteHTMLError(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(Render(types.SearchResult{Error: "not found"}), &buf); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `<p class="error">not found</p>`) {
		t.Errorf("error paragraph missing: %q", out)
	}
	if strings.Contains(out, "<h1>") || strings.Contains(out, "iframe") {
		t.Errorf("error page shows protein markup: %q", out)
	}
}

func TestWriteHTMLResult(t *testing.T) {
	var buf bytes.Buffer
	m := Render(types.SearchResult{
		ProteinName: "Hemoglobin subunit beta",
		Organism:    "Homo sapiens",
		Sequence:    "MVHLTPEEK",
		PDBIDs:      []string{"1ABC"},
		CrossLinks:  []types.CrossLink{{DB: "UniProt", ID: "P68871", URL: "https://example.org"}},
	})
	if err := WriteHTML(m, &buf); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"<h1>Hemoglobin subunit beta</h1>",
		"pdb=1ABC",
		`<details class="cross-links">`,
		"UniProt: P68871",
		"Run BLAST alignment",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// No raw-structure toggle without pdb_text.
	if strings.Contains(out, "raw-structure") {
		t.Errorf("unexpected raw-structure section: %q", out)
	}
}

func TestWriteHTMLEscapes(t *testing.T) {
	var buf bytes.Buffer
	m := Render(types.SearchResult{ProteinName: "<script>alert(1)</script>", Sequence: "MV"})
	if err := WriteHTML(m, &buf); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert") {
		t.Error("protein name not escaped")
	}
}
