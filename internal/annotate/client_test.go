// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/proteinlab/protein-search/pkg/types"
)

func testClient(baseURL string) *Client {
	return NewClient(types.AnnotateConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "protein-search-test/0.1",
		},
		BaseURL: baseURL,
	})
}

const annotatePayload = `{
  "annotations": [{
    "ensembl_id": "ENSG00000139618",
    "sources": {
      "ensembl": {"symbol": "BRCA2", "go": [["GO:0006281", "DNA repair"]]},
      "uniprot": {"id": "P51587", "symbol": "BRCA2", "go": [["GO:0006281", "DNA repair"], ["GO:0005634", "nucleus"]]},
      "ncbi": {"id": "675", "symbol": "BRCA2", "go": []}
    },
    "merged": {
      "go_ids": ["GO:0005634", "GO:0006281"],
      "go_descriptions": {"GO:0005634": "nucleus", "GO:0006281": "DNA repair"}
    },
    "gene_symbol": "BRCA2",
    "go_ids": ["GO:0005634", "GO:0006281"],
    "go_terms": ["nucleus", "DNA repair"]
  }],
  "gene_symbols": ["BRCA2"],
  "go_ids": ["GO:0005634", "GO:0006281"],
  "meta": {
    "version": "v1.0.0",
    "count_input": 1,
    "count_processed": 1,
    "timestamp": "2026-01-05T12:00:00Z",
    "uniprot": {"enabled": true, "fetch_count": 1},
    "ncbi": {"enabled": true, "fetch_count": 1}
  }
}`

func TestAnnotate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/annotate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			IDs []string `json:"ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if len(body.IDs) != 1 || body.IDs[0] != "ENSG00000139618" {
			t.Errorf("ids = %v", body.IDs)
		}
		w.Write([]byte(annotatePayload))
	}))
	defer ts.Close()

	resp, err := testClient(ts.URL).Annotate(context.Background(), []string{" ENSG00000139618 ", ""})
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if len(resp.Annotations) != 1 {
		t.Fatalf("len(Annotations) = %d", len(resp.Annotations))
	}

	ann := resp.Annotations[0]
	if ann.GeneSymbol != "BRCA2" {
		t.Errorf("GeneSymbol = %q", ann.GeneSymbol)
	}
	if len(ann.Sources.UniProt.GO) != 2 || ann.Sources.UniProt.GO[0].ID != "GO:0006281" {
		t.Errorf("UniProt GO = %v, tuple decode failed", ann.Sources.UniProt.GO)
	}
	if ann.Sources.UniProt.GO[0].Description != "DNA repair" {
		t.Errorf("GO description = %q", ann.Sources.UniProt.GO[0].Description)
	}
	if resp.Meta.UniProt.FetchCount != 1 {
		t.Errorf("meta = %+v", resp.Meta)
	}
}

func TestAnnotateRejectsEmptyAndOversized(t *testing.T) {
	c := testClient("http://127.0.0.1:0")

	if _, err := c.Annotate(context.Background(), []string{" ", ""}); err == nil {
		t.Error("empty id list should be rejected before any request")
	}

	ids := make([]string, DefaultMaxIDs+1)
	for i := range ids {
		ids[i] = "ENSG0"
	}
	if _, err := c.Annotate(context.Background(), ids); err == nil {
		t.Error("oversized id list should be rejected before any request")
	}
}

func TestAnnotateServiceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Annotation failed", "detail": "upstream timeout"}`))
	}))
	defer ts.Close()

	resp, err := testClient(ts.URL).Annotate(context.Background(), []string{"ENSG00000139618"})
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if resp.Error != "Annotation failed" || resp.Detail != "upstream timeout" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHealthVersionConfig(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.Write([]byte(`{"status": "ok", "time": "2026-01-05T12:00:00Z"}`))
		case "/version":
			w.Write([]byte(`{"version": "v1.0.0", "started": "2026-01-05T11:00:00Z"}`))
		case "/config":
			w.Write([]byte(`{"uniprot_fallback_enabled": true, "ncbi_fallback_enabled": false, "max_ids": 200, "version": "v1.0.0"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	c := testClient(ts.URL)
	ctx := context.Background()

	health, err := c.Health(ctx)
	if err != nil || health.Status != "ok" {
		t.Errorf("Health = %+v, %v", health, err)
	}

	version, err := c.Version(ctx)
	if err != nil || version.Version != "v1.0.0" {
		t.Errorf("Version = %+v, %v", version, err)
	}

	cfg, err := c.Config(ctx)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if !cfg.UniProtFallbackEnabled || cfg.NCBIFallbackEnabled || cfg.MaxIDs != 200 {
		t.Errorf("Config = %+v", cfg)
	}
}

func TestReadIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	content := "ENSG00000139618\n\n  ENSG00000141510  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := ReadIDFile(path)
	if err != nil {
		t.Fatalf("ReadIDFile: %v", err)
	}
	if len(ids) != 2 || ids[0] != "ENSG00000139618" || ids[1] != "ENSG00000141510" {
		t.Errorf("ids = %v", ids)
	}
}

func TestFormatTable(t *testing.T) {
	var resp types.AnnotationResponse
	if err := json.Unmarshal([]byte(annotatePayload), &resp); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	FormatTable(resp, &buf)

	out := buf.String()
	for _, want := range []string{"ENSG00000139618", "BRCA2", "1 of 1 ids annotated", "UniProt fallback: 1 fetched"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
