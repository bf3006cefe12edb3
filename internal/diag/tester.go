// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diag checks connectivity to the backend with one fixed request
// and reports what came back. It is deliberately independent of the
// query client: a diagnostic should not share that code path.
package diag

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/proteinlab/protein-search/internal/httputil"
	"github.com/proteinlab/protein-search/pkg/types"
)

// DefaultPath is the diagnostic route. Some deployments serve the
// alternate "/test".
const DefaultPath = "/api/test"

// Report is the diagnostic response. Data is kept raw and re-serialized
// for display; the tester does not interpret it. Older backends return
// only Message.
type Report struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Tester issues the diagnostic request.
type Tester struct {
	baseURL    string
	path       string
	userAgent  string
	httpClient *http.Client
}

// NewTester builds a tester for cfg.
func NewTester(cfg types.DiagConfig) *Tester {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	return &Tester{
		baseURL:    cfg.BaseURL,
		path:       path,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Ping issues the diagnostic request and returns the report. Any failure
// (unreachable host, non-JSON body) is returned as an error whose
// message text is what the caller displays.
func (t *Tester) Ping(ctx context.Context) (Report, error) {
	var report Report
	if err := httputil.GetJSON(ctx, t.httpClient, t.baseURL+t.path, t.userAgent, &report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// FormatReport writes the status, message, and serialized data payload.
func FormatReport(r Report, w io.Writer) {
	status := r.Status
	if status == "" {
		// Message-only backends don't send a status field.
		status = "ok"
	}
	fmt.Fprintf(w, "Status:  %s\n", status)
	fmt.Fprintf(w, "Message: %s\n", r.Message)
	if len(r.Data) > 0 {
		fmt.Fprintf(w, "Data:    %s\n", string(r.Data))
	}
}
