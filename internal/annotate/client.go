// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package annotate is a client for the Ensembl annotation service: gene
// symbol and GO term lookup across Ensembl with UniProt and NCBI
// fallbacks, plus the service's health/version/config probes.
package annotate

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/proteinlab/protein-search/internal/httputil"
	"github.com/proteinlab/protein-search/pkg/types"
)

// DefaultMaxIDs mirrors the service's MAX_IDS safety limit. Requests
// with more ids are rejected locally rather than truncated silently.
const DefaultMaxIDs = 200

// Client talks to one annotation service.
type Client struct {
	baseURL    string
	userAgent  string
	maxIDs     int
	httpClient *http.Client
}

// NewClient builds an annotation client for cfg.
func NewClient(cfg types.AnnotateConfig) *Client {
	maxIDs := cfg.MaxIDs
	if maxIDs <= 0 {
		maxIDs = DefaultMaxIDs
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		maxIDs:     maxIDs,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Annotate submits Ensembl gene ids and returns the per-source
// annotations. A service rejection arrives as a response with Error set;
// the returned error is reserved for transport and parse failures.
func (c *Client) Annotate(ctx context.Context, ids []string) (types.AnnotationResponse, error) {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}
	if len(cleaned) == 0 {
		return types.AnnotationResponse{}, fmt.Errorf("no Ensembl ids provided")
	}
	if len(cleaned) > c.maxIDs {
		return types.AnnotationResponse{}, fmt.Errorf("too many ids: %d exceeds the limit of %d", len(cleaned), c.maxIDs)
	}

	payload := map[string][]string{"ids": cleaned}

	var resp types.AnnotationResponse
	if err := httputil.PostJSON(ctx, c.httpClient, c.baseURL+"/annotate", payload, c.userAgent, &resp); err != nil {
		return types.AnnotationResponse{}, fmt.Errorf("annotate request: %w", err)
	}
	return resp, nil
}

// HealthInfo is the /health payload.
type HealthInfo struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// Health probes the service's /health route.
func (c *Client) Health(ctx context.Context) (HealthInfo, error) {
	var info HealthInfo
	if err := httputil.GetJSON(ctx, c.httpClient, c.baseURL+"/health", c.userAgent, &info); err != nil {
		return HealthInfo{}, fmt.Errorf("health request: %w", err)
	}
	return info, nil
}

// VersionInfo is the /version payload.
type VersionInfo struct {
	Version string `json:"version"`
	Started string `json:"started"`
}

// Version reports the service version.
func (c *Client) Version(ctx context.Context) (VersionInfo, error) {
	var info VersionInfo
	if err := httputil.GetJSON(ctx, c.httpClient, c.baseURL+"/version", c.userAgent, &info); err != nil {
		return VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	return info, nil
}

// ServiceConfig is the /config payload: the service's own switches,
// echoed for display.
type ServiceConfig struct {
	UniProtFallbackEnabled bool   `json:"uniprot_fallback_enabled"`
	NCBIFallbackEnabled    bool   `json:"ncbi_fallback_enabled"`
	MaxIDs                 int    `json:"max_ids"`
	EnsemblRestURL         string `json:"ensembl_rest_url"`
	UniProtRestURL         string `json:"uniprot_rest_url"`
	Version                string `json:"version"`
}

// Config fetches the service's configuration echo.
func (c *Client) Config(ctx context.Context) (ServiceConfig, error) {
	var cfg ServiceConfig
	if err := httputil.GetJSON(ctx, c.httpClient, c.baseURL+"/config", c.userAgent, &cfg); err != nil {
		return ServiceConfig{}, fmt.Errorf("config request: %w", err)
	}
	return cfg, nil
}

// ReadIDFile loads newline-separated Ensembl ids from path, skipping
// blank lines.
func ReadIDFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening id file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			ids = append(ids, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading id file: %w", err)
	}
	return ids, nil
}
