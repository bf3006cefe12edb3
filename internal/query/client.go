// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query implements the protein search client: endpoint
// resolution, full-text search, and typeahead suggestions.
package query

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/proteinlab/protein-search/internal/httputil"
	"github.com/proteinlab/protein-search/pkg/types"
)

// Default endpoints. The local address is the annotation backend's Flask
// default; the remote address is the hosted deployment.
const (
	DefaultLocalEndpoint  = "http://127.0.0.1:5000"
	DefaultRemoteEndpoint = "https://protein-search-api.onrender.com"
)

// minPrefixLen is the shortest prefix (in runes) that triggers an
// autocomplete request.
const minPrefixLen = 2

// ResolveEndpoint picks the backend base URL from a host name: loopback
// names select the local endpoint, anything else the remote one. Pure
// and deterministic, no error path.
func ResolveEndpoint(host, local, remote string) string {
	if host == "localhost" || host == "127.0.0.1" {
		return local
	}
	return remote
}

// Client issues search and autocomplete requests against one endpoint.
// The endpoint is fixed at construction, matching its once-per-page
// lifetime in the original flow.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a client for cfg. The endpoint is resolved once from
// cfg.Host; later host changes have no effect.
func NewClient(cfg types.QueryConfig) *Client {
	local := cfg.LocalEndpoint
	if local == "" {
		local = DefaultLocalEndpoint
	}
	remote := cfg.RemoteEndpoint
	if remote == "" {
		remote = DefaultRemoteEndpoint
	}
	return &Client{
		endpoint:   ResolveEndpoint(cfg.Host, local, remote),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Endpoint returns the resolved base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Search submits query to the search service and returns the decoded
// result. A returned error is a transport or parse failure; a service
// rejection comes back as a result with the Error field set. The caller
// must not propagate a transport error past the UI boundary — it renders
// the generic network-error message instead.
func (c *Client) Search(ctx context.Context, query string) (types.SearchResult, error) {
	form := url.Values{"query": {query}}

	var result types.SearchResult
	if err := httputil.PostForm(ctx, c.httpClient, c.endpoint+"/search", form, c.userAgent, &result); err != nil {
		return types.SearchResult{}, fmt.Errorf("search request: %w", err)
	}
	return result, nil
}

// Autocomplete returns suggestions for prefix. Prefixes shorter than two
// runes issue no request and yield an empty list, so the caller clears
// its suggestion display. Responses are not sequenced against each
// other; a slow earlier call can still deliver after a later one.
func (c *Client) Autocomplete(ctx context.Context, prefix string) ([]types.SuggestionItem, error) {
	if len([]rune(prefix)) < minPrefixLen {
		return nil, nil
	}

	reqURL := c.endpoint + "/autocomplete?" + url.Values{"q": {prefix}}.Encode()

	var items []types.SuggestionItem
	if err := httputil.GetJSON(ctx, c.httpClient, reqURL, c.userAgent, &items); err != nil {
		return nil, fmt.Errorf("autocomplete request: %w", err)
	}
	return items, nil
}
