// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by the clients that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "protein-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// QueryConfig holds settings for the search/autocomplete client.
type QueryConfig struct {
	HTTPConfig `yaml:",inline"`

	// Host is the name the endpoint switch inspects. Loopback names
	// select LocalEndpoint, anything else RemoteEndpoint.
	Host string `json:"host" yaml:"host"`

	// LocalEndpoint is the base URL used when Host is a loopback name.
	LocalEndpoint string `json:"local_endpoint" yaml:"local_endpoint"`

	// RemoteEndpoint is the base URL used for any other host.
	RemoteEndpoint string `json:"remote_endpoint" yaml:"remote_endpoint"`
}

// AnnotateConfig holds settings for the Ensembl annotation client.
type AnnotateConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the annotation service base URL. Empty means "use the
	// resolved query endpoint".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxIDs caps the number of ids sent per request (server limit 200).
	MaxIDs int `json:"max_ids" yaml:"max_ids"`
}

// DiagConfig holds settings for the connection tester.
type DiagConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the diagnostic service base URL. Empty means "use the
	// resolved query endpoint".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Path is the diagnostic route. Deployments expose either
	// "/api/test" or "/test".
	Path string `json:"path" yaml:"path"`
}

// HistoryConfig holds settings for the local search history log.
type HistoryConfig struct {
	// Dir is the directory holding the history database.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the number of entries a listing returns (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
