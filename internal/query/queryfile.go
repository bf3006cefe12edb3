// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/proteinlab/protein-search/pkg/types"
)

// SessionFile is the on-disk representation of one search and its
// result. A saved session can be re-rendered later without re-querying
// the service.
type SessionFile struct {
	Query    string             `yaml:"query"`
	Endpoint string             `yaml:"endpoint"`
	Result   types.SearchResult `yaml:"result"`
	Saved    time.Time          `yaml:"saved"`
}

// WriteSession saves a query and its result to a YAML file.
func WriteSession(path, queryText, endpoint string, result types.SearchResult) error {
	sf := SessionFile{
		Query:    queryText,
		Endpoint: endpoint,
		Result:   result,
		Saved:    time.Now(),
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// ReadSession loads a previously saved session file.
func ReadSession(path string) (SessionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SessionFile{}, fmt.Errorf("reading session file: %w", err)
	}

	var sf SessionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return SessionFile{}, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	return sf, nil
}
