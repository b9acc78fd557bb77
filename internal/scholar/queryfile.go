// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// QueryFile is the on-disk representation of one aggregation run. A run
// can be saved and reloaded later without re-querying SerpAPI or the
// relays (the references feed the compiler either way).
type QueryFile struct {
	Title   string                 `yaml:"title"`
	Method  types.Methodology      `yaml:"method"`
	Queries []string               `yaml:"queries"`
	Results []types.ReferenceEntry `yaml:"results"`
	Summary QuerySummary           `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves an aggregation run to a YAML file.
func WriteQueryFile(path, title string, method types.Methodology, refs []types.ReferenceEntry) error {
	qf := QueryFile{
		Title:   title,
		Method:  method,
		Queries: BuildQueries(title, method),
		Results: refs,
		Summary: QuerySummary{
			Total:     len(refs),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved aggregation run from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
