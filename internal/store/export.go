// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes every record matching q to path as a YAML list.
func (s *Store) ExportYAML(ctx context.Context, q Query, path string) (int, error) {
	q.Limit = exportLimit
	records, err := s.List(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("querying for export: %w", err)
	}
	if records == nil {
		records = []Record{}
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return 0, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return len(records), nil
}
