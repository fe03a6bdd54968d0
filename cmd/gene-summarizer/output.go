// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeResult prints r as indented JSON or YAML. Non-ASCII text and HTML
// characters in the paper text are written as is.
func writeResult(w io.Writer, r types.PipelineResult, format string) error {
	switch format {
	case formatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// writeJSONLine prints r as a single JSON line.
func writeJSONLine(w io.Writer, r types.PipelineResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

func validFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unsupported format %q: use json or yaml", format)
}
