// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gene-summarizer/internal/store"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

func TestWriteResult_JSON(t *testing.T) {
	r := types.PipelineResult{
		Code:      types.CodeOK,
		Message:   types.MessageOK,
		Title:     "Invasion ligand <EBA-181>",
		GeneID:    "PF3D7_0731500",
		PubMedID:  "25452349",
		PaperText: "α-helix & β-sheet\n",
	}

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, r, formatJSON))

	out := buf.String()
	assert.Contains(t, out, "\n    \"code\": 0,")
	assert.Contains(t, out, "<EBA-181>")
	assert.Contains(t, out, "α-helix & β-sheet")
	assert.Contains(t, out, `"synonyms": []`)
}

func TestWriteResult_ErrorEnvelopeYAML(t *testing.T) {
	var buf bytes.Buffer
	r := types.ErrorResult("PF3D7_0731500", "1", "Paper not found")
	require.NoError(t, writeResult(&buf, r, formatYAML))

	assert.Equal(t, "code: 1\nmessage: Paper not found\ngene_id: PF3D7_0731500\npubmed_id: \"1\"\n", buf.String())
}

func TestWriteResult_UnknownFormat(t *testing.T) {
	assert.Error(t, writeResult(&bytes.Buffer{}, types.PipelineResult{}, "xml"))
	assert.Error(t, validFormat("xml"))
	assert.NoError(t, validFormat(formatYAML))
}

func TestWriteJSONLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONLine(&buf, types.ErrorResult("g", "p", "Paper fetch status code: 500")))
	require.NoError(t, writeJSONLine(&buf, types.ErrorResult("g", "q", "Paper not found")))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Paper fetch status code: 500", first["message"])
}

func TestReadPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt")
	require.NoError(t, os.WriteFile(path, []byte("# gene pubmed\nPF3D7_0731500 25452349\n\nPF3D7_1133400,19536257\n"), 0o644))

	pairs, err := readPairs(nil, path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "PF3D7_1133400", pairs[1].GeneID)

	pairs, err = readPairs(strings.NewReader("A 1\n"), "-")
	require.NoError(t, err)
	assert.Len(t, pairs, 1)

	_, err = readPairs(nil, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFormatRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatRecords(&buf, nil))
	assert.Equal(t, "No results found.\n", buf.String())

	buf.Reset()
	records := []store.Record{
		{
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Result:    types.ErrorResult("PF3D7_0731500", "1", "Paper not found"),
		},
		{
			CreatedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
			Result: types.PipelineResult{
				Title:    strings.Repeat("x", 60),
				GeneID:   "PF3D7_0731500",
				PubMedID: "25452349",
			},
		},
	}
	require.NoError(t, formatRecords(&buf, records))

	out := buf.String()
	assert.Contains(t, out, "2026-03-01 12:00:00")
	assert.Contains(t, out, "Paper not found")
	assert.Contains(t, out, strings.Repeat("x", 37)+"...")
	assert.Contains(t, out, "2 results")
}
