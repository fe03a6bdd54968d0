// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

func TestProcessBatch(t *testing.T) {
	docs := &fakeDocs{docs: map[string]types.Document{"100": testDoc()}}
	completer := &recordingCompleter{failAt: 4, err: errors.New("quota exceeded")}
	d := newTestDriver(t, docs, completer)

	pairs := []Pair{
		{GeneID: "G1", PubMedID: "100"},
		{GeneID: "G1", PubMedID: "404"},
		{GeneID: "G2", PubMedID: "100"},
	}

	var results []types.PipelineResult
	summary, err := d.ProcessBatch(context.Background(), pairs, func(r types.PipelineResult) error {
		results = append(results, r)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, BatchSummary{Succeeded: 1, Failed: 2}, summary)
	assert.Equal(t, 3, summary.Total())
	assert.True(t, summary.HasFailures())

	require.Len(t, results, 3)
	assert.True(t, results[0].OK())
	assert.Equal(t, "Paper not found", results[1].Message)
	assert.Equal(t, 1, results[2].Code)
	assert.Contains(t, results[2].Message, "quota exceeded")
	assert.Equal(t, "G2", results[2].GeneID)
}

func TestProcessBatch_SinkErrorStops(t *testing.T) {
	docs := &fakeDocs{}
	d := newTestDriver(t, docs, &recordingCompleter{})

	errSink := errors.New("disk full")
	_, err := d.ProcessBatch(context.Background(), []Pair{{"G1", "1"}, {"G1", "2"}}, func(types.PipelineResult) error {
		return errSink
	})
	assert.ErrorIs(t, err, errSink)
	assert.Equal(t, 1, docs.calls)
}

func TestProcessBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := &fakeDocs{}
	d := newTestDriver(t, docs, &recordingCompleter{})
	summary, err := d.ProcessBatch(ctx, []Pair{{"G1", "1"}}, func(types.PipelineResult) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Total())
	assert.Equal(t, 0, docs.calls)
}

func TestParsePairs(t *testing.T) {
	in := `# gene pubmed
PF3D7_1133400 27128092

PF3D7_0731500,12345678
  PF3D7_0102800	33333333  
`
	pairs, err := ParsePairs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{GeneID: "PF3D7_1133400", PubMedID: "27128092"},
		{GeneID: "PF3D7_0731500", PubMedID: "12345678"},
		{GeneID: "PF3D7_0102800", PubMedID: "33333333"},
	}, pairs)
}

func TestParsePairs_BadLine(t *testing.T) {
	_, err := ParsePairs(strings.NewReader("PF3D7_1133400 27128092\nPF3D7_0731500\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
