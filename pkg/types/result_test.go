// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestPipelineResult_ErrorEnvelopeJSON(t *testing.T) {
	r := ErrorResult("PF3D7_0731500", "999", "Paper not found")
	r.Title = "ignored"

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":1,"message":"Paper not found","gene_id":"PF3D7_0731500","pubmed_id":"999"}`, string(data))
	assert.False(t, r.OK())
}

func TestPipelineResult_SuccessJSON(t *testing.T) {
	r := PipelineResult{
		Code:         CodeOK,
		Message:      MessageOK,
		Title:        "t",
		ShortSummary: "s",
		Summary:      "sum",
		Extract:      "ex",
		GeneID:       "g",
		PubMedID:     "p",
		PaperText:    "a < b && c > d\n",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 10)
	assert.Equal(t, []any{}, got["synonyms"], "nil synonyms serialize as an empty array")
	assert.Equal(t, "a < b && c > d\n", got["paper_text"])
	assert.True(t, r.OK())
}

func TestPipelineResult_NoHTMLEscaping(t *testing.T) {
	r := PipelineResult{Message: MessageOK, PaperText: "<i>Plasmodium</i> & more"}

	data, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "<i>Plasmodium</i> & more")
	assert.NotContains(t, string(data), `\u003c`)
}

func TestPipelineResult_YAML(t *testing.T) {
	data, err := yaml.Marshal(ErrorResult("g", "p", "Paper fetch status code: 500"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "code: 1\n")
	assert.Contains(t, string(data), "Paper fetch status code: 500")
	assert.NotContains(t, string(data), "title")

	data, err = yaml.Marshal(PipelineResult{Message: MessageOK, Synonyms: []string{"EBA181"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "synonyms:\n    - EBA181\n")
	assert.Contains(t, string(data), "paper_text: \"\"\n")
}
