// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
)

// Result codes carried in PipelineResult.Code.
const (
	CodeOK    = 0
	CodeError = 1
)

// MessageOK is the message of every successful result.
const MessageOK = "OK"

// PipelineResult is the output record of one (gene, paper) run. Failed runs
// carry only Code, Message, GeneID and PubMedID; the serialized form omits
// the remaining fields for them.
type PipelineResult struct {
	Code         int      `json:"code" yaml:"code"`
	Message      string   `json:"message" yaml:"message"`
	Title        string   `json:"title" yaml:"title"`
	ShortSummary string   `json:"short_summary" yaml:"short_summary"`
	Summary      string   `json:"summary" yaml:"summary"`
	Extract      string   `json:"extract" yaml:"extract"`
	GeneID       string   `json:"gene_id" yaml:"gene_id"`
	PubMedID     string   `json:"pubmed_id" yaml:"pubmed_id"`
	Synonyms     []string `json:"synonyms" yaml:"synonyms"`
	PaperText    string   `json:"paper_text" yaml:"paper_text"`
}

// ErrorResult builds the error envelope for a failed run.
func ErrorResult(geneID, pubmedID, message string) PipelineResult {
	return PipelineResult{
		Code:     CodeError,
		Message:  message,
		GeneID:   geneID,
		PubMedID: pubmedID,
	}
}

// OK reports whether the run succeeded.
func (r PipelineResult) OK() bool {
	return r.Code == CodeOK
}

// errorEnvelope is the serialized shape of a failed result.
type errorEnvelope struct {
	Code     int    `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
	GeneID   string `json:"gene_id" yaml:"gene_id"`
	PubMedID string `json:"pubmed_id" yaml:"pubmed_id"`
}

// successEnvelope mirrors PipelineResult without its marshaling methods.
type successEnvelope PipelineResult

// envelope returns the value that is actually serialized for r.
func (r PipelineResult) envelope() any {
	if !r.OK() {
		return errorEnvelope{Code: r.Code, Message: r.Message, GeneID: r.GeneID, PubMedID: r.PubMedID}
	}
	s := successEnvelope(r)
	if s.Synonyms == nil {
		s.Synonyms = []string{}
	}
	return s
}

// MarshalJSON writes the error envelope for failed results and the full
// record, with synonyms always present as an array, for successful ones.
// Paper text is emitted verbatim, so HTML escaping is off.
func (r PipelineResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.envelope()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalYAML applies the same envelope rules as MarshalJSON.
func (r PipelineResult) MarshalYAML() (any, error) {
	return r.envelope(), nil
}
