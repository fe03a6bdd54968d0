// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Passage is a labeled fragment of a paper's full text (e.g. the abstract or
// one results paragraph).
type Passage struct {
	// Section is the section type label from the source (e.g. "ABSTRACT",
	// "RESULTS"). It may be empty when the source omits it.
	Section string `json:"section" yaml:"section"`

	// Text is the passage text. Nil when the source record has no text field.
	Text *string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Document is the ordered sequence of passages that make up one paper.
// Documents are read-only once fetched.
type Document struct {
	// PubMedID identifies the paper the passages were fetched for.
	PubMedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Passages holds the passages in source order.
	Passages []Passage `json:"passages" yaml:"passages"`
}

// DefaultSections is the allow-list of section types relevant for gene curation.
var DefaultSections = []string{"TITLE", "FIG", "TABLE", "ABSTRACT", "INTRO", "RESULTS", "CONCL"}
