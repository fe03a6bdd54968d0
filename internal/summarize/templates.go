// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.yaml.in/yaml/v3"
)

// GenePlaceholder is the only placeholder recognised in prompt templates.
const GenePlaceholder = "[gene]"

// Stage names one step of the prompt chain.
type Stage string

const (
	StageExtract      Stage = "extract"
	StageSummary      Stage = "summary"
	StageShortSummary Stage = "short_summary"
	StageTitle        Stage = "title"
)

// Templates holds the system prompt and one user prompt per stage. A value
// is built once at startup and passed to NewChain; it is never modified
// afterwards.
type Templates struct {
	System       string `yaml:"system"`
	Extract      string `yaml:"extract"`
	Summary      string `yaml:"summary"`
	ShortSummary string `yaml:"short_summary"`
	Title        string `yaml:"title"`
}

const defaultSystem = "You are a systematic gene curation assistant for scientific publications.  Your output will be used verbatim. Do not include any commentary, explanations, apologies, or disclaimers. Only return the final result as plain text."

const defaultExtract = "From the text given, extract and quote all of the information which is related to [gene]. Quote all specific results, data, inferences or conclusions that are relevant to this specific gene.  But do not infer activity based on other genes, focus only on this specific gene product. "

const defaultSummary = `ROLE: You are a scientist preparing a literature review making a study of the gene known as [gene] GOAL: Your purpose is to systematically review the text and summarise. Think step-by-step using the following workflow: 
 1) Include any experiments conducted and their results, as well as all conclusions to do with the activity, location, domain or expression of this gene.
 2) Include anything else that may be relevant to a scientist studying this gene. 
 3) Provide the key findings from your review in bullet point format. 
 4) Consider if each bullet point is based on direct evidence from a statement made in the text, or based on inferences you made from the text.
 5) This gene is present in the text.  If it is only mentioned in passing, or without any conclusion, then include the context of where it is mentioned and supply direct quotes. 
 6) Classify each bullet point as ‘Direct’ or ‘Inferred’ in your response. 
 Respond objectively.  Add no other commentary. Do not refer to the gene by name or id as this is already included in the user output.`

const defaultShortSummary = " Give a one-sentence overview summary for [gene] in the previous text. If the evidence is limited or uncertain do not give a misleading summary by making statements that do not have clear support; you must include any and all limitations of the evidence such as putative or hypothetical etc.   Add no other commentary.  Do not refer to the gene by name or id as this is already included in the user output. "

const defaultTitle = " Give a short title describing the role of [gene] in the previous text. If the evidence is limited do not give a misleading title by making statements that do not have clear support; you must include any  limitations of the evidence such as putative or hypothetical etc. Add no other commentary.  Do not refer to the gene by name or id as this is already included in the user output."

// DefaultTemplates returns the built-in gene curation prompts.
func DefaultTemplates() Templates {
	return Templates{
		System:       defaultSystem,
		Extract:      defaultExtract,
		Summary:      defaultSummary,
		ShortSummary: defaultShortSummary,
		Title:        defaultTitle,
	}
}

// LoadTemplates reads a YAML file of template overrides. Keys left out of
// the file keep their default text; unknown keys are an error.
func LoadTemplates(path string) (Templates, error) {
	t := DefaultTemplates()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Templates{}, eris.Wrapf(err, "reading prompts file %s", path)
	}

	var override Templates
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&override); err != nil && !errors.Is(err, io.EOF) {
		return Templates{}, eris.Wrapf(err, "parsing prompts file %s", path)
	}

	if override.System != "" {
		t.System = override.System
	}
	if override.Extract != "" {
		t.Extract = override.Extract
	}
	if override.Summary != "" {
		t.Summary = override.Summary
	}
	if override.ShortSummary != "" {
		t.ShortSummary = override.ShortSummary
	}
	if override.Title != "" {
		t.Title = override.Title
	}
	return t, nil
}

// Template returns the user prompt template for stage.
func (t Templates) Template(stage Stage) string {
	switch stage {
	case StageExtract:
		return t.Extract
	case StageSummary:
		return t.Summary
	case StageShortSummary:
		return t.ShortSummary
	case StageTitle:
		return t.Title
	}
	return ""
}

// Render substitutes geneContext for every [gene] placeholder in the
// template for stage.
func (t Templates) Render(stage Stage, geneContext string) string {
	return strings.ReplaceAll(t.Template(stage), GenePlaceholder, geneContext)
}
