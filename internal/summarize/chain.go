// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns a paper's text into layered gene summaries with a
// fixed four-stage prompt chain: extract, summary, short summary, title.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Completer is a single non-streaming text completion: a system prompt and
// an ordered list of user messages in, plain text out. Implementations must
// not retry.
type Completer interface {
	Complete(ctx context.Context, system string, messages []string) (string, error)
}

// CompletionError reports a failed completion call and the stage it
// belonged to.
type CompletionError struct {
	Stage Stage
	Err   error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s completion failed: %v", e.Stage, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// Summaries holds the output of every stage of one chain run.
type Summaries struct {
	Extract      string
	Summary      string
	ShortSummary string
	Title        string
}

// Chain runs the prompt chain against a Completer.
type Chain struct {
	completer Completer
	templates Templates
	log       *zap.Logger
}

// NewChain returns a chain using templates for every stage.
func NewChain(completer Completer, templates Templates, log *zap.Logger) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{completer: completer, templates: templates, log: log}
}

// Run executes the stages in order:
//
//	extract       = complete(paperText, extract prompt)
//	summary       = Clean(complete(extract, summary prompt))
//	short summary = Clean(complete(summary, short summary prompt))
//	title         = Clean(complete(extract, title prompt))
//
// The title is derived from the raw extract, not from the summary. The first
// failed stage aborts the run with a *CompletionError and no partial output.
func (c *Chain) Run(ctx context.Context, paperText, geneContext string) (Summaries, error) {
	var s Summaries
	var err error

	if s.Extract, err = c.stage(ctx, StageExtract, paperText, geneContext); err != nil {
		return Summaries{}, err
	}

	summary, err := c.stage(ctx, StageSummary, s.Extract, geneContext)
	if err != nil {
		return Summaries{}, err
	}
	s.Summary = Clean(summary)

	short, err := c.stage(ctx, StageShortSummary, s.Summary, geneContext)
	if err != nil {
		return Summaries{}, err
	}
	s.ShortSummary = Clean(short)

	title, err := c.stage(ctx, StageTitle, s.Extract, geneContext)
	if err != nil {
		return Summaries{}, err
	}
	s.Title = Clean(title)

	return s, nil
}

// stage sends input followed by the rendered prompt for stage.
func (c *Chain) stage(ctx context.Context, stage Stage, input, geneContext string) (string, error) {
	prompt := c.templates.Render(stage, geneContext)

	c.log.Debug("prompt stage", zap.String("stage", string(stage)), zap.Int("input_bytes", len(input)))

	out, err := c.completer.Complete(ctx, c.templates.System, []string{input, prompt})
	if err != nil {
		return "", &CompletionError{Stage: stage, Err: err}
	}

	c.log.Debug("prompt stage done", zap.String("stage", string(stage)), zap.Int("output_bytes", len(out)))
	return out, nil
}

// Clean trims surrounding whitespace and strips one pair of enclosing quotes
// when the text starts and ends with the same straight quote character.
func Clean(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if first == last && (first == '"' || first == '\'') {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text
}
