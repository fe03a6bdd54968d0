// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes document fetch, section filtering, synonym
// selection, and the prompt chain into the per-paper curation run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/gene-summarizer/internal/acquire"
	"github.com/pdiddy/gene-summarizer/internal/summarize"
	"github.com/pdiddy/gene-summarizer/internal/synonym"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// MessageNotFound is the result message for a paper the source has no record of.
const MessageNotFound = "Paper not found"

// DocumentFetcher returns the passages of a paper. Implementations report a
// missing paper with acquire.ErrNotFound and other failures with
// *acquire.FetchError.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, pubmedID string) (types.Document, error)
}

// AliasFetcher returns the known aliases of a gene. It never fails; an
// unavailable lookup yields no aliases.
type AliasFetcher interface {
	FetchAliases(ctx context.Context, geneID string) []string
}

// Summarizer runs the prompt chain over a paper's text.
type Summarizer interface {
	Run(ctx context.Context, paperText, geneContext string) (summarize.Summaries, error)
}

// Options tunes a Driver.
type Options struct {
	// Sections is the allow-list passed to acquire.FilterSections.
	// Empty uses types.DefaultSections.
	Sections []string

	// SynonymLimit is the number of synonyms kept. Zero uses synonym.DefaultLimit.
	SynonymLimit int
}

// Driver runs the curation pipeline for one (gene, paper) pair at a time.
// It holds no per-run state.
type Driver struct {
	docs     DocumentFetcher
	aliases  AliasFetcher
	chain    Summarizer
	sections []string
	limit    int
	log      *zap.Logger
}

// NewDriver wires the collaborators of a run.
func NewDriver(docs DocumentFetcher, aliases AliasFetcher, chain Summarizer, opts Options, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	sections := opts.Sections
	if len(sections) == 0 {
		sections = types.DefaultSections
	}
	limit := opts.SynonymLimit
	if limit <= 0 {
		limit = synonym.DefaultLimit
	}
	return &Driver{
		docs:     docs,
		aliases:  aliases,
		chain:    chain,
		sections: sections,
		limit:    limit,
		log:      log,
	}
}

// ProcessPaper produces the PipelineResult for geneID in paper pubmedID.
//
// A paper that cannot be fetched yields an error envelope (code 1) and a nil
// error; nothing else runs. A failed completion is returned as the error
// (a *summarize.CompletionError) with a zero result, so the caller decides
// how to report it. Context cancellation is returned as an error as well.
func (d *Driver) ProcessPaper(ctx context.Context, geneID, pubmedID string) (types.PipelineResult, error) {
	log := d.log.With(zap.String("gene_id", geneID), zap.String("pubmed_id", pubmedID))
	start := time.Now()

	doc, err := d.docs.FetchDocument(ctx, pubmedID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return types.PipelineResult{}, ctxErr
		}
		msg := fetchFailureMessage(err)
		log.Warn("paper fetch failed", zap.String("reason", msg), zap.Error(err))
		return types.ErrorResult(geneID, pubmedID, msg), nil
	}

	paperText := acquire.FilterSections(doc, d.sections)

	aliases := d.aliases.FetchAliases(ctx, geneID)
	synonyms := synonym.SelectTopAliases(geneID, aliases, paperText, d.limit)
	geneContext := synonym.GeneContext(geneID, synonyms)

	log.Info("summarizing",
		zap.Int("paper_bytes", len(paperText)),
		zap.Int("aliases", len(aliases)),
		zap.Strings("synonyms", synonyms),
	)

	s, err := d.chain.Run(ctx, paperText, geneContext)
	if err != nil {
		log.Error("prompt chain failed", zap.Error(err))
		return types.PipelineResult{}, err
	}

	log.Info("summarized", zap.Duration("elapsed", time.Since(start)))

	return types.PipelineResult{
		Code:         types.CodeOK,
		Message:      types.MessageOK,
		Title:        s.Title,
		ShortSummary: s.ShortSummary,
		Summary:      s.Summary,
		Extract:      s.Extract,
		GeneID:       geneID,
		PubMedID:     pubmedID,
		Synonyms:     synonyms,
		PaperText:    paperText,
	}, nil
}

// fetchFailureMessage maps a document fetch failure to the result message.
func fetchFailureMessage(err error) string {
	if errors.Is(err, acquire.ErrNotFound) {
		return MessageNotFound
	}
	var fe *acquire.FetchError
	if errors.As(err, &fe) {
		if fe.StatusCode != 0 {
			return fmt.Sprintf("Paper fetch status code: %d", fe.StatusCode)
		}
		return fmt.Sprintf("Paper fetch failed: %v", fe.Err)
	}
	return fmt.Sprintf("Paper fetch failed: %v", err)
}
