// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// Pair is one (gene, paper) job.
type Pair struct {
	GeneID   string `json:"gene_id" yaml:"gene_id"`
	PubMedID string `json:"pubmed_id" yaml:"pubmed_id"`
}

// BatchSummary holds counts from a batch run.
type BatchSummary struct {
	Succeeded int
	Failed    int
}

// Total returns the number of pairs processed.
func (s BatchSummary) Total() int {
	return s.Succeeded + s.Failed
}

// HasFailures reports whether any pair produced an error result.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// Sink receives each result of a batch as soon as it is produced.
type Sink func(types.PipelineResult) error

// ProcessBatch runs pairs one after another. A completion failure becomes an
// error envelope carrying the failure text, and the batch continues. The
// batch stops early only when ctx is done or sink fails.
func (d *Driver) ProcessBatch(ctx context.Context, pairs []Pair, sink Sink) (BatchSummary, error) {
	var summary BatchSummary

	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		d.log.Info("batch item", zap.Int("index", i+1), zap.Int("of", len(pairs)),
			zap.String("gene_id", p.GeneID), zap.String("pubmed_id", p.PubMedID))

		result, err := d.ProcessPaper(ctx, p.GeneID, p.PubMedID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return summary, ctxErr
			}
			result = types.ErrorResult(p.GeneID, p.PubMedID, err.Error())
		}

		if result.OK() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}

		if err := sink(result); err != nil {
			return summary, fmt.Errorf("writing result for %s/%s: %w", p.GeneID, p.PubMedID, err)
		}
	}

	return summary, nil
}

// ParsePairs reads one "GENE_ID PUBMED_ID" pair per line, separated by
// whitespace or a comma. Blank lines and lines starting with # are skipped.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want GENE_ID PUBMED_ID, got %q", lineNo, line)
		}
		pairs = append(pairs, Pair{GeneID: fields[0], PubMedID: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading pairs: %w", err)
	}
	return pairs, nil
}
