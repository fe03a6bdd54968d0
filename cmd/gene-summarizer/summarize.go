// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/gene-summarizer/internal/store"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// errResultFailed marks a run whose envelope carries code 1. The envelope
// itself has already been printed.
var errResultFailed = errors.New("pipeline returned an error result")

var summarizeCmd = &cobra.Command{
	Use:   "summarize GENE_ID PUBMED_ID",
	Short: "Summarize what one paper says about one gene",
	Long: `Summarize fetches the paper's full text, keeps the curated sections,
ranks the gene's aliases by how often the paper mentions them, and runs the
extract, summary, short summary and title prompts.

The result envelope is printed to stdout. The command exits non-zero when the
paper cannot be fetched or a completion fails.`,
	Args: cobra.ExactArgs(2),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().String("format", formatJSON, "output format: json or yaml")
	summarizeCmd.Flags().Bool("store", false, "record the result in the results database")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	geneID, pubmedID := args[0], args[1]

	format, _ := cmd.Flags().GetString("format")
	if err := validFormat(format); err != nil {
		return err
	}

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	driver, err := newDriver()
	if err != nil {
		return err
	}

	result, err := driver.ProcessPaper(cmd.Context(), geneID, pubmedID)
	if err != nil {
		logger.Error("summarize failed",
			zap.String("gene_id", geneID), zap.String("pubmed_id", pubmedID), zap.Error(err))
		return err
	}

	if err := record(cmd.Context(), db, result); err != nil {
		return err
	}
	if err := writeResult(cmd.OutOrStdout(), result, format); err != nil {
		return err
	}
	if !result.OK() {
		return fmt.Errorf("%w: %s", errResultFailed, result.Message)
	}
	return nil
}

// record saves r when a store is open.
func record(ctx context.Context, db *store.Store, r types.PipelineResult) error {
	if db == nil {
		return nil
	}
	rec, err := db.Save(ctx, r)
	if err != nil {
		return err
	}
	logger.Debug("result recorded", zap.String("id", rec.ID))
	return nil
}
