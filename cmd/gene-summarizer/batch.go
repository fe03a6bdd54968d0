// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gene-summarizer/internal/pipeline"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Summarize many gene/paper pairs listed in a file",
	Long: `Batch reads one "GENE_ID PUBMED_ID" pair per line from FILE (or stdin
when FILE is "-"). Blank lines and lines starting with # are ignored.

Pairs are processed one after another. Each result envelope is printed as one
JSON line; a failed completion becomes an error envelope and the batch goes
on. A summary is printed to stderr and the command exits non-zero when any
pair failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("store", false, "record every result in the results database")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	pairs, err := readPairs(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no gene/paper pairs in %s", args[0])
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

	out := cmd.OutOrStdout()
	summary, err := driver.ProcessBatch(cmd.Context(), pairs, func(r types.PipelineResult) error {
		if err := record(cmd.Context(), db, r); err != nil {
			return err
		}
		return writeJSONLine(out, r)
	})

	fmt.Fprintf(cmd.ErrOrStderr(), "\nBatch complete: %d succeeded, %d failed, %d total\n",
		summary.Succeeded, summary.Failed, summary.Total())

	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d pair(s) failed", summary.Failed)
	}
	return nil
}

func readPairs(stdin io.Reader, path string) ([]pipeline.Pair, error) {
	if path == "-" {
		return pipeline.ParsePairs(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pipeline.ParsePairs(f)
}
