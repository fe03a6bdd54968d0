// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gene-summarizer/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List or export recorded results",
	Long: `Results reads the results database written by summarize --store and
batch --store. Records are listed newest first and can be filtered by gene,
paper, or failure. With --export the matching records are written to a YAML
file instead.`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().String("gene", "", "filter by gene ID")
	resultsCmd.Flags().String("pubmed", "", "filter by PubMed ID")
	resultsCmd.Flags().Bool("failed", false, "show only error results")
	resultsCmd.Flags().Int("limit", 20, "maximum number of records listed")
	resultsCmd.Flags().Bool("json", false, "output records as JSON")
	resultsCmd.Flags().String("export", "", "write matching records to this YAML file")

	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	sc := cfg.Store
	sc.Enabled = true
	db, err := store.NewStore(sc)
	if err != nil {
		return err
	}
	defer db.Close()

	q := store.Query{}
	q.GeneID, _ = cmd.Flags().GetString("gene")
	q.PubMedID, _ = cmd.Flags().GetString("pubmed")
	q.FailedOnly, _ = cmd.Flags().GetBool("failed")
	q.Limit, _ = cmd.Flags().GetInt("limit")

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("export"); path != "" {
		n, err := db.ExportYAML(cmd.Context(), q, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported %d result(s) to %s\n", n, path)
		return nil
	}

	records, err := db.List(cmd.Context(), q)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if records == nil {
			records = []store.Record{}
		}
		return enc.Encode(records)
	}
	return formatRecords(out, records)
}

func formatRecords(out io.Writer, records []store.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}

	fmt.Fprintf(out, "%-20s  %-16s  %-10s  %-4s  %s\n", "Recorded", "Gene", "PubMed", "Code", "Title / Message")
	fmt.Fprintln(out, strings.Repeat("-", 100))

	for _, rec := range records {
		r := rec.Result
		text := r.Title
		if !r.OK() {
			text = r.Message
		}
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		fmt.Fprintf(out, "%-20s  %-16s  %-10s  %-4d  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"), r.GeneID, r.PubMedID, r.Code, text)
	}

	fmt.Fprintf(out, "\n%d results\n", len(records))
	return nil
}
