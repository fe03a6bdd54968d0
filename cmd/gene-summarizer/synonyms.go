// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gene-summarizer/internal/acquire"
	"github.com/pdiddy/gene-summarizer/internal/synonym"
)

var synonymsCmd = &cobra.Command{
	Use:   "synonyms GENE_ID PUBMED_ID",
	Short: "Show how often each alias of a gene appears in a paper",
	Long: `Synonyms fetches the paper and the gene's aliases and prints every alias
with its occurrence count in the curated sections, best first. The aliases
marked with * are the ones the summarize command puts in its prompts.`,
	Args: cobra.ExactArgs(2),
	RunE: runSynonyms,
}

func init() {
	synonymsCmd.Flags().Bool("json", false, "output the ranking as JSON")

	rootCmd.AddCommand(synonymsCmd)
}

func runSynonyms(cmd *cobra.Command, args []string) error {
	geneID, pubmedID := args[0], args[1]
	ctx := cmd.Context()

	doc, err := newBioCClient().FetchDocument(ctx, pubmedID)
	if err != nil {
		return err
	}
	text := acquire.FilterSections(doc, cfg.Source.Sections)
	aliases := newAliasClient().FetchAliases(ctx, geneID)

	ranking := synonym.Rank(geneID, aliases, text)

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ranking)
	}

	if len(ranking) == 0 {
		fmt.Fprintf(out, "No aliases found for %s.\n", geneID)
		return nil
	}

	fmt.Fprintf(out, "%-4s  %-30s  %s\n", "Rank", "Alias", "Count")
	fmt.Fprintln(out, strings.Repeat("-", 45))
	for i, ac := range ranking {
		mark := " "
		if i < cfg.Aliases.Limit {
			mark = "*"
		}
		fmt.Fprintf(out, "%-4d%s %-30s  %d\n", i+1, mark, ac.Alias, ac.Count)
	}
	fmt.Fprintf(out, "\nPrompt context: %s\n",
		synonym.GeneContext(geneID, synonym.SelectTopAliases(geneID, aliases, text, cfg.Aliases.Limit)))
	return nil
}
