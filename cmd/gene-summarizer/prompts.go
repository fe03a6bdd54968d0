// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gene-summarizer/internal/summarize"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Print the prompt templates in effect",
	Long: `Prompts prints the system prompt and the four stage templates as YAML,
after applying ai.prompts_file. The output is a valid prompts file: edit it
and point ai.prompts_file at it to change the prompts. The [gene] placeholder
is replaced with the gene and its aliases at run time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := summarize.LoadTemplates(cfg.AI.PromptsFile)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(templates); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(promptsCmd)
}
