// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gene-summarizer CLI.
// It summarizes what a paper says about one gene: the paper's full text is
// fetched from PMC, the gene's aliases are ranked by how often the paper uses
// them, and a four-step prompt chain produces extract, summary, short
// summary and title.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/gene-summarizer/internal/config"
	"github.com/pdiddy/gene-summarizer/internal/logging"
	"github.com/pdiddy/gene-summarizer/internal/secrets"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds one file per API key.
const secretsDir = ".secrets/"

// Populated by the root command before any subcommand runs.
var (
	cfg    types.PipelineConfig
	logger = zap.NewNop()
)

// rootCmd is the base command for the gene-summarizer CLI.
var rootCmd = &cobra.Command{
	Use:   "gene-summarizer",
	Short: "Summarize what a scientific paper says about a gene",
	Long: `gene-summarizer reads the open-access full text of a paper, finds the
aliases under which it mentions a gene, and asks a language model for a
verbatim extract, a summary, a one-sentence summary and a title for that gene.

Results are printed as a JSON (or YAML) envelope with code 0 on success and
code 1 with a message when the paper cannot be fetched.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gene-summarizer.yaml or ~/.config/gene-summarizer/gene-summarizer.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// setup loads secrets and configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	s, err := secrets.Load(secretsDir, nil)
	if err != nil {
		return err
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		v.Set("log.level", lvl)
	}

	loaded, err := config.Load(v, s)
	if err != nil {
		return err
	}
	cfg = loaded

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	logger = log

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", zap.String("path", used))
	}
	if names := s.Names(); len(names) > 0 {
		sort.Strings(names)
		logger.Debug("loaded secrets", zap.Strings("names", names))
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
