// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/gene-summarizer/internal/acquire"
	"github.com/pdiddy/gene-summarizer/internal/httputil"
	"github.com/pdiddy/gene-summarizer/internal/pipeline"
	"github.com/pdiddy/gene-summarizer/internal/store"
	"github.com/pdiddy/gene-summarizer/internal/summarize"
)

func newBioCClient() *acquire.BioCClient {
	return acquire.NewBioCClient(httputil.New(nil, cfg.Source.HTTPConfig), cfg.Source, logger)
}

func newAliasClient() *acquire.AliasClient {
	return acquire.NewAliasClient(httputil.New(nil, cfg.Aliases.HTTPConfig), cfg.Aliases, logger)
}

// newDriver assembles the full pipeline from the loaded configuration.
func newDriver() (*pipeline.Driver, error) {
	templates, err := summarize.LoadTemplates(cfg.AI.PromptsFile)
	if err != nil {
		return nil, err
	}
	chain := summarize.NewChain(summarize.NewOpenAICompleter(cfg.AI), templates, logger)

	return pipeline.NewDriver(newBioCClient(), newAliasClient(), chain, pipeline.Options{
		Sections:     cfg.Source.Sections,
		SynonymLimit: cfg.Aliases.Limit,
	}, logger), nil
}

// openStore opens the results database when --store is set or the config
// enables it. It returns nil when recording is off.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	enabled := cfg.Store.Enabled
	if cmd.Flags().Changed("store") {
		enabled, _ = cmd.Flags().GetBool("store")
	}
	if !enabled {
		return nil, nil
	}

	sc := cfg.Store
	sc.Enabled = true
	return store.NewStore(sc)
}
