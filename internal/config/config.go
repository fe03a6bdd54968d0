// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the pipeline settings from a YAML file, environment
// variables, and the .secrets/ directory, and validates the result.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"

	"github.com/pdiddy/gene-summarizer/internal/secrets"
	"github.com/pdiddy/gene-summarizer/pkg/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g.
	// GENE_SUMMARIZER_AI_MODEL for ai.model.
	EnvPrefix = "GENE_SUMMARIZER"

	// Name is the config file base name searched in . and
	// ~/.config/gene-summarizer/.
	Name = "gene-summarizer"

	// OpenAIKeyEnv is the last fallback for the completion API key.
	OpenAIKeyEnv = "OPENAI_API_KEY"
)

// Defaults applied before the config file and environment.
const (
	DefaultBioCURL   = "https://www.ncbi.nlm.nih.gov/research/bionlp/RESTful/pmcoa.cgi/BioC_json/"
	DefaultAliasURL  = "https://plasmodb.org/plasmo/service/record-types/gene/records"
	DefaultProject   = "PlasmoDB"
	DefaultUserAgent = "gene-summarizer/0.1"
	DefaultTimeout   = 60 * time.Second
	DefaultModel     = "gpt-4o"
	DefaultMaxTokens = 16384
	DefaultStorePath = "results/results.db"
)

// New returns a viper instance with defaults and environment binding
// applied. When cfgFile is empty the standard locations are searched and a
// missing file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, eris.Wrap(err, "reading config file")
		}
	}
	return v, nil
}

// SetDefaults registers every known key so that environment overrides
// reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("source.bioc_url", DefaultBioCURL)
	v.SetDefault("source.timeout", DefaultTimeout)
	v.SetDefault("source.user_agent", DefaultUserAgent)
	v.SetDefault("source.requests_per_second", 3.0)
	v.SetDefault("source.sections", append([]string(nil), types.DefaultSections...))

	v.SetDefault("aliases.url", DefaultAliasURL)
	v.SetDefault("aliases.project", DefaultProject)
	v.SetDefault("aliases.limit", 3)
	v.SetDefault("aliases.timeout", DefaultTimeout)
	v.SetDefault("aliases.user_agent", DefaultUserAgent)
	v.SetDefault("aliases.requests_per_second", 0.0)

	v.SetDefault("ai.model", DefaultModel)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.max_tokens", DefaultMaxTokens)
	v.SetDefault("ai.temperature", 0.0)
	v.SetDefault("ai.prompts_file", "")

	v.SetDefault("store.enabled", false)
	v.SetDefault("store.path", DefaultStorePath)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load unmarshals v into a PipelineConfig, fills the API key from secrets or
// the environment when the config leaves it empty, and validates the result.
func Load(v *viper.Viper, s secrets.Secrets) (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.PipelineConfig{}, eris.Wrap(err, "decoding configuration")
	}

	cfg.AI.APIKey = s.Resolve(cfg.AI.APIKey, secrets.OpenAIKey, OpenAIKeyEnv)

	for i, sec := range cfg.Source.Sections {
		cfg.Source.Sections[i] = strings.ToUpper(strings.TrimSpace(sec))
	}

	if err := Validate(cfg); err != nil {
		return types.PipelineConfig{}, err
	}
	return cfg, nil
}
