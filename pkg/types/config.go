// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by the clients that call the
// document and alias services.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gene-summarizer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// RequestsPerSecond caps outbound requests. Zero disables the limit.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second" validate:"gte=0"`
}

// SourceConfig holds settings for fetching paper full text.
type SourceConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BioCURL is the base URL of the PMC open-access BioC JSON service.
	// The PubMed ID is appended to it.
	BioCURL string `json:"bioc_url" yaml:"bioc_url" mapstructure:"bioc_url" validate:"required,url"`

	// Sections is the allow-list of BioC section types kept in the paper text.
	Sections []string `json:"sections" yaml:"sections" mapstructure:"sections" validate:"required,min=1,dive,required"`
}

// AliasConfig holds settings for the gene alias lookup.
type AliasConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// URL is the record service endpoint of the gene database.
	URL string `json:"url" yaml:"url" mapstructure:"url" validate:"required,url"`

	// Project is the database project identifier sent with each lookup
	// (e.g. "PlasmoDB").
	Project string `json:"project" yaml:"project" mapstructure:"project" validate:"required"`

	// Limit is the maximum number of synonyms kept for prompts (default 3).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit" validate:"gt=0"`
}

// AIConfig holds settings for the text-completion API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gpt-4o").
	Model string `json:"model" yaml:"model" mapstructure:"model" validate:"required"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the API endpoint. Empty uses the provider default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url" validate:"omitempty,url"`

	// MaxTokens bounds the length of each completion.
	MaxTokens int64 `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens" validate:"gt=0"`

	// Temperature is the sampling temperature.
	Temperature float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature" validate:"gte=0,lte=2"`

	// PromptsFile is an optional YAML file overriding the default prompt templates.
	PromptsFile string `json:"prompts_file,omitempty" yaml:"prompts_file,omitempty" mapstructure:"prompts_file"`
}

// StoreConfig holds settings for the results log.
type StoreConfig struct {
	// Enabled turns on recording of every result in the SQLite database.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path" mapstructure:"path" validate:"required_if=Enabled true"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`

	// Format is "console" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=console json"`
}

// PipelineConfig groups all settings for a run.
type PipelineConfig struct {
	Source  SourceConfig `json:"source" yaml:"source" mapstructure:"source"`
	Aliases AliasConfig  `json:"aliases" yaml:"aliases" mapstructure:"aliases"`
	AI      AIConfig     `json:"ai" yaml:"ai" mapstructure:"ai"`
	Store   StoreConfig  `json:"store" yaml:"store" mapstructure:"store"`
	Log     LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}
