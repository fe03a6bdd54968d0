// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rotisserie/eris"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// OpenAICompleter implements Completer with the OpenAI Chat Completions API.
// The SDK's automatic retries are disabled.
type OpenAICompleter struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewOpenAICompleter builds a completer from cfg. Extra options are applied
// after the ones derived from cfg.
func NewOpenAICompleter(cfg types.AIConfig, opts ...option.RequestOption) *OpenAICompleter {
	base := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		base = append(base, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAICompleter{
		client:      openai.NewClient(append(base, opts...)...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Complete sends system as the system message and each entry of messages as
// a separate user message, and returns the first choice's content.
func (c *OpenAICompleter) Complete(ctx context.Context, system string, messages []string) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if system != "" {
		msgs = append(msgs, openai.SystemMessage(system))
	}
	for _, m := range messages {
		msgs = append(msgs, openai.UserMessage(m))
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(c.maxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", eris.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
