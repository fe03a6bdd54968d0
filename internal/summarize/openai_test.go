// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

const sampleChatCompletion = `{
  "id": "chatcmpl-123",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o",
  "choices": [{
    "index": 0,
    "finish_reason": "stop",
    "message": {"role": "assistant", "content": "AMA1 is required for invasion."}
  }]
}`

type chatRequest struct {
	Model               string   `json:"model"`
	Temperature         *float64 `json:"temperature"`
	MaxCompletionTokens int64    `json:"max_completion_tokens"`
	Messages            []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func testAIConfig(url string) types.AIConfig {
	return types.AIConfig{
		Model:       "gpt-4o",
		APIKey:      "test-key",
		BaseURL:     url + "/v1/",
		MaxTokens:   16384,
		Temperature: 0,
	}
}

func TestOpenAICompleter(t *testing.T) {
	var got chatRequest
	var path, auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleChatCompletion))
	}))
	defer ts.Close()

	c := NewOpenAICompleter(testAIConfig(ts.URL))
	out, err := c.Complete(context.Background(), "SYS", []string{"paper text", "extract about G1"})
	require.NoError(t, err)
	assert.Equal(t, "AMA1 is required for invasion.", out)

	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "gpt-4o", got.Model)
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.0, *got.Temperature)
	assert.Equal(t, int64(16384), got.MaxCompletionTokens)

	require.Len(t, got.Messages, 3)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "SYS", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "paper text", got.Messages[1].Content)
	assert.Equal(t, "user", got.Messages[2].Role)
	assert.Equal(t, "extract about G1", got.Messages[2].Content)
}

func TestOpenAICompleter_ErrorIsNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer ts.Close()

	c := NewOpenAICompleter(testAIConfig(ts.URL))
	_, err := c.Complete(context.Background(), "SYS", []string{"x"})
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestOpenAICompleter_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "object": "chat.completion", "choices": []}`))
	}))
	defer ts.Close()

	c := NewOpenAICompleter(testAIConfig(ts.URL))
	_, err := c.Complete(context.Background(), "SYS", []string{"x"})
	assert.Error(t, err)
}
