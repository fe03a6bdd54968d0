// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(types.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("fetched paper", zap.String("pubmed_id", "27128092"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "fetched paper", entry["msg"])
	assert.Equal(t, "27128092", entry["pubmed_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(types.LogConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	log.Debug("prompt stage", zap.String("stage", "extract"))
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "prompt stage")
}

func TestNew_Defaults(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(types.LogConfig{}, &buf)
	require.NoError(t, err)
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_Invalid(t *testing.T) {
	_, err := NewWithWriter(types.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewWithWriter(types.LogConfig{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
