package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelzero/internal/platform/config"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, config.Log{Level: "info", Format: "text"})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, config.Log{Level: "trace", Format: "json"})
	require.NoError(t, err)

	log.Debug("checker failed", "checker", "parameter")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "checker failed", line["msg"])
	assert.Equal(t, "parameter", line["checker"])
}

func TestOffDiscards(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, config.Log{Level: "off"})
	require.NoError(t, err)

	log.Error("dropped")
	assert.Zero(t, buf.Len())
}

func TestRejectsUnknownSettings(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, config.Log{Level: "loud"})
	assert.Error(t, err)

	_, err = NewWithWriter(&bytes.Buffer{}, config.Log{Level: "warn", Format: "xml"})
	assert.Error(t, err)
}
