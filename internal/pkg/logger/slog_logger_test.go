//go:build unit
// +build unit

package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, config.LogLevelInfo, config.LogFormatText)

	log.Debug("hidden")
	log.Info("equipment created", "jft_no", "JFT-001")
	log.Warn("near expiry", "days", 3)
	log.Error("upload failed")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "equipment created")
	assert.Contains(t, output, "jft_no=JFT-001")
	assert.Contains(t, output, "days=3")
	assert.Contains(t, output, "upload failed")
}

func TestSlogLogger_JSONWith(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, config.LogLevelDebug, config.LogFormatJSON).With("component", "sweep")

	log.Debug("tick", "count", 2)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &record))
	assert.Equal(t, "tick", record["msg"])
	assert.Equal(t, "sweep", record["component"])
	assert.Equal(t, float64(2), record["count"])
}

func TestSlogLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, config.LogLevelInfo, config.LogFormatText)

	assert.PanicsWithValue(t, "boom", func() {
		log.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}

func TestNewConsoleLogger(t *testing.T) {
	log := NewConsoleLogger(config.LogLevelInfo, config.LogFormatText)
	require.NotNil(t, log)

	require.NotPanics(t, func() {
		log.Info("test")
		log.Warn("test")
		log.Error("test")
	})
}
