package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value string
		debug bool
		want  zerolog.Level
	}{
		{"debug", false, zerolog.DebugLevel},
		{"INFO", false, zerolog.InfoLevel},
		{"warn", false, zerolog.WarnLevel},
		{"warning", false, zerolog.WarnLevel},
		{" error ", false, zerolog.ErrorLevel},
		{"", false, zerolog.InfoLevel},
		{"", true, zerolog.DebugLevel},
		{"bogus", true, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.value, tt.debug), "value=%q debug=%v", tt.value, tt.debug)
	}
}

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Error("ExportService", errors.New("disk full"), map[string]interface{}{"name": "filter.jpg"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "ExportService", entry["component"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "filter.jpg", entry["name"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("PanState", "drag", nil)
	log.Info("PanState", "drag", nil)
	assert.Zero(t, buf.Len())

	log.Warning("PanState", "drag", nil)
	assert.NotZero(t, buf.Len())
}
