package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfigurationFromLookup(t *testing.T) {
	cfg := ConfigurationFromLookup(lookupFrom(map[string]string{
		"AVATAR_DEFAULT": "/tmp/me.png",
		"FILTER_DIR":     "/tmp/filters",
		"DOWNLOAD_DIR":   "/tmp/out",
		"JPEG_QUALITY":   "150",
		"DECODE_TIMEOUT": "3s",
		"PPROF_ADDR":     "localhost:6060",
	}))

	assert.Equal(t, "/tmp/me.png", cfg.DefaultAvatar)
	assert.Equal(t, "/tmp/filters", cfg.FilterDir)
	assert.Equal(t, "/tmp/out", cfg.DownloadDir)
	assert.Equal(t, 100, cfg.JPEGQuality)
	assert.Equal(t, 3*time.Second, cfg.DecodeTimeout)
	assert.Equal(t, "localhost:6060", cfg.ProfilingAddr)
}

func TestConfigurationKeepsDefaultsOnBadInput(t *testing.T) {
	cfg := ConfigurationFromLookup(lookupFrom(map[string]string{
		"JPEG_QUALITY":   "high",
		"DECODE_TIMEOUT": "-1s",
		"DOWNLOAD_DIR":   "",
	}))

	assert.Equal(t, DefaultJPEGQuality, cfg.JPEGQuality)
	assert.Equal(t, DefaultDecodeTimeout, cfg.DecodeTimeout)
	assert.NotEmpty(t, cfg.DownloadDir)
}
