package models

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	DefaultJPEGQuality   = 92
	DefaultDecodeTimeout = 10 * time.Second
	DownloadName         = "filter.jpg"
	DownloadMediaType    = "application/octet-stream"
)

// EditorConfiguration is read once at startup.
type EditorConfiguration struct {
	DefaultAvatar string
	FilterDir     string
	DownloadDir   string
	JPEGQuality   int
	DecodeTimeout time.Duration
	// ProfilingAddr enables the pprof server when set.
	ProfilingAddr string
}

// NewEditorConfiguration returns the defaults used when no environment is set.
func NewEditorConfiguration() EditorConfiguration {
	return EditorConfiguration{
		DownloadDir:   defaultDownloadDir(),
		JPEGQuality:   DefaultJPEGQuality,
		DecodeTimeout: DefaultDecodeTimeout,
	}
}

// LoadEditorConfiguration overlays the environment onto the defaults.
func LoadEditorConfiguration() EditorConfiguration {
	return ConfigurationFromLookup(os.LookupEnv)
}

// ConfigurationFromLookup builds a configuration from an env lookup function.
// Malformed numbers and durations keep their defaults.
func ConfigurationFromLookup(lookup func(string) (string, bool)) EditorConfiguration {
	cfg := NewEditorConfiguration()

	if v, ok := lookup("AVATAR_DEFAULT"); ok {
		cfg.DefaultAvatar = v
	}
	if v, ok := lookup("FILTER_DIR"); ok {
		cfg.FilterDir = v
	}
	if v, ok := lookup("DOWNLOAD_DIR"); ok && v != "" {
		cfg.DownloadDir = v
	}
	if v, ok := lookup("JPEG_QUALITY"); ok {
		if q, err := strconv.Atoi(v); err == nil {
			cfg.JPEGQuality = min(max(q, 1), 100)
		}
	}
	if v, ok := lookup("PPROF_ADDR"); ok {
		cfg.ProfilingAddr = v
	}
	if v, ok := lookup("DECODE_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.DecodeTimeout = d
		}
	}

	return cfg
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, "Downloads")
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "."
	}
	return dir
}
