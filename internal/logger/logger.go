package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the logging surface shared by controllers and services.
// Every entry carries the emitting component name.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnv resolves the log level from LOG_LEVEL, then DEBUG=1.
func LevelFromEnv() zerolog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"), os.Getenv("DEBUG") == "1")
}

// ParseLevel maps a LOG_LEVEL value onto a zerolog level. Unknown values
// fall back to info, or debug when the debug flag is set.
func ParseLevel(value string, debug bool) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if debug {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}

// Nop discards everything. Tests and headless helpers use it.
func Nop() Logger {
	return &ZerologAdapter{logger: zerolog.Nop()}
}
