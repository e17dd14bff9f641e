package utils

import (
	"log/slog"
	"os"
)

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Log format constants
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// GetLogLevel converts a string log level to slog.Level
func GetLogLevel(level string) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	case LogLevelInfo:
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// ValidateLogLevel ensures the provided level is valid, returning a default if not
func ValidateLogLevel(level string) string {
	switch level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return level
	default:
		return LogLevelInfo
	}
}

// ValidateLogFormat ensures the provided format is valid, returning a default if not
func ValidateLogFormat(format string) string {
	switch format {
	case LogFormatText, LogFormatJSON:
		return format
	default:
		return LogFormatText
	}
}

// SetupLogger creates a logger writing to stderr with the given level and
// format.
func SetupLogger(level string, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: GetLogLevel(ValidateLogLevel(level))}

	var handler slog.Handler
	if ValidateLogFormat(format) == LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// SetAsDefaultLogger installs the logger as the process default.
func SetAsDefaultLogger(logger *slog.Logger) {
	slog.SetDefault(logger)
}
