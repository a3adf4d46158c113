package pstree

import (
	"os"
	"strings"
)

// Level defines log levels. Higher values are more severe.
type Level int8

const (
	// DebugLevel defines debug log level.
	DebugLevel Level = iota
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
	// Disabled is a minimum level that suppresses every record.
	Disabled
	// TraceLevel defines trace log level.
	TraceLevel Level = -1
)

// ParseLevel converts a textual level into a Level value. It accepts
// "trace", "debug", "info", "warn", "warning", "error", "disabled", "off" and
// "none" (case insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return Disabled, true
	default:
		return InfoLevel, false
	}
}

// LevelString returns the canonical lowercase name of a Level.
func LevelString(level Level) string {
	switch level {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case Disabled:
		return "disabled"
	default:
		return "info"
	}
}

// String returns the tag text rendered in front of every record, e.g. "WARN".
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case Disabled:
		return "OFF"
	default:
		return "INFO"
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return InfoLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return InfoLevel, false
	}
	return ParseLevel(value)
}

// tag is the rendered level label including the trailing colon.
func (l Level) tag() string {
	switch l {
	case TraceLevel:
		return "TRACE:"
	case DebugLevel:
		return "DEBUG:"
	case InfoLevel:
		return "INFO:"
	case WarnLevel:
		return "WARN:"
	case ErrorLevel:
		return "ERROR:"
	default:
		return "INFO:"
	}
}

func enabledAt(level, min Level) bool {
	if min == Disabled || level >= Disabled {
		return false
	}
	return level >= min
}
