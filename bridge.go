package pstree

import (
	"bytes"
	"log"
	"strings"
)

// LogLogger wraps a Logger into a stdlib *log.Logger. Each written line is
// classified with ClassifyLine.
func LogLogger(logger Logger) *log.Logger {
	if logger == nil {
		logger = noopLogger{}
	}
	return log.New(loggerWriter{logger: logger}, "", 0)
}

// LogLoggerWithLevel wraps a Logger into a stdlib *log.Logger that pins every
// emitted entry to level.
func LogLoggerWithLevel(logger Logger, level Level) *log.Logger {
	if logger == nil {
		logger = noopLogger{}
	}
	return log.New(levelPinnedWriter{logger: logger, level: level}, "", 0)
}

// ClassifyLine splits a free-form line into a level and message. It accepts a
// leading "[level]" tag or a leading level word followed by ':', '-' or space
// ("warn: disk almost full"). Anything else is InfoLevel.
func ClassifyLine(line string) (Level, string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.IndexRune(trimmed, ']'); end > 1 {
			candidate := trimmed[1:end]
			if lvl, ok := ParseLevel(candidate); ok && lvl != Disabled {
				msg := strings.TrimSpace(trimmed[end+1:])
				return lvl, msg
			}
		}
	}
	lowered := strings.ToLower(trimmed)
	trimTail := func(prefixLen int) string {
		tail := strings.TrimSpace(trimmed[prefixLen:])
		tail = strings.TrimLeft(tail, ":- ")
		return strings.TrimSpace(tail)
	}
	switch {
	case hasLevelWord(lowered, "trace"):
		return TraceLevel, trimTail(len("trace"))
	case hasLevelWord(lowered, "debug"):
		return DebugLevel, trimTail(len("debug"))
	case hasLevelWord(lowered, "info"):
		return InfoLevel, trimTail(len("info"))
	case hasLevelWord(lowered, "warning"):
		return WarnLevel, trimTail(len("warning"))
	case hasLevelWord(lowered, "warn"):
		return WarnLevel, trimTail(len("warn"))
	case hasLevelWord(lowered, "error"):
		return ErrorLevel, trimTail(len("error"))
	default:
		return InfoLevel, trimmed
	}
}

// hasLevelWord reports whether s starts with word as a whole word, so that
// "information" is not read as an info tag.
func hasLevelWord(s, word string) bool {
	if !strings.HasPrefix(s, word) {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	switch s[len(word)] {
	case ':', '-', ' ', '\t':
		return true
	default:
		return false
	}
}

type loggerWriter struct {
	logger Logger
}

func (w loggerWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if w.logger == nil {
		return len(p), nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		line = bytes.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" {
			continue
		}
		level, msg := ClassifyLine(trimmed)
		w.logger.Log(level, msg)
	}
	return len(p), nil
}

type levelPinnedWriter struct {
	logger Logger
	level  Level
}

func (w levelPinnedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if w.logger == nil {
		return len(p), nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		line = bytes.TrimSpace(bytes.TrimSuffix(line, []byte{'\r'}))
		if len(line) == 0 {
			continue
		}
		w.logger.Log(w.level, string(line))
	}
	return len(p), nil
}
