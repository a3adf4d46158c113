package pstree

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"pkt.systems/pstree/ansi"
)

// LoggerFromEnvOption customizes LoggerFromEnv behavior.
type LoggerFromEnvOption func(*loggerFromEnvConfig)

type loggerFromEnvConfig struct {
	prefix  string
	options Options
	writer  io.Writer
}

// WithEnvPrefix overrides the environment variable prefix used by LoggerFromEnv.
func WithEnvPrefix(prefix string) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds LoggerFromEnv with explicit Options values.
func WithEnvOptions(opts Options) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter seeds LoggerFromEnv with a default output writer.
func WithEnvWriter(w io.Writer) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.writer = w
	}
}

// LoggerFromEnv builds a logger from environment variables, allowing optional
// seeded options and writers. Environment values override supplied options.
//
// Recognised variables are: {prefix}LEVEL, MODE (tree|dev|flat|lean),
// NO_COLOR, FORCE_COLOR, PALETTE and OUTPUT. OUTPUT accepts stdout, stderr,
// default, a file path, or stdout+/stderr+/default+<path> to tee. The
// unprefixed NO_COLOR variable (https://no-color.org/) also disables colour
// when it is set to a non-empty value.
func LoggerFromEnv(opts ...LoggerFromEnvOption) Logger {
	cfg := loggerFromEnvConfig{prefix: "LOG_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolvedOpts := cfg.options
	baseWriter := cfg.writer
	if baseWriter == nil {
		baseWriter = os.Stdout
	}
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "LEVEL"); ok {
		if level, ok := ParseLevel(value); ok {
			resolvedOpts.MinLevel = level
		}
	}
	if value, ok := lookupEnv(prefix, "MODE"); ok {
		if parsed, ok := ParseMode(value); ok {
			resolvedOpts.Mode = parsed
		}
	}
	if value, ok := os.LookupEnv("NO_COLOR"); ok && value != "" {
		resolvedOpts.NoColor = true
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		resolvedOpts.Palette = ansi.PaletteByName(value)
	}
	outputValue, hasOutput := lookupEnv(prefix, "OUTPUT")
	writer := baseWriter
	var outputErr error
	if hasOutput {
		if resolved, err := writerFromEnvOutput(outputValue, baseWriter); err != nil {
			outputErr = err
			writer = baseWriter
		} else {
			writer = resolved
		}
	}
	logger := NewWithOptions(writer, resolvedOpts)
	if outputErr != nil {
		logger.Errorf("logger output %q could not be opened: %v", strings.TrimSpace(outputValue), outputErr)
	}
	return logger
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func writerFromEnvOutput(value string, base io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nil
	}
	if base == nil {
		base = io.Discard
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "default":
		return base, nil
	}
	const (
		stdoutPrefix  = "stdout+"
		stderrPrefix  = "stderr+"
		defaultPrefix = "default+"
	)
	var primary io.Writer
	var path string
	switch {
	case strings.HasPrefix(lowered, stdoutPrefix):
		primary, path = os.Stdout, strings.TrimSpace(trimmed[len(stdoutPrefix):])
	case strings.HasPrefix(lowered, stderrPrefix):
		primary, path = os.Stderr, strings.TrimSpace(trimmed[len(stderrPrefix):])
	case strings.HasPrefix(lowered, defaultPrefix):
		primary, path = base, strings.TrimSpace(trimmed[len(defaultPrefix):])
	default:
		fileWriter, err := openLogOutputFile(trimmed)
		if err != nil {
			return base, err
		}
		return newOwnedOutput(fileWriter, fileWriter), nil
	}
	if path == "" {
		return primary, nil
	}
	fileWriter, err := openLogOutputFile(path)
	if err != nil {
		return base, err
	}
	return newOwnedOutput(newTeeWriter(fileWriter, primary, fileWriter), fileWriter), nil
}

func openLogOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log output %q", path)
	}
	return file, nil
}
