package pstree

import (
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"pkt.systems/pstree/ansi"
)

// Base defines the smallest set of leveled methods that library authors can
// require when they only need to emit records.
type Base interface {
	// Trace logs msg at TraceLevel (below DebugLevel).
	Trace(msg string)
	// Debug logs msg at DebugLevel.
	Debug(msg string)
	// Info logs msg at InfoLevel.
	Info(msg string)
	// Warn logs msg at WarnLevel.
	Warn(msg string)
	// Error logs msg at ErrorLevel.
	Error(msg string)
}

// Brancher is the branch half of a Logger. Branches are named scopes drawn as
// one gutter column each while they are open.
type Brancher interface {
	// Enter opens a branch named name and renders its banner.
	Enter(name string)
	// Exit closes the innermost branch and renders its closing banner. Exit
	// on a logger with no open branch panics with an error marked
	// ErrEmptyStackUnderflow.
	Exit()
	// TryExit is Exit returning ErrEmptyStackUnderflow instead of panicking.
	TryExit() error
	// Scoped opens a branch and returns a guard whose Release closes it.
	//
	//	defer logger.Scoped("parse").Release()
	Scoped(name string) *Guard
	// Branch runs fn inside a branch named name. The branch is closed on
	// every path out of fn, including a panic, which is re-raised afterwards.
	Branch(name string, fn func() error) error
	// Depth returns the number of open branches.
	Depth() int
	// Frames returns a snapshot of the open branches, outermost first.
	Frames() []Frame
}

// Logger is the main interface of pstree. A Logger owns one branch stack and
// is meant to be driven by one goroutine; use Fork to hand a logger with its
// own stack to another goroutine.
type Logger interface {
	Base
	Brancher

	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// Log emits msg at level.
	Log(level Level, msg string)
	// Logf formats and emits a record at level.
	Logf(level Level, format string, args ...any)
	// Enabled reports whether records at level are emitted.
	Enabled(level Level) bool

	// Fork returns a logger writing to the same destination with the same
	// settings and an empty branch stack.
	Fork() Logger
	// Mode reports the rendering strategy, ModeTree or ModeFlat.
	Mode() Mode
	// Close releases outputs the logger opened itself (see LoggerFromEnv).
	// Writers supplied by the caller are left open.
	Close() error
}

// Mode selects the rendering strategy.
type Mode int

const (
	// ModeDefault resolves to ModeTree, or to ModeFlat when built with the
	// pstree_lean tag.
	ModeDefault Mode = iota
	// ModeTree renders the branch gutter and tracks the branch stack.
	ModeTree
	// ModeFlat renders a coloured tag and the message only. Branch calls are
	// no-ops.
	ModeFlat
)

// DefaultMode returns the mode ModeDefault resolves to in this build.
func DefaultMode() Mode {
	return defaultMode
}

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeFlat:
		return "flat"
	default:
		return "default"
	}
}

// ParseMode accepts "tree", "dev", "development", "flat", "lean",
// "production" and "default" (case insensitive).
func ParseMode(value string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "tree", "dev", "development":
		return ModeTree, true
	case "flat", "lean", "production":
		return ModeFlat, true
	case "default", "":
		return ModeDefault, true
	default:
		return ModeDefault, false
	}
}

// Options controls how a pstree logger renders and filters output.
type Options struct {
	// Mode selects tree or flat rendering. The zero value follows the build.
	Mode Mode

	// MinLevel sets the minimum level the logger will emit. Defaults to Debug.
	MinLevel Level

	// NoColor forces colour escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits colour even when the
	// destination is not a TTY. Useful for tests and forced-colour logs.
	ForceColor bool

	// Palette overrides the ANSI palette. When nil, the package-level ansi
	// values at construction time are used.
	Palette *ansi.Palette

	// OnWriteError receives every failed write. When nil a failed write
	// panics, since a log that silently loses lines is worse than none.
	OnWriteError func(error)
}

// New constructs a logger writing to w in the build's default mode.
func New(w io.Writer) Logger {
	return NewWithOptions(w, Options{})
}

// NewTree constructs a logger that always renders the branch gutter.
func NewTree(w io.Writer) Logger {
	return NewWithOptions(w, Options{Mode: ModeTree})
}

// NewFlat constructs a lean logger without branch tracking.
func NewFlat(w io.Writer) Logger {
	return NewWithOptions(w, Options{Mode: ModeFlat})
}

// NewWithOptions builds a logger with explicit settings.
func NewWithOptions(w io.Writer, opts Options) Logger {
	return buildAdapter(w, opts)
}

func buildAdapter(w io.Writer, opts Options) Logger {
	if w == nil {
		w = io.Discard
	}
	mode := opts.Mode
	if mode != ModeTree && mode != ModeFlat {
		mode = defaultMode
	}
	colorEnabled := !opts.NoColor && (opts.ForceColor || isTerminal(w))
	onWriteError := opts.OnWriteError
	if onWriteError == nil {
		onWriteError = panicOnWriteError
	}
	cfg := coreConfig{
		out: &output{
			writer:       w,
			onWriteError: onWriteError,
		},
		minLevel: opts.MinLevel,
		render: renderer{
			color:   colorEnabled,
			palette: resolvePaletteOption(opts.Palette),
		},
	}
	if mode == ModeFlat {
		return newFlatLogger(cfg)
	}
	return newTreeLogger(cfg)
}

func panicOnWriteError(err error) {
	panic(errors.Wrap(err, "pstree: write log output"))
}

type loggerContextKey struct{}

// ContextWithLogger returns a child context carrying logger. Passing the
// logger through the context keeps each goroutine's branch stack explicit.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// LoggerFromContext extracts a Logger from ctx if present or returns a
// logger that discards everything.
func LoggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return noopLogger{}
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(Logger); ok && logger != nil {
		return logger
	}
	return noopLogger{}
}

// Ctx is shorthand for LoggerFromContext.
func Ctx(ctx context.Context) Logger {
	return LoggerFromContext(ctx)
}
