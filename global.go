package pstree

import (
	"os"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// ErrAlreadyInitialized is returned when a global logger is registered twice.
var ErrAlreadyInitialized = errors.New("pstree: global logger already initialized")

type globalSink struct {
	logger Logger
}

// global is written once by Init or InitWithLogger. The compare-and-swap
// orders the registration before every Load that observes it.
var global atomic.Pointer[globalSink]

// unbound holds the branch stack the global branch helpers use before Init.
// It renders banners to os.Stdout and drops every record.
var unbound atomic.Pointer[globalSink]

// Init registers a logger on os.Stdout as the global sink with minimum level
// min. Colour follows terminal detection and the mode follows the build.
func Init(min Level) error {
	return InitWithLogger(NewWithOptions(os.Stdout, Options{MinLevel: min}))
}

// InitWithLogger registers logger as the global sink. Only the first
// registration succeeds; later calls return ErrAlreadyInitialized.
func InitWithLogger(logger Logger) error {
	if logger == nil {
		return errors.AssertionFailedf("pstree: InitWithLogger called with nil logger")
	}
	if !global.CompareAndSwap(nil, &globalSink{logger: logger}) {
		return errors.WithStack(ErrAlreadyInitialized)
	}
	return nil
}

// Default returns the global logger, or a logger that discards everything
// when none has been registered.
func Default() Logger {
	if sink := global.Load(); sink != nil {
		return sink.logger
	}
	return noopLogger{}
}

// branchLogger returns the global logger, or the lazily built unbound stack
// when Init has not run yet.
func branchLogger() Logger {
	if sink := global.Load(); sink != nil {
		return sink.logger
	}
	if sink := unbound.Load(); sink != nil {
		return sink.logger
	}
	unbound.CompareAndSwap(nil, &globalSink{logger: NewWithOptions(os.Stdout, Options{MinLevel: Disabled})})
	return unbound.Load().logger
}

// Tracef logs a formatted record at TraceLevel on the global logger.
func Tracef(format string, args ...any) { Default().Tracef(format, args...) }

// Debugf logs a formatted record at DebugLevel on the global logger.
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }

// Infof logs a formatted record at InfoLevel on the global logger.
func Infof(format string, args ...any) { Default().Infof(format, args...) }

// Warnf logs a formatted record at WarnLevel on the global logger.
func Warnf(format string, args ...any) { Default().Warnf(format, args...) }

// Errorf logs a formatted record at ErrorLevel on the global logger.
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// Log emits msg at level on the global logger.
func Log(level Level, msg string) { Default().Log(level, msg) }

// EnterBranch opens a branch on the global logger. Before Init the branch is
// kept on a stdout stack of its own, so banners still render and the stack
// still balances.
//
// The global logger has one branch stack shared by every goroutine. Code that
// runs branches concurrently should take a Fork of the logger and pass it
// along, for example through ContextWithLogger and Ctx.
func EnterBranch(name string) { branchLogger().Enter(name) }

// ExitBranch closes the innermost branch of the global logger. It panics
// with an error marked ErrEmptyStackUnderflow when no branch is open, also
// before Init. Like EnterBranch it works on the one stack shared by all
// goroutines; see Logger.Fork for per-goroutine stacks.
func ExitBranch() { branchLogger().Exit() }

// EnterBranchScoped opens a branch on the global logger and returns the guard
// that closes it.
//
//	defer pstree.EnterBranchScoped("block1").Release()
func EnterBranchScoped(name string) *Guard { return branchLogger().Scoped(name) }
