package pstree

import "fmt"

// flatLogger is the lean renderer: no gutter, no branch stack. Branch calls
// only run their callbacks.
type flatLogger struct {
	cfg coreConfig
}

func newFlatLogger(cfg coreConfig) *flatLogger {
	return &flatLogger{cfg: cfg}
}

func (l *flatLogger) Trace(msg string) { l.log(TraceLevel, msg) }
func (l *flatLogger) Debug(msg string) { l.log(DebugLevel, msg) }
func (l *flatLogger) Info(msg string)  { l.log(InfoLevel, msg) }
func (l *flatLogger) Warn(msg string)  { l.log(WarnLevel, msg) }
func (l *flatLogger) Error(msg string) { l.log(ErrorLevel, msg) }

func (l *flatLogger) Tracef(format string, args ...any) { l.logf(TraceLevel, format, args) }
func (l *flatLogger) Debugf(format string, args ...any) { l.logf(DebugLevel, format, args) }
func (l *flatLogger) Infof(format string, args ...any)  { l.logf(InfoLevel, format, args) }
func (l *flatLogger) Warnf(format string, args ...any)  { l.logf(WarnLevel, format, args) }
func (l *flatLogger) Errorf(format string, args ...any) { l.logf(ErrorLevel, format, args) }

func (l *flatLogger) Log(level Level, msg string) {
	l.log(level, msg)
}

func (l *flatLogger) Logf(level Level, format string, args ...any) {
	l.logf(level, format, args)
}

func (l *flatLogger) Enabled(level Level) bool {
	return l.cfg.shouldLog(level)
}

func (l *flatLogger) logf(level Level, format string, args []any) {
	if !l.cfg.shouldLog(level) {
		return
	}
	l.log(level, fmt.Sprintf(format, args...))
}

func (l *flatLogger) log(level Level, msg string) {
	if !l.cfg.shouldLog(level) {
		return
	}
	out := l.cfg.out
	out.mu.Lock()
	lw := acquireLineWriter(out.writer)
	l.cfg.render.flat(lw, level, msg)
	err := lw.commit()
	releaseLineWriter(lw)
	out.mu.Unlock()
	out.fail(err)
}

func (l *flatLogger) Enter(string)   {}
func (l *flatLogger) Exit()          {}
func (l *flatLogger) TryExit() error { return nil }
func (l *flatLogger) Depth() int     { return 0 }
func (l *flatLogger) Frames() []Frame {
	return nil
}

func (l *flatLogger) Scoped(name string) *Guard {
	return newGuard(name, nil)
}

func (l *flatLogger) Branch(name string, fn func() error) error {
	return runBranch(l, name, fn)
}

func (l *flatLogger) Fork() Logger {
	return l
}

func (l *flatLogger) Mode() Mode {
	return ModeFlat
}

func (l *flatLogger) Close() error {
	l.cfg.out.mu.Lock()
	defer l.cfg.out.mu.Unlock()
	return closeOutput(l.cfg.out.writer)
}
