package pstree

import "fmt"

// treeLogger renders the branch gutter in front of every line.
type treeLogger struct {
	cfg   coreConfig
	stack Stack
}

func newTreeLogger(cfg coreConfig) *treeLogger {
	return &treeLogger{cfg: cfg}
}

func (l *treeLogger) Trace(msg string) { l.log(TraceLevel, msg) }
func (l *treeLogger) Debug(msg string) { l.log(DebugLevel, msg) }
func (l *treeLogger) Info(msg string)  { l.log(InfoLevel, msg) }
func (l *treeLogger) Warn(msg string)  { l.log(WarnLevel, msg) }
func (l *treeLogger) Error(msg string) { l.log(ErrorLevel, msg) }

func (l *treeLogger) Tracef(format string, args ...any) { l.logf(TraceLevel, format, args) }
func (l *treeLogger) Debugf(format string, args ...any) { l.logf(DebugLevel, format, args) }
func (l *treeLogger) Infof(format string, args ...any)  { l.logf(InfoLevel, format, args) }
func (l *treeLogger) Warnf(format string, args ...any)  { l.logf(WarnLevel, format, args) }
func (l *treeLogger) Errorf(format string, args ...any) { l.logf(ErrorLevel, format, args) }

func (l *treeLogger) Log(level Level, msg string) {
	l.log(level, msg)
}

func (l *treeLogger) Logf(level Level, format string, args ...any) {
	l.logf(level, format, args)
}

func (l *treeLogger) Enabled(level Level) bool {
	return l.cfg.shouldLog(level)
}

func (l *treeLogger) logf(level Level, format string, args []any) {
	if !l.cfg.shouldLog(level) {
		return
	}
	l.log(level, fmt.Sprintf(format, args...))
}

func (l *treeLogger) log(level Level, msg string) {
	if !l.cfg.shouldLog(level) {
		return
	}
	out := l.cfg.out
	out.mu.Lock()
	lw := acquireLineWriter(out.writer)
	l.cfg.render.record(lw, l.stack.view(), level, msg)
	l.stack.MarkActivity()
	err := lw.commit()
	releaseLineWriter(lw)
	out.mu.Unlock()
	out.fail(err)
}

func (l *treeLogger) Enter(name string) {
	out := l.cfg.out
	out.mu.Lock()
	lw := acquireLineWriter(out.writer)
	frames := l.stack.view()
	if l.stack.EndedBranch() {
		l.cfg.render.separator(lw, frames)
	}
	// The banner sits at the parent depth so the new bar lines up under it.
	l.cfg.render.banner(lw, frames, name)
	l.stack.Push(name)
	err := lw.commit()
	releaseLineWriter(lw)
	out.mu.Unlock()
	out.fail(err)
}

func (l *treeLogger) Exit() {
	if err := l.exit(); err != nil {
		panic(err)
	}
}

func (l *treeLogger) TryExit() error {
	return l.exit()
}

func (l *treeLogger) exit() error {
	out := l.cfg.out
	out.mu.Lock()
	top, err := l.stack.Pop()
	if err != nil {
		out.mu.Unlock()
		return err
	}
	lw := acquireLineWriter(out.writer)
	l.cfg.render.banner(lw, l.stack.view(), top.Name)
	werr := lw.commit()
	releaseLineWriter(lw)
	out.mu.Unlock()
	out.fail(werr)
	return nil
}

func (l *treeLogger) Scoped(name string) *Guard {
	l.Enter(name)
	return newGuard(name, l.Exit)
}

func (l *treeLogger) Branch(name string, fn func() error) error {
	return runBranch(l, name, fn)
}

func (l *treeLogger) Depth() int {
	l.cfg.out.mu.Lock()
	defer l.cfg.out.mu.Unlock()
	return l.stack.Depth()
}

func (l *treeLogger) Frames() []Frame {
	l.cfg.out.mu.Lock()
	defer l.cfg.out.mu.Unlock()
	return l.stack.Frames()
}

func (l *treeLogger) Fork() Logger {
	return newTreeLogger(l.cfg)
}

func (l *treeLogger) Mode() Mode {
	return ModeTree
}

func (l *treeLogger) Close() error {
	l.cfg.out.mu.Lock()
	defer l.cfg.out.mu.Unlock()
	return closeOutput(l.cfg.out.writer)
}
