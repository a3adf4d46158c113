package pstree

type noopLogger struct{}

func (noopLogger) Trace(string)               {}
func (noopLogger) Debug(string)               {}
func (noopLogger) Info(string)                {}
func (noopLogger) Warn(string)                {}
func (noopLogger) Error(string)               {}
func (noopLogger) Tracef(string, ...any)      {}
func (noopLogger) Debugf(string, ...any)      {}
func (noopLogger) Infof(string, ...any)       {}
func (noopLogger) Warnf(string, ...any)       {}
func (noopLogger) Errorf(string, ...any)      {}
func (noopLogger) Log(Level, string)          {}
func (noopLogger) Logf(Level, string, ...any) {}
func (noopLogger) Enabled(Level) bool         { return false }
func (noopLogger) Enter(string)               {}
func (noopLogger) Exit()                      {}
func (noopLogger) TryExit() error             { return nil }
func (noopLogger) Depth() int                 { return 0 }
func (noopLogger) Frames() []Frame            { return nil }
func (noopLogger) Mode() Mode                 { return ModeFlat }
func (noopLogger) Close() error               { return nil }
func (n noopLogger) Fork() Logger             { return n }
func (noopLogger) Scoped(name string) *Guard  { return newGuard(name, nil) }

func (n noopLogger) Branch(name string, fn func() error) error {
	return runBranch(n, name, fn)
}
