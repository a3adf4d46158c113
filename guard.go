package pstree

import "sync"

// Guard closes the branch it was created for. Release runs the exit once;
// later calls do nothing. Guards are released in reverse order of creation
// when used with defer:
//
//	func compile(l pstree.Logger) {
//		defer l.Scoped("compile").Release()
//		...
//	}
type Guard struct {
	name    string
	release func()
	once    sync.Once
}

func newGuard(name string, release func()) *Guard {
	return &Guard{name: name, release: release}
}

// Name returns the name of the branch the guard closes.
func (g *Guard) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

// Release closes the branch. It is safe to call more than once and on a nil
// guard.
func (g *Guard) Release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		if g.release != nil {
			g.release()
		}
	})
}

func runBranch(l Logger, name string, fn func() error) error {
	g := l.Scoped(name)
	defer g.Release()
	if fn == nil {
		return nil
	}
	return fn()
}

// EnterFunc opens a branch on l named after the calling function.
//
//	func resolveImports(l pstree.Logger) {
//		defer pstree.EnterFunc(l).Release()
//		...
//	}
func EnterFunc(l Logger) *Guard {
	if l == nil {
		return nil
	}
	return l.Scoped(functionNameFromCaller(2))
}
