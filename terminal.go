package pstree

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

// wrappedWriter is implemented by the writers in this package that decorate
// another writer, so terminal detection can look through them.
type wrappedWriter interface {
	underlyingWriter() io.Writer
}

const maxWriterUnwrap = 8

func isTerminal(w io.Writer) bool {
	for range maxWriterUnwrap {
		if f, ok := w.(fdWriter); ok {
			return term.IsTerminal(int(f.Fd()))
		}
		inner, ok := w.(wrappedWriter)
		if !ok {
			return false
		}
		w = inner.underlyingWriter()
		if w == nil {
			return false
		}
	}
	return false
}
