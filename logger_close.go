package pstree

import (
	"io"
	"os"
)

func closeOutput(w io.Writer) error {
	if w == nil || w == os.Stdout || w == os.Stderr {
		return nil
	}
	if c, ok := w.(pstreeOwnedCloser); ok {
		return c.pstreeOwnedClose()
	}
	return nil
}
