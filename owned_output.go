package pstree

import (
	"io"
	"sync"
	"sync/atomic"
)

type pstreeOwnedCloser interface {
	pstreeOwnedClose() error
}

// ownedOutput marks a writer the logger opened itself and may therefore
// close. Writers handed in by callers are never wrapped in one. Writes after
// Close are dropped rather than reported, the logger asked for the close.
type ownedOutput struct {
	writer   io.Writer
	closer   io.Closer
	closeErr error
	closed   atomic.Bool
	once     sync.Once
}

func newOwnedOutput(writer io.Writer, closer io.Closer) io.Writer {
	if writer == nil {
		writer = io.Discard
	}
	if closer == nil {
		return writer
	}
	if existing, ok := writer.(*ownedOutput); ok {
		return existing
	}
	return &ownedOutput{writer: writer, closer: closer}
}

func (o *ownedOutput) Write(p []byte) (int, error) {
	if o.closed.Load() {
		return len(p), nil
	}
	return o.writer.Write(p)
}

func (o *ownedOutput) Close() error {
	return o.pstreeOwnedClose()
}

func (o *ownedOutput) pstreeOwnedClose() error {
	o.once.Do(func() {
		o.closed.Store(true)
		if o.closer != nil {
			o.closeErr = o.closer.Close()
		}
	})
	return o.closeErr
}

func (o *ownedOutput) underlyingWriter() io.Writer {
	return o.writer
}
