package pstree

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// WriteFailure is one rendered line (or block of lines) that did not reach
// the destination in full.
type WriteFailure struct {
	Err       error
	Written   int
	Attempted int
}

// ObservedWriterStats counts the writes seen by an ObservedWriter.
type ObservedWriterStats struct {
	Writes      uint64
	Failures    uint64
	ShortWrites uint64
}

// ObservedWriter wraps a log destination and keeps score of the writes that
// failed. Combined with an Options.OnWriteError that does not panic, a
// program can keep rendering through a broken pipe or a full disk and report
// the loss once, via Err, when it is done:
//
//	out := pstree.NewObservedWriter(os.Stdout, nil)
//	logger := pstree.NewWithOptions(out, pstree.Options{OnWriteError: func(error) {}})
//	defer func() { err = errors.CombineErrors(err, out.Err()) }()
type ObservedWriter struct {
	dst       io.Writer
	onFailure func(WriteFailure)

	writes   atomic.Uint64
	failures atomic.Uint64
	short    atomic.Uint64

	mu    sync.Mutex
	first error
}

// NewObservedWriter wraps dst. onFailure, when set, sees every failed write.
func NewObservedWriter(dst io.Writer, onFailure func(WriteFailure)) *ObservedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &ObservedWriter{dst: dst, onFailure: onFailure}
}

func (w *ObservedWriter) Write(p []byte) (int, error) {
	if w == nil {
		return len(p), nil
	}
	w.writes.Add(1)
	n, err := w.dst.Write(p)
	if n != len(p) {
		w.short.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	if err == nil {
		return n, nil
	}
	w.failures.Add(1)
	w.mu.Lock()
	if w.first == nil {
		w.first = err
	}
	w.mu.Unlock()
	if w.onFailure != nil {
		w.onFailure(WriteFailure{Err: err, Written: n, Attempted: len(p)})
	}
	return n, err
}

// Stats returns the cumulative counters.
func (w *ObservedWriter) Stats() ObservedWriterStats {
	if w == nil {
		return ObservedWriterStats{}
	}
	return ObservedWriterStats{
		Writes:      w.writes.Load(),
		Failures:    w.failures.Load(),
		ShortWrites: w.short.Load(),
	}
}

// Err returns nil when every write succeeded. Otherwise it wraps the first
// failure with the number of lost writes.
func (w *ObservedWriter) Err() error {
	stats := w.Stats()
	if stats.Failures == 0 {
		return nil
	}
	w.mu.Lock()
	first := w.first
	w.mu.Unlock()
	return errors.Wrapf(first, "%d of %d log writes failed", stats.Failures, stats.Writes)
}

// Close closes the destination only when the logger opened it itself.
func (w *ObservedWriter) Close() error {
	return w.pstreeOwnedClose()
}

func (w *ObservedWriter) pstreeOwnedClose() error {
	if w == nil {
		return nil
	}
	return closeOutput(w.dst)
}

func (w *ObservedWriter) underlyingWriter() io.Writer {
	if w == nil {
		return nil
	}
	return w.dst
}
