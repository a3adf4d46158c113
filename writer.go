package pstree

import (
	"io"
	"sync"
)

const (
	lineWriterDefaultCap = 512
	lineWriterMaxCap     = 64 << 10
)

// lineWriter collects everything one operation renders (a banner, a record
// with all its continuation lines) so it reaches the destination in a single
// Write call.
type lineWriter struct {
	dst io.Writer
	buf []byte
}

var lineWriterPool = sync.Pool{
	New: func() any {
		return &lineWriter{buf: make([]byte, 0, lineWriterDefaultCap)}
	},
}

func acquireLineWriter(dst io.Writer) *lineWriter {
	lw := lineWriterPool.Get().(*lineWriter)
	lw.dst = dst
	lw.buf = lw.buf[:0]
	return lw
}

func releaseLineWriter(lw *lineWriter) {
	lw.dst = nil
	if cap(lw.buf) > lineWriterMaxCap {
		lw.buf = make([]byte, 0, lineWriterDefaultCap)
	} else {
		lw.buf = lw.buf[:0]
	}
	lineWriterPool.Put(lw)
}

func (lw *lineWriter) reserve(n int) {
	if n <= 0 {
		return
	}
	need := len(lw.buf) + n
	if need <= cap(lw.buf) {
		return
	}
	newCap := max(cap(lw.buf)*2+n, need)
	if newCap > lineWriterMaxCap {
		newCap = need
	}
	newBuf := make([]byte, len(lw.buf), newCap)
	copy(newBuf, lw.buf)
	lw.buf = newBuf
}

func (lw *lineWriter) writeByte(b byte) {
	lw.buf = append(lw.buf, b)
}

func (lw *lineWriter) writeString(s string) {
	if s == "" {
		return
	}
	lw.reserve(len(s))
	lw.buf = append(lw.buf, s...)
}

func (lw *lineWriter) finishLine() {
	lw.writeByte('\n')
}

// commit writes the buffered bytes and returns the destination's error.
// Short writes are reported as io.ErrShortWrite.
func (lw *lineWriter) commit() error {
	if len(lw.buf) == 0 || lw.dst == nil {
		lw.buf = lw.buf[:0]
		return nil
	}
	n, err := lw.dst.Write(lw.buf)
	if err == nil && n != len(lw.buf) {
		err = io.ErrShortWrite
	}
	lw.buf = lw.buf[:0]
	return err
}
