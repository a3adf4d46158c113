package pstree

import (
	"io"
	"strings"
	"sync"

	"pkt.systems/pstree/ansi"
)

// output is shared by a logger and all of its forks. mu serialises writes
// and the stack transitions that accompany them.
type output struct {
	mu           sync.Mutex
	writer       io.Writer
	onWriteError func(error)
}

func (o *output) fail(err error) {
	if err == nil {
		return
	}
	o.onWriteError(err)
}

type coreConfig struct {
	out      *output
	minLevel Level
	render   renderer
}

func (c coreConfig) shouldLog(level Level) bool {
	return enabledAt(level, c.minLevel)
}

// renderer turns stack state and records into bytes. It holds no mutable
// state, so the same stack always renders the same preamble.
type renderer struct {
	color   bool
	palette *ansi.Palette
}

func (r renderer) preamble(lw *lineWriter, frames []Frame) {
	if len(frames) == 0 {
		return
	}
	if r.color {
		lw.writeString(r.palette.Gutter)
	}
	lw.reserve(preambleLen(frames))
	lw.buf = appendPreamble(lw.buf, frames)
	if r.color {
		lw.writeString(ansi.Reset)
	}
}

// banner renders the highlighted " name " line at the depth of frames.
func (r renderer) banner(lw *lineWriter, frames []Frame, name string) {
	r.preamble(lw, frames)
	lw.reserve(len(name) + 2)
	if r.color {
		lw.writeString(r.palette.Banner)
	}
	lw.writeByte(' ')
	lw.writeString(name)
	lw.writeByte(' ')
	if r.color {
		lw.writeString(ansi.Reset)
	}
	lw.finishLine()
}

// separator renders the gutter alone, the blank line between siblings.
func (r renderer) separator(lw *lineWriter, frames []Frame) {
	r.preamble(lw, frames)
	lw.finishLine()
}

func (r renderer) tag(lw *lineWriter, level Level) {
	if !r.color {
		lw.writeString(level.tag())
		return
	}
	lw.writeString(r.palette.Bold)
	lw.writeString(paletteColor(r.palette, ColorFor(level)))
	lw.writeString(level.tag())
	lw.writeString(ansi.Reset)
}

// record renders the tag and msg. The first line follows the tag after one
// space; every further line is re-prefixed with the preamble. A single
// trailing newline does not produce an extra line.
func (r renderer) record(lw *lineWriter, frames []Frame, level Level, msg string) {
	lw.reserve(len(msg) + 16 + preambleLen(frames))
	r.preamble(lw, frames)
	r.tag(lw, level)
	lw.writeByte(' ')
	msg = strings.TrimSuffix(msg, "\n")
	first := true
	for {
		line, rest, more := strings.Cut(msg, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !first {
			r.preamble(lw, frames)
		}
		first = false
		lw.writeString(line)
		lw.finishLine()
		if !more {
			return
		}
		msg = rest
	}
}

// flat renders the lean form: tag, one space and the message as given.
func (r renderer) flat(lw *lineWriter, level Level, msg string) {
	lw.reserve(len(msg) + 16)
	r.tag(lw, level)
	lw.writeByte(' ')
	lw.writeString(strings.TrimSuffix(msg, "\n"))
	lw.finishLine()
}
