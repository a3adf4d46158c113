package pstree

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ErrEmptyStackUnderflow marks an exit without a matching enter.
var ErrEmptyStackUnderflow = errors.New("pstree: exit branch on empty stack")

// Frame is one open branch. GutterWidth is the rune count of Name plus the
// two padding columns of the banner, so the bar drawn for the frame sits
// centered under the banner that opened it.
type Frame struct {
	Name        string
	GutterWidth int
}

func newFrame(name string) Frame {
	return Frame{Name: name, GutterWidth: utf8.RuneCountInString(name) + 2}
}

// Stack is the branch state of a single logger: the open frames, outermost
// first, and whether the last event was an exit. A Stack does no I/O; the tree
// logger renders around its transitions.
//
// The zero value is an empty stack ready for use.
type Stack struct {
	frames      []Frame
	endedBranch bool
}

// Push opens a branch and reports whether a sibling separator is due, which
// is the case when the previous event was an exit.
func (s *Stack) Push(name string) (separate bool) {
	separate = s.endedBranch
	s.frames = append(s.frames, newFrame(name))
	s.endedBranch = false
	return separate
}

// Pop closes the innermost branch. It returns an error marked with
// ErrEmptyStackUnderflow when no branch is open.
func (s *Stack) Pop() (Frame, error) {
	n := len(s.frames)
	if n == 0 {
		return Frame{}, errors.Mark(
			errors.AssertionFailedf("pstree: exit branch called with no open branch"),
			ErrEmptyStackUnderflow,
		)
	}
	top := s.frames[n-1]
	s.frames[n-1] = Frame{}
	s.frames = s.frames[:n-1]
	s.endedBranch = true
	return top, nil
}

// MarkActivity records that a log record was emitted, which suppresses the
// separator before the next sibling branch.
func (s *Stack) MarkActivity() {
	s.endedBranch = false
}

// EndedBranch reports whether the last event was an exit.
func (s *Stack) EndedBranch() bool {
	return s.endedBranch
}

// Depth returns the number of open branches.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Frames returns a copy of the open frames, outermost first.
func (s *Stack) Frames() []Frame {
	if len(s.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// view exposes the live frames to renderers in this package without copying.
func (s *Stack) view() []Frame {
	return s.frames
}
