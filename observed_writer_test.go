package pstree

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type testWriterFunc func([]byte) (int, error)

func (fn testWriterFunc) Write(p []byte) (int, error) {
	return fn(p)
}

func TestObservedWriterPassThrough(t *testing.T) {
	var out bytes.Buffer
	callbackCalled := false

	w := NewObservedWriter(&out, func(WriteFailure) {
		callbackCalled = true
	})

	n, err := w.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if n != len("hello") {
		t.Fatalf("write count mismatch: got %d want %d", n, len("hello"))
	}
	if got := out.String(); got != "hello" {
		t.Fatalf("unexpected output: got %q", got)
	}
	if callbackCalled {
		t.Fatalf("callback should not be called on successful writes")
	}

	stats := w.Stats()
	if stats.Failures != 0 || stats.ShortWrites != 0 {
		t.Fatalf("unexpected stats on success: %+v", stats)
	}
}

func TestObservedWriterNormalizesShortWrite(t *testing.T) {
	var got WriteFailure
	calls := 0

	w := NewObservedWriter(testWriterFunc(func(p []byte) (int, error) {
		return len(p) - 1, nil
	}), func(f WriteFailure) {
		calls++
		got = f
	})

	n, err := w.Write([]byte("abcd"))
	if n != 3 {
		t.Fatalf("write count mismatch: got %d want %d", n, 3)
	}
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected io.ErrShortWrite, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("callback call count mismatch: got %d want 1", calls)
	}
	if got.Written != 3 || got.Attempted != 4 {
		t.Fatalf("callback byte counts mismatch: %+v", got)
	}

	stats := w.Stats()
	if stats.Failures != 1 || stats.ShortWrites != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestObservedWriterFeedsLoggerErrorHook checks that a failing destination is
// both counted and reported to the logger.
func TestObservedWriterFeedsLoggerErrorHook(t *testing.T) {
	boom := errors.New("boom")
	var observed []WriteFailure
	w := NewObservedWriter(testWriterFunc(func(p []byte) (int, error) {
		return 0, boom
	}), func(f WriteFailure) {
		observed = append(observed, f)
	})

	var hooked []error
	logger := NewWithOptions(w, Options{
		Mode:         ModeTree,
		NoColor:      true,
		OnWriteError: func(err error) { hooked = append(hooked, err) },
	})
	logger.Enter("a")
	logger.Info("x")
	logger.Exit()

	if len(observed) != 3 || len(hooked) != 3 {
		t.Fatalf("observed %d failures, hook saw %d", len(observed), len(hooked))
	}
	for _, err := range hooked {
		if !errors.Is(err, boom) {
			t.Fatalf("hook error mismatch: %v", err)
		}
	}
	if got := w.Stats().Failures; got != 3 {
		t.Fatalf("failure counter = %d", got)
	}
}

func TestObservedWriterErrReportsFirstFailure(t *testing.T) {
	first := errors.New("disk full")
	calls := 0
	w := NewObservedWriter(testWriterFunc(func(p []byte) (int, error) {
		calls++
		switch calls {
		case 2:
			return 0, first
		case 3:
			return 0, io.ErrClosedPipe
		}
		return len(p), nil
	}), nil)
	logger := NewWithOptions(w, Options{Mode: ModeTree, NoColor: true, OnWriteError: func(error) {}})
	if w.Err() != nil {
		t.Fatalf("Err before any write = %v", w.Err())
	}

	logger.Enter("a")
	logger.Info("lost")
	logger.Info("lost too")
	logger.Exit()

	err := w.Err()
	if !errors.Is(err, first) {
		t.Fatalf("Err = %v, want the first failure", err)
	}
	if !strings.Contains(err.Error(), "2 of 4 log writes failed") {
		t.Fatalf("unexpected Err text %q", err.Error())
	}
	if stats := w.Stats(); stats.Writes != 4 || stats.Failures != 2 || stats.ShortWrites != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestObservedWriterCloseOwnershipSemantics(t *testing.T) {
	userWriter := &closeTrackingWriter{}
	logger := NewWithOptions(NewObservedWriter(userWriter, nil), Options{Mode: ModeTree, NoColor: true})

	logger.Info("before_close")
	if err := logger.Close(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}
	if userWriter.closed.Load() {
		t.Fatalf("expected user writer to remain open")
	}

	ownedWriter := &closeTrackingWriter{}
	owned := newOwnedOutput(ownedWriter, ownedWriter)
	ownedLogger := NewWithOptions(NewObservedWriter(owned, nil), Options{Mode: ModeTree, NoColor: true})
	ownedLogger.Info("before_owned_close")
	if err := ownedLogger.Close(); err != nil {
		t.Fatalf("owned close returned error: %v", err)
	}
	if !ownedWriter.closed.Load() {
		t.Fatalf("expected owned writer to be closed")
	}
	ownedLogger.Info("after_owned_close")
	if got := ownedWriter.writes.Load(); got != 1 {
		t.Fatalf("owned writer received %d writes, want 1", got)
	}
}

func TestIsTerminalLooksThroughWrappers(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Fatalf("buffer reported as terminal")
	}
	tee := newTeeWriter(nil, &bytes.Buffer{})
	if isTerminal(newOwnedOutput(tee, io.NopCloser(strings.NewReader("")))) {
		t.Fatalf("tee reported as terminal")
	}
	if isTerminal(NewObservedWriter(nil, nil)) {
		t.Fatalf("discard reported as terminal")
	}
}
