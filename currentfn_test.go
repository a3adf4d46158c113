package pstree

import (
	"bytes"
	"testing"
)

// The helper functions are marked noinline to keep their stack frames visible to
// runtime.Caller during the test.

//go:noinline
func currentFnHelper() string {
	return CurrentFn()
}

//go:noinline
func currentFnInner() string {
	return CurrentFn()
}

//go:noinline
func currentFnOuter() string {
	return currentFnInner()
}

type currentFnReceiver struct{}

//go:noinline
func (currentFnReceiver) ValueMethod() string {
	return CurrentFn()
}

//go:noinline
func (*currentFnReceiver) PointerMethod() string {
	return CurrentFn()
}

//go:noinline
func resolveImports(l Logger) {
	defer EnterFunc(l).Release()
	l.Info("resolving")
}

func TestCurrentFnReturnsSimpleName(t *testing.T) {
	if got, want := currentFnHelper(), "currentFnHelper"; got != want {
		t.Fatalf("CurrentFn returned %q, want %q", got, want)
	}
}

func TestCurrentFnUsesImmediateCaller(t *testing.T) {
	if got, want := currentFnOuter(), "currentFnInner"; got != want {
		t.Fatalf("CurrentFn should report the direct caller; got %q, want %q", got, want)
	}
}

func TestCurrentFnStripsReceiverAndPackage(t *testing.T) {
	recv := currentFnReceiver{}

	if got, want := recv.ValueMethod(), "ValueMethod"; got != want {
		t.Fatalf("CurrentFn value receiver mismatch: got %q, want %q", got, want)
	}

	if got, want := recv.PointerMethod(), "PointerMethod"; got != want {
		t.Fatalf("CurrentFn pointer receiver mismatch: got %q, want %q", got, want)
	}
}

func TestEnterFuncNamesBranchAfterCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOptions(&buf, Options{Mode: ModeTree, NoColor: true})
	resolveImports(logger)

	want := " resolveImports \n" +
		"       │         INFO: resolving\n" +
		" resolveImports \n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
	if EnterFunc(nil) != nil {
		t.Fatalf("EnterFunc(nil) should return a nil guard")
	}
}

func TestTrimFunctionName(t *testing.T) {
	cases := map[string]string{
		"pkt.systems/pstree.resolveImports": "resolveImports",
		"main.(*compiler).emit":             "emit",
		"github.com/acme/x/y.parse.func1":   "func1",
		"":                                  unknownFunction,
		"pkt.systems/pstree.":               unknownFunction,
	}
	for in, want := range cases {
		if got := trimFunctionName(in); got != want {
			t.Fatalf("trimFunctionName(%q) = %q want %q", in, got, want)
		}
	}
}
