package pstree_test

import (
	"bytes"
	"testing"

	"pkt.systems/pstree"
)

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		in    string
		level pstree.Level
		msg   string
	}{
		{"[warn] disk almost full", pstree.WarnLevel, "disk almost full"},
		{"[TRACE]step", pstree.TraceLevel, "step"},
		{"error: boom", pstree.ErrorLevel, "boom"},
		{"Warning - slow", pstree.WarnLevel, "slow"},
		{"debug  value=1", pstree.DebugLevel, "value=1"},
		{"information only", pstree.InfoLevel, "information only"},
		{"[off] hidden", pstree.InfoLevel, "[off] hidden"},
		{"  plain line  ", pstree.InfoLevel, "plain line"},
		{"[] empty tag", pstree.InfoLevel, "[] empty tag"},
	}
	for _, tc := range cases {
		level, msg := pstree.ClassifyLine(tc.in)
		if level != tc.level || msg != tc.msg {
			t.Fatalf("ClassifyLine(%q) = %v,%q want %v,%q", tc.in, level, msg, tc.level, tc.msg)
		}
	}
}

func TestLogLoggerBridge(t *testing.T) {
	var buf bytes.Buffer
	logger := newPlainTree(&buf, pstree.DebugLevel)
	logger.Enter("std")
	buf.Reset()

	std := pstree.LogLogger(logger)
	std.Print("warn: from stdlib")
	std.Printf("plain %d\n\nerror: second", 2)

	want := "  │   WARN: from stdlib\n  │   INFO: plain 2\n  │   ERROR: second\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestLogLoggerWithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := pstree.NewWithOptions(&buf, pstree.Options{Mode: pstree.ModeFlat, NoColor: true})
	std := pstree.LogLoggerWithLevel(logger, pstree.ErrorLevel)
	std.Print("info: not reclassified\r\n")
	if got, want := buf.String(), "ERROR: info: not reclassified\n"; got != want {
		t.Fatalf("unexpected output %q", got)
	}

	pstree.LogLogger(nil).Print("dropped")
	pstree.LogLoggerWithLevel(nil, pstree.InfoLevel).Print("dropped")
}
