package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"pkt.systems/pstree"
	"pkt.systems/pstree/ansi"
)

const compilerTranscript = "" +
	" exp \n" +
	"  │   INFO: compiling expression\n" +
	"  │    ident \n" +
	"  │      │    TRACE: found ident 'foo'\n" +
	"  │    ident \n" +
	"  │   \n" +
	"  │    ident \n" +
	"  │      │    TRACE: found ident 'bar'\n" +
	"  │    ident \n" +
	"  │   WARN: constant folding skipped\n" +
	"  │   operands are not literals\n" +
	" exp \n"

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReplayScriptFile(t *testing.T) {
	out, err := runCLI(t, "", "replay", "--color", "never", "--level", "trace", "--mode", "tree", "testdata/compiler.script")
	require.NoError(t, err)
	require.Equal(t, compilerTranscript, out)
}

func TestReplayStdin(t *testing.T) {
	script, err := os.ReadFile("testdata/compiler.script")
	require.NoError(t, err)
	out, err := runCLI(t, string(script), "replay", "-", "--color=never", "-l", "trace", "-m", "tree")
	require.NoError(t, err)
	require.Equal(t, compilerTranscript, out)
}

func TestDemoMatchesScript(t *testing.T) {
	out, err := runCLI(t, "", "demo", "--color", "never", "--level", "trace", "--mode", "tree")
	require.NoError(t, err)
	require.Equal(t, compilerTranscript, out)
}

func TestReplayClosesOpenBranches(t *testing.T) {
	out, err := runCLI(t, "> a\n> b\nhello\n", "replay", "--color", "never", "--mode", "tree")
	require.NoError(t, err)
	want := " a \n │   b \n │   │  INFO: hello\n │   b \n a \n"
	require.Equal(t, want, out)
}

func TestReplayUnbalancedExit(t *testing.T) {
	_, err := runCLI(t, "> a\n<\n<\n", "replay", "--color", "never", "--mode", "tree")
	require.Error(t, err)
	require.True(t, errors.Is(err, pstree.ErrEmptyStackUnderflow))
	require.Contains(t, err.Error(), "line 3")

	_, err = runCLI(t, ">\n", "replay", "--mode", "tree")
	require.ErrorContains(t, err, "branch name missing")
}

func TestReplayFlatIgnoresBranches(t *testing.T) {
	out, err := runCLI(t, "> a\nerror: boom\n<\n<\n", "replay", "--color", "never", "--mode", "flat")
	require.NoError(t, err)
	require.Equal(t, "ERROR: boom\n", out)
}

func TestFlagValidation(t *testing.T) {
	_, err := runCLI(t, "", "demo", "--color", "sometimes")
	require.ErrorContains(t, err, "must be one of: auto, always, never")

	_, err = runCLI(t, "", "demo", "--palette", "neon", "--color", "never")
	var cerrs pstree.ConfigErrors
	require.True(t, errors.As(err, &cerrs))
	require.Equal(t, "palette", cerrs[0].Field)
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pstree.toml")
	require.NoError(t, os.WriteFile(path, []byte("level = \"error\"\nmode = \"tree\"\ncolor = \"always\"\npalette = \"mono\"\n"), 0o600))

	out, err := runCLI(t, "> a\nwarn: hidden\nerror: shown\n<\n", "replay", "--config", path, "--level", "warn")
	require.NoError(t, err)
	banner := ansi.Reverse + " a " + ansi.Reset + "\n"
	require.True(t, strings.HasPrefix(out, banner), "got %q", out)
	require.Contains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.True(t, strings.HasSuffix(out, banner))
}

var errBrokenPipe = errors.New("broken pipe")

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestDemoReportsLostOutput(t *testing.T) {
	root := newRootCmd()
	root.SetOut(brokenPipe{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"demo", "--color", "never", "--mode", "tree"})
	err := root.Execute()
	require.Error(t, err)
	require.True(t, errors.Is(err, errBrokenPipe))
	require.Contains(t, err.Error(), "8 of 8 log writes failed")
}

func TestReplayErrorWinsOverLostOutput(t *testing.T) {
	root := newRootCmd()
	root.SetOut(brokenPipe{})
	root.SetIn(strings.NewReader("> a\n<\n<\n"))
	root.SetArgs([]string{"replay", "--mode", "tree", "--color", "never"})
	err := root.Execute()
	require.True(t, errors.Is(err, pstree.ErrEmptyStackUnderflow))
	require.False(t, errors.Is(err, errBrokenPipe))
}

func TestPalettesCommand(t *testing.T) {
	out, err := runCLI(t, "", "palettes")
	require.NoError(t, err)
	require.Equal(t, strings.Join(ansi.AvailablePaletteNames(), "\n")+"\n", out)
}
