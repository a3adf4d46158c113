// Package pstree is a leveled logger that draws the nesting of program
// phases as a vertical gutter in front of every line. A phase is a named
// branch: Enter prints a highlighted banner and adds a bar to the gutter,
// Exit prints the banner again and removes the bar.
//
//	 exp
//	  │   INFO: compiling expression
//	  │    ident
//	  │      │    TRACE: found ident 'foo'
//	  │    ident
//	 exp
//
// # Modes
//
// ModeTree renders the gutter and keeps a branch stack per logger. ModeFlat
// renders only the coloured level tag and the message; branch calls cost
// nothing. ModeDefault picks ModeTree, or ModeFlat when the module is built
// with the pstree_lean tag, so release builds can drop the gutter without
// touching call sites.
//
// # Branch stacks and goroutines
//
// A Logger owns exactly one branch stack. Hand each goroutine its own stack
// with Fork; forks share the destination, level and colour settings and their
// lines never interleave mid-record. ContextWithLogger and Ctx carry the
// logger through call chains.
//
//	logger := pstree.New(os.Stdout)
//	defer logger.Scoped("compile").Release()
//	logger.Info("compiling expression")
//
// # Global logger
//
// Init or InitWithLogger register a process-wide logger once. The package
// level helpers (Infof, EnterBranch, EnterBranchScoped, ...) write to it.
// Records are dropped until it is registered; branches are not, they render
// on stdout and ExitBranch still panics on an empty stack. The global logger
// has a single branch stack for all goroutines, so concurrent code should
// pass a Fork around instead.
//
// # Configuration
//
// LoggerFromEnv reads LOG_LEVEL, LOG_MODE, LOG_NO_COLOR, LOG_FORCE_COLOR,
// LOG_PALETTE and LOG_OUTPUT. LoadConfig reads the same settings from a TOML
// file. The ansi subpackage holds the palettes.
//
// # Integration notes
//
//   - LogLogger bridges to the standard library by returning a *log.Logger
//     whose lines are classified into levels.
//   - Write failures are passed to Options.OnWriteError and panic when no
//     handler is set.
package pstree
