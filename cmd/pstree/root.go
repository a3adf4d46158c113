package main

import (
	"io"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"pkt.systems/pstree"
)

// enumFlag is a pflag.Value restricted to a fixed set of words.
type enumFlag struct {
	allowed []string
	value   string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(def string, allowed ...string) *enumFlag {
	return &enumFlag{allowed: allowed, value: def}
}

func (f *enumFlag) String() string {
	if f == nil {
		return ""
	}
	return f.value
}

func (f *enumFlag) Set(value string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	if !slices.Contains(f.allowed, v) {
		return errors.Newf("must be one of: %s", strings.Join(f.allowed, ", "))
	}
	f.value = v
	return nil
}

func (f *enumFlag) Type() string {
	return "string"
}

// settings holds the logger flags shared by every subcommand.
type settings struct {
	config  string
	level   *enumFlag
	mode    *enumFlag
	color   *enumFlag
	palette string
}

func newSettings() *settings {
	return &settings{
		level: newEnumFlag("debug", "trace", "debug", "info", "warn", "error", "off"),
		mode:  newEnumFlag("tree", "tree", "flat"),
		color: newEnumFlag("auto", "auto", "always", "never"),
	}
}

func (s *settings) register(flags *pflag.FlagSet) {
	flags.StringVarP(&s.config, "config", "c", "", "TOML file with level, mode, color, palette and output")
	flags.VarP(s.level, "level", "l", "minimum level: trace, debug, info, warn, error or off")
	flags.VarP(s.mode, "mode", "m", "rendering: tree or flat")
	flags.Var(s.color, "color", "colour output: auto, always or never")
	flags.StringVarP(&s.palette, "palette", "p", "", "ANSI palette (see 'pstree palettes')")
}

// session is a logger and the observed destination behind it.
type session struct {
	pstree.Logger
	out *pstree.ObservedWriter
}

// finish closes the logger and reports lost output. A run error takes
// precedence over both.
func (s session) finish(err *error) {
	cerr := s.Close()
	if *err != nil {
		return
	}
	if werr := s.out.Err(); werr != nil {
		*err = werr
		return
	}
	if cerr != nil {
		*err = errors.Wrap(cerr, "close log output")
	}
}

// logger resolves the config file and explicitly set flags into a logger
// writing to w. Flags win over the file. Failed writes do not stop the run;
// they are collected and reported by session.finish.
func (s *settings) logger(flags *pflag.FlagSet, w io.Writer) (session, error) {
	cfg := &pstree.Config{Level: s.level.value, Mode: s.mode.value, Color: s.color.value}
	if s.config != "" {
		loaded, err := pstree.LoadConfig(s.config)
		if err != nil {
			return session{}, err
		}
		cfg = loaded
	}
	if flags.Changed("level") {
		cfg.Level = s.level.value
	}
	if flags.Changed("mode") {
		cfg.Mode = s.mode.value
	}
	if flags.Changed("color") {
		cfg.Color = s.color.value
	}
	if flags.Changed("palette") {
		cfg.Palette = s.palette
	}
	if err := cfg.Validate(); err != nil {
		return session{}, err
	}
	dst, err := cfg.Writer(w)
	if err != nil {
		return session{}, err
	}
	out := pstree.NewObservedWriter(dst, nil)
	opts := cfg.Options()
	opts.OnWriteError = func(error) {}
	return session{Logger: pstree.NewWithOptions(out, opts), out: out}, nil
}

func newRootCmd() *cobra.Command {
	s := newSettings()
	root := &cobra.Command{
		Use:   "pstree",
		Short: "Render branch-structured logs",
		Long: `pstree draws the nesting of program phases as a gutter of vertical bars
in front of every log line.

Usage:
  pstree replay script.txt
  pstree demo --palette muted
  pstree palettes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	s.register(root.PersistentFlags())
	root.AddCommand(newReplayCmd(s), newDemoCmd(s), newPalettesCmd())
	return root
}
