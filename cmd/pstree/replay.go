package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"pkt.systems/pstree"
)

func newReplayCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file|-]",
		Short: "Render a branch script",
		Long: `Replays a branch script through the logger. Each line is one event:

  > name         enter a branch
  <              exit the innermost branch
  # text         comment, ignored
  warn: text     record at the named level ("[warn] text" works too)
  text           record at info level

A literal \n inside a record starts a continuation line. Branches still open
at the end of the script are closed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in := cmd.InOrStdin()
			name := "-"
			if len(args) == 1 && args[0] != "-" {
				name = args[0]
				f, err := os.Open(name)
				if err != nil {
					return errors.Wrap(err, "open script")
				}
				defer f.Close()
				in = f
			}
			logger, err := s.logger(cmd.Flags(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer logger.finish(&err)
			if err := replay(in, logger); err != nil {
				return errors.Wrapf(err, "replay %s", name)
			}
			return nil
		},
	}
}

// replay feeds the script in r to logger.
func replay(r io.Reader, logger pstree.Logger) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, ">"):
			name := strings.TrimSpace(line[1:])
			if name == "" {
				return errors.Newf("line %d: branch name missing", lineNo)
			}
			logger.Enter(name)
		case line == "<":
			if err := logger.TryExit(); err != nil {
				return errors.Wrapf(err, "line %d", lineNo)
			}
		default:
			level, msg := pstree.ClassifyLine(line)
			logger.Log(level, strings.ReplaceAll(msg, `\n`, "\n"))
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read script")
	}
	for logger.Depth() > 0 {
		if err := logger.TryExit(); err != nil {
			return err
		}
	}
	return nil
}
