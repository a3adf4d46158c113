package main

import (
	"github.com/spf13/cobra"
	"pkt.systems/pstree"
)

func newDemoCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render a small compiler pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			logger, err := s.logger(cmd.Flags(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer logger.finish(&err)
			compileExpression(logger, []string{"foo", "bar"})
			return nil
		},
	}
}

func compileExpression(l pstree.Logger, idents []string) {
	defer l.Scoped("exp").Release()
	l.Info("compiling expression")
	for _, ident := range idents {
		resolveIdent(l, ident)
	}
	l.Warn("constant folding skipped\noperands are not literals")
}

func resolveIdent(l pstree.Logger, name string) {
	defer l.Scoped("ident").Release()
	l.Tracef("found ident '%s'", name)
}
