package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/munch"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("munch.check")

func newCheckCmd() *cobra.Command {
	var expr string
	var verbosity int

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse a file of s-expressions and report diagnostics",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			doc := sexprDocument()

			var (
				exprs []SExpr
				err   error
			)
			switch {
			case expr != "":
				log.Debugf("parsing inline expression (%d bytes)", len(expr))
				exprs, err = munch.Parse(doc, expr)
			case len(args) == 1:
				log.Debugf("parsing file %s", args[0])
				exprs, err = munch.ParseFile(doc, args[0])
			default:
				return fmt.Errorf("need a file argument or --expr")
			}
			if err != nil {
				return err
			}

			log.Infof("parsed %d top-level expressions", len(exprs))
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d top-level expressions\n", len(exprs))
			return nil
		},
	}

	cmd.Flags().StringVar(&expr, "expr", "", "parse this string instead of a file")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	return cmd
}
