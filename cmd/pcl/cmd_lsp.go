package main

import (
	"github.com/spf13/cobra"

	"github.com/kpatel20538/ParserLib-sub000/grammar"
	"github.com/kpatel20538/ParserLib-sub000/lsp"
)

func newLSPCmd() *cobra.Command {
	var startProduction string
	var whitespace bool

	cmd := &cobra.Command{
		Use:   "lsp <grammar>",
		Short: "Start a language server that checks documents against an EBNF grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0])
			if err != nil {
				return err
			}

			var opts []grammar.Option
			if whitespace {
				opts = append(opts, grammar.WithWhitespace())
			}
			p, err := grammar.Compile(g, startProduction, opts...)
			if err != nil {
				return err
			}

			return lsp.NewServer(p, version).RunStdio()
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production")
	cmd.Flags().BoolVar(&whitespace, "whitespace", false, "skip white space between tokens of non-lexical productions")
	cmd.MarkFlagRequired("start")

	return cmd
}
