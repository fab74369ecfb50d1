package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/kpatel20538/ParserLib-sub000/grammar"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ebnf",
		Short: "EBNF grammar tools",
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfMatchCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <grammar>",
		Short: "Parse and verify an EBNF grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0])
			if err != nil {
				return err
			}

			if startProduction == "" {
				return nil
			}
			return ebnf.Verify(g, startProduction)
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfMatchCmd() *cobra.Command {
	var startProduction string
	var outputFormat string
	var whitespace bool
	var trace bool

	cmd := &cobra.Command{
		Use:   "match <grammar> <input>",
		Short: "Parse an input file with an EBNF grammar and print the tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			var opts []grammar.Option
			if whitespace {
				opts = append(opts, grammar.WithWhitespace())
			}
			if trace {
				opts = append(opts, grammar.WithTrace())
			}

			node, err := grammar.Match(g, startProduction, args[1], string(data), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "text":
				fmt.Fprint(out, node.String())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&whitespace, "whitespace", false, "skip white space between tokens of non-lexical productions")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every production attempt (needs -vvv)")
	cmd.MarkFlagRequired("start")

	return cmd
}
