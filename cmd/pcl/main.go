package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	var verbosity int
	var logPath string

	rootCmd := &cobra.Command{
		Use:           "pcl",
		Short:         "Parser combinator tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logPath != "" {
				commonlog.Configure(verbosity, &logPath)
			} else {
				commonlog.Configure(verbosity, nil)
			}
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newEbnfCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		printErrors(err)
		os.Exit(1)
	}
}

// printErrors prints one line per error when err wraps an error list, as
// grammar parsing and verification return.
func printErrors(err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(os.Stderr, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, err)
}
