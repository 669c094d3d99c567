package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int
	var logPath string

	rootCmd := &cobra.Command{
		Use:     "fa",
		Short:   "Classify, determinize and run finite automata",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("verbose") {
				if env := os.Getenv("FA_LOG_VERBOSITY"); env != "" {
					v, err := strconv.Atoi(env)
					if err != nil {
						return fmt.Errorf("parse FA_LOG_VERBOSITY: %w", err)
					}
					verbosity = v
				}
			}
			if logPath != "" {
				commonlog.Configure(verbosity, &logPath)
			} else {
				commonlog.Configure(verbosity, nil)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newDeterminizeCmd())
	rootCmd.AddCommand(newEpsilonCmd())
	rootCmd.AddCommand(newAcceptCmd())
	rootCmd.AddCommand(newDiagramCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}
