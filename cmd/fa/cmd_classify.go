package main

import (
	"fmt"

	"github.com/dhamidi/fa/definition"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "classify <file>",
		Short: "Print whether a definition is a dfa, an nfa or an epsilon-nfa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := definition.Load(args[0])
			if err != nil {
				return err
			}

			if details {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), a.Kind())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "print state, symbol and transition counts")

	return cmd
}
