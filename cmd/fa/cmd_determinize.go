package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/fa/definition"
	"github.com/dhamidi/fa/format"
	"github.com/spf13/cobra"
)

func newDeterminizeCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "determinize <file>",
		Short: "Print the DFA accepting the same language as a definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := definition.Load(args[0])
			if err != nil {
				return err
			}

			encoder, err := format.NewEncoder[string, string](outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := encoder.Encode(a.Determinize()); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}

func newEpsilonCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "epsilon <file>",
		Short: "Print a definition with its epsilon transitions removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := definition.Load(args[0])
			if err != nil {
				return err
			}

			encoder, err := format.NewEncoder[string, string](outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := encoder.Encode(a.RemoveEpsilonTransitions()); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}
