package main

import (
	"fmt"

	"github.com/dhamidi/fa/definition"
	"github.com/dhamidi/fa/format"
	"github.com/spf13/cobra"
)

func newDiagramCmd() *cobra.Command {
	var outputFormat string
	var determinize bool

	cmd := &cobra.Command{
		Use:   "diagram <file>",
		Short: "Draw a definition as a Mermaid or Graphviz diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch outputFormat {
			case "mermaid", "dot":
			default:
				return fmt.Errorf("unknown diagram format: %s (want mermaid or dot)", outputFormat)
			}

			a, err := definition.Load(args[0])
			if err != nil {
				return err
			}
			if determinize {
				a = a.Determinize()
			}

			encoder, err := format.NewEncoder[string, string](outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return encoder.Encode(a)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "mermaid", "diagram format (mermaid, dot)")
	cmd.Flags().BoolVarP(&determinize, "determinize", "d", false, "draw the determinized automaton")

	return cmd
}
