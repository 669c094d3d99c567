package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/fa/definition"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir] [name...]",
		Short: "Load every " + definition.Extension + " file below a directory",
		Long: `Load every ` + definition.Extension + ` file below a directory (default ".").

When names are given, only those definitions are reported. A name is the
path relative to dir without the extension, e.g. "broken/start".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir := "."
			if len(args) > 0 {
				rootDir = args[0]
			}

			catalog, err := definition.LoadCatalog(rootDir)
			if err != nil {
				return err
			}

			entries := catalog.Entries
			if len(args) > 1 {
				entries = nil
				for _, name := range args[1:] {
					e := catalog.Entry(name)
					if e == nil {
						return fmt.Errorf("no definition named %s in %s", name, rootDir)
					}
					entries = append(entries, e)
				}
			}

			var failed int
			for _, e := range entries {
				printEntry(cmd.OutOrStdout(), e)
				if e.Err != nil {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d definitions failed to load", failed, len(entries))
			}
			return nil
		},
	}
}

func printEntry(w io.Writer, e *definition.Entry) {
	if e.Err != nil {
		fmt.Fprintf(w, "%s\terror\t%v\n", e.Name, e.Err)
		return
	}
	fmt.Fprintf(w, "%s\t%s\t%d states\n", e.Name, e.Automaton.Kind(), len(e.Automaton.States()))
}
