package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/fa/automaton"
	"github.com/dhamidi/fa/definition"
	"github.com/dhamidi/fa/tokenize"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("fa.cmd")

func newAcceptCmd() *cobra.Command {
	var grammarFile string
	var skipKinds []string
	var trace bool

	cmd := &cobra.Command{
		Use:   "accept <file> [words...]",
		Short: "Report which words a definition accepts",
		Long: `Report which words a definition accepts.

Words are read from the arguments, or one per line from standard input when
none are given. Each word is cut into symbols by the grammar given with
--grammar (or FA_GRAMMAR); without a grammar every character is a symbol.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := definition.Load(args[0])
			if err != nil {
				return err
			}

			split := func(word string) ([]string, error) {
				return tokenize.Runes(word), nil
			}
			if grammarFile == "" {
				grammarFile = os.Getenv("FA_GRAMMAR")
			}
			if grammarFile != "" {
				grammar, err := tokenize.LoadGrammar(grammarFile)
				if err != nil {
					return err
				}
				tokenizer, err := tokenize.New(grammar, skipKinds...)
				if err != nil {
					return fmt.Errorf("%s: %w", grammarFile, err)
				}
				split = tokenizer.Symbols
				log.Debugf("tokenizing words with %s", grammarFile)
			}

			words := args[1:]
			if len(words) == 0 {
				words, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			r := &acceptRunner{
				out:   cmd.OutOrStdout(),
				a:     a,
				split: split,
				trace: trace,
			}
			for _, word := range words {
				r.run(word)
			}
			if r.failed > 0 {
				return fmt.Errorf("%d of %d words could not be read", r.failed, len(words))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar cutting words into symbols")
	cmd.Flags().StringSliceVar(&skipKinds, "skip", nil, "token kinds of the grammar to drop (e.g. Space)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the states visited by the determinized automaton")

	return cmd
}

type acceptRunner struct {
	out    io.Writer
	a      *automaton.Automaton[string, string]
	split  func(string) ([]string, error)
	trace  bool
	failed int
}

func (r *acceptRunner) run(word string) {
	symbols, err := r.split(word)
	if err != nil {
		fmt.Fprintf(r.out, "%q\terror: %v\n", word, err)
		r.failed++
		return
	}

	accepted, err := r.a.Accepts(symbols)
	if err != nil {
		fmt.Fprintf(r.out, "%q\terror: %v\n", word, err)
		r.failed++
		return
	}

	verdict := "reject"
	if accepted {
		verdict = "accept"
	}
	fmt.Fprintf(r.out, "%q\t%s\n", word, verdict)

	if r.trace {
		path, err := r.a.Compute(symbols)
		if err != nil {
			return
		}
		labels := make([]string, len(path))
		for i, s := range path {
			labels[i] = s.String()
		}
		fmt.Fprintf(r.out, "\t%s\n", strings.Join(labels, " -> "))
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return lines, nil
}
