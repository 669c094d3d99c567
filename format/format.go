// Package format renders automata as diagrams and tables.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/fa/automaton"
)

type Encoder[S, A comparable] interface {
	encoding.TextMarshaler
	Encode(a *automaton.Automaton[S, A]) error
}

// Names lists the formats accepted by NewEncoder.
var Names = []string{"json", "mermaid", "dot", "line"}

// NewEncoder returns the encoder registered under name, writing to w.
func NewEncoder[S, A comparable](name string, w io.Writer) (Encoder[S, A], error) {
	switch name {
	case "json":
		return NewJSONEncoder[S, A](w), nil
	case "mermaid":
		return NewMermaidEncoder[S, A](w), nil
	case "dot":
		return NewDOTEncoder[S, A](w), nil
	case "line":
		return NewLineEncoder[S, A](w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (want one of %v)", name, Names)
	}
}

type edge[S, A comparable] struct {
	from   automaton.State[S]
	symbol automaton.Symbol[A]
	to     automaton.State[S]
}

// edges lists one edge per recorded destination, by state, then by symbol
// in alphabet order with ε last.
func edges[S, A comparable](a *automaton.Automaton[S, A]) []edge[S, A] {
	symbols := append(a.Alphabet(), automaton.EpsilonSymbol[A]())
	var result []edge[S, A]
	for _, s := range a.States() {
		for _, sym := range symbols {
			destinations, _ := a.Destinations(s, sym)
			for _, d := range destinations {
				result = append(result, edge[S, A]{from: s, symbol: sym, to: d})
			}
		}
	}
	return result
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
