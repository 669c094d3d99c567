package format

import (
	"io"

	"github.com/dhamidi/fa/automaton"
	"github.com/dhamidi/fa/definition"
)

// JSONEncoder writes the definition document of an automaton, so the
// output can be loaded again.
type JSONEncoder[S, A comparable] struct {
	w         io.Writer
	automaton *automaton.Automaton[S, A]
}

func NewJSONEncoder[S, A comparable](w io.Writer) *JSONEncoder[S, A] {
	return &JSONEncoder[S, A]{w: w}
}

func (e *JSONEncoder[S, A]) Encode(a *automaton.Automaton[S, A]) error {
	e.automaton = a
	return write(e.w, e)
}

func (e *JSONEncoder[S, A]) MarshalText() ([]byte, error) {
	data, err := definition.FromAutomaton(e.automaton).Encode()
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
