package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/fa/automaton"
)

// LineEncoder writes one tab-separated line per transition, after a header
// line with the kind, the start state and the accepting states. Easy to
// grep and cut.
type LineEncoder[S, A comparable] struct {
	w         io.Writer
	automaton *automaton.Automaton[S, A]
}

func NewLineEncoder[S, A comparable](w io.Writer) *LineEncoder[S, A] {
	return &LineEncoder[S, A]{w: w}
}

func (e *LineEncoder[S, A]) Encode(a *automaton.Automaton[S, A]) error {
	e.automaton = a
	return write(e.w, e)
}

func (e *LineEncoder[S, A]) MarshalText() ([]byte, error) {
	var sb strings.Builder
	a := e.automaton

	fmt.Fprintf(&sb, "%s\t%s\t%s\n", a.Kind(), a.Start(), e.acceptingStr())

	for _, s := range a.States() {
		for _, sym := range append(a.Alphabet(), automaton.EpsilonSymbol[A]()) {
			destinations, ok := a.Destinations(s, sym)
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "transition\t%s\t%s\t%s\n", s, sym, statesStr(destinations))
		}
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder[S, A]) acceptingStr() string {
	return statesStr(e.automaton.Accepting())
}

func statesStr[S comparable](states []automaton.State[S]) string {
	if len(states) == 0 {
		return "-"
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
