package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/fa/automaton"
)

// MermaidEncoder writes a Mermaid flowchart. Nodes are numbered by state
// order and labelled with the state.
type MermaidEncoder[S, A comparable] struct {
	w         io.Writer
	automaton *automaton.Automaton[S, A]
}

func NewMermaidEncoder[S, A comparable](w io.Writer) *MermaidEncoder[S, A] {
	return &MermaidEncoder[S, A]{w: w}
}

func (e *MermaidEncoder[S, A]) Encode(a *automaton.Automaton[S, A]) error {
	e.automaton = a
	return write(e.w, e)
}

func (e *MermaidEncoder[S, A]) MarshalText() ([]byte, error) {
	a := e.automaton
	index := make(map[automaton.State[S]]int)

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for i, s := range a.States() {
		index[s] = i
		fmt.Fprintf(&sb, "\t%d([\"%s\"])\n", i, mermaidEscape(s.String()))
	}
	for _, ed := range edges(a) {
		fmt.Fprintf(&sb, "\t%d -- %s --> %d\n", index[ed.from], mermaidLabel(ed.symbol.String()), index[ed.to])
	}
	return []byte(sb.String()), nil
}

// mermaidLabel quotes edge labels that would otherwise end the edge early.
func mermaidLabel(label string) string {
	if label == "" || strings.ContainsAny(label, " -|>\"#\n") {
		return `"` + mermaidEscape(label) + `"`
	}
	return label
}

var mermaidReplacer = strings.NewReplacer(
	`#`, "#35;",
	`"`, "#quot;",
	"\n", "<br>",
)

// mermaidEscape writes the characters Mermaid treats specially as entity
// codes.
func mermaidEscape(s string) string {
	return mermaidReplacer.Replace(s)
}
