package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/fa/automaton"
)

// DOTEncoder writes a Graphviz digraph. Accepting states are drawn with a
// double circle and an invisible point marks the start state.
type DOTEncoder[S, A comparable] struct {
	w         io.Writer
	automaton *automaton.Automaton[S, A]
}

func NewDOTEncoder[S, A comparable](w io.Writer) *DOTEncoder[S, A] {
	return &DOTEncoder[S, A]{w: w}
}

func (e *DOTEncoder[S, A]) Encode(a *automaton.Automaton[S, A]) error {
	e.automaton = a
	return write(e.w, e)
}

func (e *DOTEncoder[S, A]) MarshalText() ([]byte, error) {
	a := e.automaton
	id := make(map[automaton.State[S]]string)

	var sb strings.Builder
	sb.WriteString("digraph automaton {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	sb.WriteString("  __start [shape=point];\n")
	for i, s := range a.States() {
		id[s] = fmt.Sprintf("s%d", i)
		shape := ""
		if a.IsAccepting(s) {
			shape = ", shape=doublecircle"
		}
		fmt.Fprintf(&sb, "  %s [label=%s%s];\n", id[s], dotQuote(s.String()), shape)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "  __start -> %s;\n", id[a.Start()])
	for _, ed := range edges(a) {
		fmt.Fprintf(&sb, "  %s -> %s [label=%s];\n", id[ed.from], id[ed.to], dotQuote(ed.symbol.String()))
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

var dotReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// dotQuote returns s as a DOT quoted string. Backslashes are doubled so
// that label escapes such as \N are not triggered.
func dotQuote(s string) string {
	return `"` + dotReplacer.Replace(s) + `"`
}
