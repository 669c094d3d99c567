package lsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/fa/automaton"
	"github.com/dhamidi/fa/definition"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnose decodes a definition document and reports its problems. The
// automaton is nil whenever an error diagnostic is returned.
func Diagnose(text string) (*automaton.Automaton[string, string], []protocol.Diagnostic) {
	doc, err := definition.Parse([]byte(text))
	if err == nil {
		var a *automaton.Automaton[string, string]
		a, err = doc.Automaton()
		if err == nil {
			return a, unreachable(text, a)
		}
	}
	return nil, []protocol.Diagnostic{errorDiagnostic(text, err)}
}

func errorDiagnostic(text string, err error) protocol.Diagnostic {
	rng := protocol.Range{}

	var syntaxErr *definition.SyntaxError
	var fieldErr *definition.FieldError
	switch {
	case errors.As(err, &syntaxErr):
		offset := int(syntaxErr.Offset)
		if offset > 0 {
			offset--
		}
		rng.Start = positionAt(text, offset)
		rng.End = positionAt(text, offset+1)
	case errors.As(err, &fieldErr):
		rng = keyRange(text, fieldErr.Field)
	}

	return protocol.Diagnostic{
		Range:    rng,
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   stringPtr(lsName),
		Message:  err.Error(),
	}
}

// unreachable warns about states that no word can lead to.
func unreachable(text string, a *automaton.Automaton[string, string]) []protocol.Diagnostic {
	symbols := append(a.Alphabet(), automaton.EpsilonSymbol[string]())
	seen := map[automaton.State[string]]bool{a.Start(): true}
	queue := []automaton.State[string]{a.Start()}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, sym := range symbols {
			destinations, _ := a.Destinations(s, sym)
			for _, d := range destinations {
				if !seen[d] {
					seen[d] = true
					queue = append(queue, d)
				}
			}
		}
	}

	var diagnostics []protocol.Diagnostic
	for _, s := range a.States() {
		if seen[s] {
			continue
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    keyRange(text, "states"),
			Severity: severityPtr(protocol.DiagnosticSeverityWarning),
			Source:   stringPtr(lsName),
			Message:  fmt.Sprintf("state %s is unreachable from the start state", s),
		})
	}
	return diagnostics
}

// keyRange returns the range of the first object key named field, or an
// empty range at the start of the document.
func keyRange(text, field string) protocol.Range {
	quoted := `"` + field + `"`
	for from := 0; ; {
		i := strings.Index(text[from:], quoted)
		if i < 0 {
			return protocol.Range{}
		}
		start := from + i
		end := start + len(quoted)
		if strings.HasPrefix(strings.TrimLeft(text[end:], " \t\r\n"), ":") {
			return protocol.Range{Start: positionAt(text, start), End: positionAt(text, end)}
		}
		from = end
	}
}

// positionAt converts a byte offset into a zero-based line and a UTF-16
// column, the unit editors count in.
func positionAt(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	var line, column protocol.UInteger
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			line++
			column = 0
		} else {
			n := utf16.RuneLen(r)
			if n < 1 {
				n = 1
			}
			column += protocol.UInteger(n)
		}
		i += size
	}
	return protocol.Position{Line: line, Character: column}
}

// hoverText summarizes a valid automaton in Markdown.
func hoverText(a *automaton.Automaton[string, string]) string {
	d := a.Determinize()

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n\n", a.Kind())
	fmt.Fprintf(&sb, "- states: %d\n", len(a.States()))
	fmt.Fprintf(&sb, "- alphabet: %d\n", len(a.Alphabet()))
	fmt.Fprintf(&sb, "- accepting: %d\n", len(a.Accepting()))
	fmt.Fprintf(&sb, "- determinized states: %d\n", len(d.States()))
	return sb.String()
}
