// Package definition reads and writes automata as JSON documents.
//
// A document names states and symbols with strings:
//
//	{
//	  "states": ["0", "1", "2"],
//	  "alphabet": ["a", "b"],
//	  "transitions": [
//	    {"from": "0", "on": "a", "to": ["1"]},
//	    {"from": "1", "on": "b", "to": ["2"]},
//	    {"from": "2", "epsilon": true, "to": ["0"]}
//	  ],
//	  "start": "0",
//	  "accepting": ["2"]
//	}
//
// Transitions sharing a source and symbol are merged.
package definition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/fa/automaton"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("fa.definition")

// Document is the JSON form of an automaton over string states and symbols.
//
// Kind is optional; when given it must match the classification of the
// described automaton.
type Document struct {
	Kind        automaton.Kind `json:"kind,omitempty"`
	States      []string       `json:"states"`
	Alphabet    []string       `json:"alphabet"`
	Transitions []Transition   `json:"transitions"`
	Start       string         `json:"start"`
	Accepting   []string       `json:"accepting"`
}

// Transition lists the destinations of From on symbol On, or on no input
// when Epsilon is set. On is a pointer so that the empty string remains a
// usable symbol.
type Transition struct {
	From    string   `json:"from"`
	On      *string  `json:"on,omitempty"`
	Epsilon bool     `json:"epsilon,omitempty"`
	To      []string `json:"to"`
}

// SyntaxError reports a document that is not well-formed.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// FieldError ties a semantic error to a top-level field of the document.
// Index is the position in a list field, or -1.
type FieldError struct {
	Field string
	Index int
	Err   error
}

func (e *FieldError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %v", e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

var (
	errAmbiguousTransition = errors.New("a transition cannot both read a symbol and be an epsilon transition")
	errMissingSymbol       = errors.New("a transition needs a symbol or \"epsilon\": true")
	errKindMismatch        = errors.New("declared kind does not match the transitions")
)

// Parse decodes a document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, &SyntaxError{Offset: syntaxErr.Offset, Err: err}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &SyntaxError{Offset: typeErr.Offset, Err: err}
		}
		return nil, &SyntaxError{Offset: dec.InputOffset(), Err: err}
	}

	for i, tr := range doc.Transitions {
		switch {
		case tr.Epsilon && tr.On != nil:
			return nil, &FieldError{Field: "transitions", Index: i, Err: errAmbiguousTransition}
		case !tr.Epsilon && tr.On == nil:
			return nil, &FieldError{Field: "transitions", Index: i, Err: errMissingSymbol}
		}
	}

	return &doc, nil
}

// Automaton builds the automaton described by d. Validation failures are
// returned as a *FieldError wrapping the *automaton.ValidationError.
func (d *Document) Automaton() (*automaton.Automaton[string, string], error) {
	transitions := make(map[automaton.Key[string, string]][]automaton.State[string], len(d.Transitions))
	for _, tr := range d.Transitions {
		key := automaton.EpsilonFrom[string, string](tr.From)
		if !tr.Epsilon {
			key = automaton.On(tr.From, *tr.On)
		}
		transitions[key] = append(transitions[key], automaton.StatesOf(tr.To...)...)
	}

	a, err := automaton.New(automaton.Config[string, string]{
		States:      automaton.StatesOf(d.States...),
		Alphabet:    automaton.SymbolsOf(d.Alphabet...),
		Transitions: transitions,
		Start:       automaton.StateOf(d.Start),
		Accepting:   automaton.StatesOf(d.Accepting...),
	})
	if err != nil {
		var verr *automaton.ValidationError
		if errors.As(err, &verr) {
			return nil, &FieldError{Field: fieldOf(verr.Reason), Index: -1, Err: err}
		}
		return nil, err
	}

	if d.Kind != automaton.KindUnknown && d.Kind != a.Kind() {
		return nil, &FieldError{
			Field: "kind",
			Index: -1,
			Err:   fmt.Errorf("%w: declared %s, found %s", errKindMismatch, d.Kind, a.Kind()),
		}
	}
	return a, nil
}

func fieldOf(reason automaton.Reason) string {
	switch reason {
	case automaton.ReasonNoStates:
		return "states"
	case automaton.ReasonNoAlphabet, automaton.ReasonEpsilonInAlphabet:
		return "alphabet"
	case automaton.ReasonStartNotInStates:
		return "start"
	case automaton.ReasonAcceptingNotSubset:
		return "accepting"
	default:
		return "transitions"
	}
}

// Decode parses data and builds its automaton.
func Decode(data []byte) (*automaton.Automaton[string, string], error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.Automaton()
}

// Load reads the definition stored in filename.
func Load(filename string) (*automaton.Automaton[string, string], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	a, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debugf("loaded %s: %s", filename, a)
	return a, nil
}

// FromAutomaton describes a as a document. States and symbols are named by
// their String form; sentinel states that share a label are told apart with
// a "#n" suffix.
func FromAutomaton[S, A comparable](a *automaton.Automaton[S, A]) *Document {
	states := a.States()
	names := Labels(states)
	alphabet := a.Alphabet()

	doc := &Document{
		Kind:        a.Kind(),
		States:      make([]string, len(states)),
		Alphabet:    make([]string, len(alphabet)),
		Transitions: []Transition{},
		Start:       names[a.Start()],
		Accepting:   []string{},
	}
	for i, s := range states {
		doc.States[i] = names[s]
	}
	for i, sym := range alphabet {
		doc.Alphabet[i] = sym.String()
	}
	for _, s := range a.Accepting() {
		doc.Accepting = append(doc.Accepting, names[s])
	}

	symbols := append(alphabet, automaton.EpsilonSymbol[A]())
	for _, s := range states {
		for _, sym := range symbols {
			destinations, ok := a.Destinations(s, sym)
			if !ok {
				continue
			}
			tr := Transition{From: names[s], To: make([]string, len(destinations))}
			if sym.IsEpsilon() {
				tr.Epsilon = true
			} else {
				label := sym.String()
				tr.On = &label
			}
			for i, d := range destinations {
				tr.To[i] = names[d]
			}
			doc.Transitions = append(doc.Transitions, tr)
		}
	}
	return doc
}

// Labels names every state by its String form. When several states print
// the same, the second and later ones get a "#2", "#3", ... suffix.
func Labels[S comparable](states []automaton.State[S]) map[automaton.State[S]]string {
	names := make(map[automaton.State[S]]string, len(states))
	seen := make(map[string]int, len(states))
	for _, s := range states {
		label := s.String()
		seen[label]++
		if n := seen[label]; n > 1 {
			label = fmt.Sprintf("%s#%d", label, n)
		}
		names[s] = label
	}
	return names
}

// Encode returns d as indented JSON.
func (d *Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
