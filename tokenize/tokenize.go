// Package tokenize cuts words into alphabet symbols using an EBNF grammar.
//
// Every production whose name starts with an upper-case letter is a token
// kind; lower-case productions are fragments that token kinds refer to.
// At each position the longest match wins, and ties go to the kind whose
// name sorts first. Repetitions and alternatives match greedily.
package tokenize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

var log = commonlog.GetLogger("fa.tokenize")

// Position is a location in the input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one match of a token kind.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// ScanError reports input that no token kind matches.
type ScanError struct {
	Position Position
	Rune     rune
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: no token matches %q", e.Position, e.Rune)
}

// Tokenizer splits input according to a grammar. It holds no per-input
// state and may be shared between goroutines.
type Tokenizer struct {
	grammar ebnf.Grammar
	kinds   []string
	skip    map[string]bool
}

// New returns a tokenizer for grammar. Tokens of the skip kinds are
// matched but left out of the result.
func New(grammar ebnf.Grammar, skip ...string) (*Tokenizer, error) {
	t := &Tokenizer{
		grammar: grammar,
		skip:    make(map[string]bool, len(skip)),
	}
	for name, prod := range grammar {
		if prod.Expr != nil && isKind(name) {
			t.kinds = append(t.kinds, name)
		}
	}
	slices.Sort(t.kinds)
	if len(t.kinds) == 0 {
		return nil, errors.New("grammar has no token kinds (productions starting with an upper-case letter)")
	}

	for _, name := range skip {
		if !slices.Contains(t.kinds, name) {
			return nil, fmt.Errorf("skip kind %q is not a token kind of the grammar", name)
		}
		t.skip[name] = true
	}

	log.Debugf("tokenizer with kinds %v, skipping %v", t.kinds, skip)
	return t, nil
}

// Kinds returns the token kinds in tie-breaking order.
func (t *Tokenizer) Kinds() []string {
	return slices.Clone(t.kinds)
}

// ParseGrammar reads a grammar from r.
func ParseGrammar(filename string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// LoadGrammar reads a grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// Tokens splits input into tokens, dropping those of a skip kind.
func (t *Tokenizer) Tokens(input string) ([]Token, error) {
	s := &scanner{
		grammar: t.grammar,
		input:   input,
		line:    1,
		column:  1,
	}

	var tokens []Token
	for s.pos < len(input) {
		tok, err := s.next(t.kinds)
		if err != nil {
			return nil, err
		}
		if !t.skip[tok.Kind] {
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// Symbols returns the literals of the tokens of input.
func (t *Tokenizer) Symbols(input string) ([]string, error) {
	tokens, err := t.Tokens(input)
	if err != nil {
		return nil, err
	}
	symbols := make([]string, len(tokens))
	for i, tok := range tokens {
		symbols[i] = tok.Literal
	}
	return symbols, nil
}

// Runes splits input into one symbol per rune.
func Runes(input string) []string {
	symbols := make([]string, 0, utf8.RuneCountInString(input))
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return symbols
}

func isKind(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

type memoKey struct {
	name   string
	offset int
}

type scanner struct {
	grammar  ebnf.Grammar
	input    string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // match length, or -1 for no match
	visiting map[memoKey]bool // breaks left recursion
}

func (s *scanner) position() Position {
	return Position{Offset: s.pos, Line: s.line, Column: s.column}
}

func (s *scanner) next(kinds []string) (Token, error) {
	start := s.position()
	s.memo = make(map[memoKey]int)

	var bestKind string
	bestLen := 0
	for _, name := range kinds {
		s.visiting = make(map[memoKey]bool)
		if n := s.matchName(name, s.pos); n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
		return Token{}, &ScanError{Position: start, Rune: r}
	}

	literal := s.input[s.pos : s.pos+bestLen]
	for _, r := range literal {
		if r == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
	s.pos += bestLen

	return Token{Kind: bestKind, Literal: literal, Position: start}, nil
}

// match returns the length matched by expr at offset, or -1. A zero length
// is a successful empty match.
func (s *scanner) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		if len(s.input)-offset >= len(e.String) && s.input[offset:offset+len(e.String)] == e.String {
			return len(e.String)
		}
		return -1

	case *ebnf.Range:
		if offset >= len(s.input) {
			return -1
		}
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		r, size := utf8.DecodeRuneInString(s.input[offset:])
		if r >= lo && r <= hi {
			return size
		}
		return -1

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := s.match(item, offset+total)
			if n < 0 {
				return -1
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := s.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := s.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		if n := s.match(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return s.match(e.Body, offset)

	case *ebnf.Name:
		return s.matchName(e.String, offset)

	default:
		return -1
	}
}

func (s *scanner) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := s.memo[key]; ok {
		return n
	}
	if s.visiting[key] {
		return -1
	}

	prod, ok := s.grammar[name]
	if !ok {
		s.memo[key] = -1
		return -1
	}

	s.visiting[key] = true
	n := s.match(prod.Expr, offset)
	delete(s.visiting, key)

	s.memo[key] = n
	return n
}
