package automaton

import "unicode/utf8"

// Token is a printable marker with identity semantics. Two tokens are equal
// only if they come from the same call to NewToken, whatever their labels.
// The zero Token is not a valid marker.
type Token struct {
	t *token
}

type token struct {
	label string
}

// Reserved tokens.
var (
	// Epsilon keys transitions that consume no input.
	Epsilon = NewToken("ε")
	// Empty is the absorbing state introduced by determinization.
	Empty = NewToken("empty")
	// Start anchors the automaton returned by epsilon elimination.
	Start = NewToken("start")
)

// NewToken creates a token that is distinct from every other token.
func NewToken(label string) Token {
	return Token{t: &token{label: label}}
}

// String returns the token's label.
func (t Token) String() string {
	if t.t == nil {
		return ""
	}
	return t.t.label
}

// Len returns the number of characters in the label.
func (t Token) Len() int {
	return utf8.RuneCountInString(t.String())
}

// IsZero reports whether t is the zero Token.
func (t Token) IsZero() bool {
	return t.t == nil
}
