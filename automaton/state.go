package automaton

import "fmt"

// State is either a value of the caller's state domain or a sentinel Token.
// States are comparable and can be used as map keys.
type State[S comparable] struct {
	value S
	token Token
}

// StateOf wraps a domain value.
func StateOf[S comparable](v S) State[S] {
	return State[S]{value: v}
}

// StatesOf wraps every value in vs.
func StatesOf[S comparable](vs ...S) []State[S] {
	states := make([]State[S], len(vs))
	for i, v := range vs {
		states[i] = StateOf(v)
	}
	return states
}

// SentinelState wraps a token as a state.
func SentinelState[S comparable](t Token) State[S] {
	return State[S]{token: t}
}

// Value returns the domain value, or false for sentinel states.
func (s State[S]) Value() (S, bool) {
	return s.value, s.token.IsZero()
}

// Token returns the sentinel token, or false for domain states.
func (s State[S]) Token() (Token, bool) {
	return s.token, !s.token.IsZero()
}

// IsSentinel reports whether s wraps a token.
func (s State[S]) IsSentinel() bool {
	return !s.token.IsZero()
}

func (s State[S]) String() string {
	if s.IsSentinel() {
		return s.token.String()
	}
	return fmt.Sprint(s.value)
}

// Symbol is either a value of the caller's symbol domain or a sentinel Token.
// The only sentinel symbol used by this package is Epsilon.
type Symbol[A comparable] struct {
	value A
	token Token
}

// SymbolOf wraps a domain value.
func SymbolOf[A comparable](v A) Symbol[A] {
	return Symbol[A]{value: v}
}

// SymbolsOf wraps every value in vs.
func SymbolsOf[A comparable](vs ...A) []Symbol[A] {
	symbols := make([]Symbol[A], len(vs))
	for i, v := range vs {
		symbols[i] = SymbolOf(v)
	}
	return symbols
}

// EpsilonSymbol returns the Epsilon sentinel as a symbol of domain A.
func EpsilonSymbol[A comparable]() Symbol[A] {
	return Symbol[A]{token: Epsilon}
}

// Value returns the domain value, or false for sentinel symbols.
func (s Symbol[A]) Value() (A, bool) {
	return s.value, s.token.IsZero()
}

// IsEpsilon reports whether s is the Epsilon sentinel.
func (s Symbol[A]) IsEpsilon() bool {
	return s.token == Epsilon
}

func (s Symbol[A]) String() string {
	if !s.token.IsZero() {
		return s.token.String()
	}
	return fmt.Sprint(s.value)
}

// Key identifies the transitions leaving State on Symbol.
type Key[S, A comparable] struct {
	State  State[S]
	Symbol Symbol[A]
}

// On builds the key for domain state s reading domain symbol a.
func On[S, A comparable](s S, a A) Key[S, A] {
	return Key[S, A]{State: StateOf(s), Symbol: SymbolOf(a)}
}

// EpsilonFrom builds the key for the epsilon transitions of domain state s.
func EpsilonFrom[S, A comparable](s S) Key[S, A] {
	return Key[S, A]{State: StateOf(s), Symbol: EpsilonSymbol[A]()}
}
