// Package automaton represents finite automata over arbitrary comparable
// state and symbol domains.
//
// # Overview
//
// An [Automaton] holds a set of states, an input alphabet, a transition
// relation, a start state and a set of accepting states. The automaton is
// classified once, when it is built with [New]:
//
//	epsilon-nfa ──RemoveEpsilonTransitions──▶ nfa | dfa
//	nfa         ──Determinize──────────────▶ dfa
//	dfa         ──Determinize──────────────▶ dfa (identity)
//
// Acceptance is always simulated on the deterministic form. Callers never
// need to determinize explicitly: [Automaton.Accepts] and
// [Automaton.Compute] reduce the receiver on demand and cache the result.
//
// # States and symbols
//
// States and symbols are tagged values. A [State] is either a value from the
// caller's domain or a sentinel [Token]; a [Symbol] is either a domain value
// or the [Epsilon] sentinel. Tokens compare by identity, so a sentinel never
// equals a domain value, not even one that prints the same.
//
// Determinization names the states it discovers with fresh tokens. The
// resulting automaton therefore only contains sentinel states regardless of
// the input's state domain.
//
// # Concurrency
//
// Automata are immutable once built and may be shared between goroutines.
// The determinized form and the acceptance memo are private to each instance
// and guarded internally.
//
// # Complexity
//
// Subset construction is exponential in the worst case: an NFA with n+1
// states recognizing "the n-th symbol from the end is a" determinizes to
// 2^n reachable states.
package automaton
