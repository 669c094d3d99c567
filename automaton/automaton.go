package automaton

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("fa.automaton")

// Config describes an automaton to build with New. Duplicate entries in the
// slices are ignored; the first occurrence fixes the iteration order.
type Config[S, A comparable] struct {
	States      []State[S]
	Alphabet    []Symbol[A]
	Transitions map[Key[S, A]][]State[S]
	Start       State[S]
	Accepting   []State[S]
}

// Automaton is an immutable finite automaton.
type Automaton[S, A comparable] struct {
	states      *set[State[S]]
	alphabet    *set[Symbol[A]]
	transitions map[Key[S, A]]*set[State[S]]
	start       State[S]
	accepting   *set[State[S]]
	kind        Kind

	dfaOnce sync.Once
	dfa     *Automaton[S, A]

	memo *memo[A]
}

// New validates cfg and builds an automaton from a copy of it. The returned
// error is a *ValidationError.
func New[S, A comparable](cfg Config[S, A]) (*Automaton[S, A], error) {
	states := newSet(cfg.States...)
	if states.len() == 0 {
		return nil, &ValidationError{Reason: ReasonNoStates}
	}

	alphabet := newSet(cfg.Alphabet...)
	if alphabet.len() == 0 {
		return nil, &ValidationError{Reason: ReasonNoAlphabet}
	}

	if !states.has(cfg.Start) {
		return nil, &ValidationError{Reason: ReasonStartNotInStates, Detail: cfg.Start.String()}
	}

	accepting := newSet(cfg.Accepting...)
	for _, s := range accepting.items {
		if !states.has(s) {
			return nil, &ValidationError{Reason: ReasonAcceptingNotSubset, Detail: s.String()}
		}
	}

	epsilon := EpsilonSymbol[A]()
	if alphabet.has(epsilon) {
		return nil, &ValidationError{Reason: ReasonEpsilonInAlphabet}
	}

	transitions := make(map[Key[S, A]]*set[State[S]], len(cfg.Transitions))
	for key, destinations := range cfg.Transitions {
		if !states.has(key.State) {
			return nil, &ValidationError{Reason: ReasonUnknownState, Detail: key.State.String()}
		}
		if key.Symbol != epsilon && !alphabet.has(key.Symbol) {
			return nil, &ValidationError{Reason: ReasonUnknownSymbol, Detail: key.Symbol.String()}
		}
		for _, d := range destinations {
			if !states.has(d) {
				return nil, &ValidationError{
					Reason: ReasonUnknownState,
					Detail: fmt.Sprintf("%s (from %s on %s)", d, key.State, key.Symbol),
				}
			}
		}
		transitions[key] = newSet(destinations...)
	}

	a := &Automaton[S, A]{
		states:      states,
		alphabet:    alphabet,
		transitions: transitions,
		start:       cfg.Start,
		accepting:   accepting,
		memo:        newMemo[A](),
	}
	a.kind = a.classify()
	return a, nil
}

// mustNew builds automata whose invariants hold by construction.
func mustNew[S, A comparable](cfg Config[S, A]) *Automaton[S, A] {
	a, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("automaton: derived automaton is invalid: %v", err))
	}
	return a
}

func (a *Automaton[S, A]) classify() Kind {
	for key := range a.transitions {
		if key.Symbol.IsEpsilon() {
			return KindEpsilonNFA
		}
	}
	for _, destinations := range a.transitions {
		if destinations.len() > 1 {
			return KindNFA
		}
	}
	if !a.isTotal() {
		return KindNFA
	}
	return KindDFA
}

// isTotal reports whether a transition is recorded for every state and
// alphabet symbol. An empty destination set counts as recorded.
func (a *Automaton[S, A]) isTotal() bool {
	for _, s := range a.states.items {
		for _, sym := range a.alphabet.items {
			if _, ok := a.transitions[Key[S, A]{State: s, Symbol: sym}]; !ok {
				return false
			}
		}
	}
	return true
}

// Kind returns the classification computed at construction.
func (a *Automaton[S, A]) Kind() Kind {
	return a.kind
}

// States returns the states in declaration order.
func (a *Automaton[S, A]) States() []State[S] {
	return a.states.values()
}

// Alphabet returns the input symbols in declaration order.
func (a *Automaton[S, A]) Alphabet() []Symbol[A] {
	return a.alphabet.values()
}

// Transitions returns a copy of the transition relation.
func (a *Automaton[S, A]) Transitions() map[Key[S, A]][]State[S] {
	transitions := make(map[Key[S, A]][]State[S], len(a.transitions))
	for key, destinations := range a.transitions {
		transitions[key] = destinations.values()
	}
	return transitions
}

// Destinations returns the states reached from s on sym, and whether a
// transition is recorded for the pair at all.
func (a *Automaton[S, A]) Destinations(s State[S], sym Symbol[A]) ([]State[S], bool) {
	destinations, ok := a.transitions[Key[S, A]{State: s, Symbol: sym}]
	if !ok {
		return nil, false
	}
	return destinations.values(), true
}

// Start returns the start state.
func (a *Automaton[S, A]) Start() State[S] {
	return a.start
}

// Accepting returns the accepting states in declaration order.
func (a *Automaton[S, A]) Accepting() []State[S] {
	return a.accepting.values()
}

// IsAccepting reports whether s is an accepting state.
func (a *Automaton[S, A]) IsAccepting(s State[S]) bool {
	return a.accepting.has(s)
}

func (a *Automaton[S, A]) String() string {
	return fmt.Sprintf("%s(states=%d, alphabet=%d, transitions=%d, start=%s, accepting=%d)",
		a.kind, a.states.len(), a.alphabet.len(), len(a.transitions), a.start, a.accepting.len())
}
