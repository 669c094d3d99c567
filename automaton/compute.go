package automaton

import (
	"fmt"
	"hash/maphash"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Compute returns the states visited while reading word, starting with the
// start state: len(word)+1 states in total. Automata that are not DFAs are
// simulated on their determinized form, so the returned states belong to
// Determinize().
func (a *Automaton[S, A]) Compute(word []A) ([]State[S], error) {
	return a.ComputeSymbols(SymbolsOf(word...))
}

// ComputeSymbols is Compute over tagged symbols.
func (a *Automaton[S, A]) ComputeSymbols(word []Symbol[A]) ([]State[S], error) {
	if a.kind != KindDFA {
		return a.Determinize().ComputeSymbols(word)
	}

	path := make([]State[S], 0, len(word)+1)
	state := a.start
	path = append(path, state)
	for _, sym := range word {
		destinations, ok := a.transitions[Key[S, A]{State: state, Symbol: sym}]
		if !ok || destinations.len() != 1 {
			return nil, &IllegalTransitionError{State: state.String(), Symbol: sym.String()}
		}
		state = destinations.items[0]
		path = append(path, state)
	}
	return path, nil
}

// Accepts reports whether the automaton accepts word. Results are memoized
// per automaton.
func (a *Automaton[S, A]) Accepts(word []A) (bool, error) {
	if accepted, ok := a.memo.lookup(word); ok {
		return accepted, nil
	}
	accepted, err := a.AcceptsSymbols(SymbolsOf(word...))
	if err != nil {
		return false, err
	}
	a.memo.store(word, accepted)
	return accepted, nil
}

// AcceptsSymbols is Accepts over tagged symbols, without memoization.
func (a *Automaton[S, A]) AcceptsSymbols(word []Symbol[A]) (bool, error) {
	dfa := a.Determinize()
	path, err := dfa.ComputeSymbols(word)
	if err != nil {
		return false, err
	}
	return dfa.accepting.has(path[len(path)-1]), nil
}

// maxMemoEntries bounds the acceptance memo; the least recently used word
// is evicted first.
const maxMemoEntries = 4096

type memoEntry[A comparable] struct {
	word     []A
	accepted bool
}

// memo maps word hashes to the words sharing that hash.
type memo[A comparable] struct {
	seed  maphash.Seed
	cache *lru.Cache[uint64, []memoEntry[A]]
}

func newMemo[A comparable]() *memo[A] {
	cache, err := lru.New[uint64, []memoEntry[A]](maxMemoEntries)
	if err != nil {
		panic(fmt.Sprintf("automaton: create memo: %v", err))
	}
	return &memo[A]{
		seed:  maphash.MakeSeed(),
		cache: cache,
	}
}

func (m *memo[A]) hash(word []A) uint64 {
	var h maphash.Hash
	h.SetSeed(m.seed)
	for _, sym := range word {
		maphash.WriteComparable(&h, sym)
	}
	return h.Sum64()
}

func (m *memo[A]) lookup(word []A) (bool, bool) {
	entries, ok := m.cache.Get(m.hash(word))
	if !ok {
		return false, false
	}
	for _, e := range entries {
		if slices.Equal(e.word, word) {
			return e.accepted, true
		}
	}
	return false, false
}

func (m *memo[A]) store(word []A, accepted bool) {
	h := m.hash(word)
	entries, _ := m.cache.Peek(h)
	for _, e := range entries {
		if slices.Equal(e.word, word) {
			return
		}
	}
	entries = append(slices.Clip(entries), memoEntry[A]{word: slices.Clone(word), accepted: accepted})
	m.cache.Add(h, entries)
}
