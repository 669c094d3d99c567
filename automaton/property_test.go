package automaton

import (
	"math/rand/v2"
	"testing"
)

func letters(s string) []string {
	word := make([]string, 0, len(s))
	for _, r := range s {
		word = append(word, string(r))
	}
	return word
}

// allWords returns every word of length n over alphabet.
func allWords(alphabet []string, n int) [][]string {
	words := [][]string{{}}
	for i := 0; i < n; i++ {
		next := make([][]string, 0, len(words)*len(alphabet))
		for _, w := range words {
			for _, sym := range alphabet {
				extended := append(append([]string{}, w...), sym)
				next = append(next, extended)
			}
		}
		words = next
	}
	return words
}

// simulate runs a on word by tracking the set of reachable states directly.
func simulate(a *Automaton[int, string], word []string) bool {
	current := map[State[int]]bool{}
	for _, s := range a.Closure(a.Start()) {
		current[s] = true
	}
	for _, sym := range word {
		next := map[State[int]]bool{}
		for s := range current {
			destinations, _ := a.Destinations(s, SymbolOf(sym))
			for _, d := range destinations {
				for _, c := range a.Closure(d) {
					next[c] = true
				}
			}
		}
		current = next
	}
	for s := range current {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

// randomAutomaton builds an automaton with up to five states over {a, b}
// whose transitions are drawn from r. Epsilon transitions are drawn when
// epsilon is set.
func randomAutomaton(t testing.TB, r *rand.Rand, epsilon bool) *Automaton[int, string] {
	n := 1 + r.IntN(5)
	states := make([]int, n)
	for i := range states {
		states[i] = i
	}
	symbols := []Symbol[string]{SymbolOf("a"), SymbolOf("b")}
	if epsilon {
		symbols = append(symbols, EpsilonSymbol[string]())
	}

	transitions := make(map[Key[int, string]][]State[int])
	for _, s := range states {
		for _, sym := range symbols {
			if r.IntN(3) == 0 {
				continue
			}
			var destinations []State[int]
			for _, d := range states {
				if r.IntN(n+1) == 0 {
					destinations = append(destinations, StateOf(d))
				}
			}
			if len(destinations) > 0 {
				transitions[Key[int, string]{State: StateOf(s), Symbol: sym}] = destinations
			}
		}
	}

	var accepting []State[int]
	for _, s := range states {
		if r.IntN(3) == 0 {
			accepting = append(accepting, StateOf(s))
		}
	}

	return mustBuild(t, Config[int, string]{
		States:      StatesOf(states...),
		Alphabet:    SymbolsOf("a", "b"),
		Transitions: transitions,
		Start:       StateOf(r.IntN(n)),
		Accepting:   accepting,
	})
}

func checkEquivalent(t *testing.T, a *Automaton[int, string], maxLen int) {
	t.Helper()
	d := a.Determinize()
	if d.Kind() != KindDFA {
		t.Fatalf("Determinize().Kind() = %s", d.Kind())
	}
	r := a.RemoveEpsilonTransitions()
	if r.Kind() == KindEpsilonNFA {
		t.Fatalf("RemoveEpsilonTransitions().Kind() = %s", r.Kind())
	}
	dd := d.Determinize()

	for n := 0; n <= maxLen; n++ {
		for _, w := range allWords([]string{"a", "b"}, n) {
			want := simulate(a, w)
			for name, candidate := range map[string]*Automaton[int, string]{
				"automaton":                a,
				"determinized":             d,
				"epsilon-free":             r,
				"determinized twice":       dd,
				"epsilon-free determinize": r.Determinize(),
			} {
				got, err := candidate.Accepts(w)
				if err != nil {
					t.Fatalf("%s: Accepts(%v): %v", name, w, err)
				}
				if got != want {
					t.Fatalf("%s: Accepts(%v) = %v, want %v\n%s", name, w, got, want, a)
				}
			}
		}
	}
}

func TestLanguageEquivalence_Random(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		checkEquivalent(t, randomAutomaton(t, r, i%2 == 0), 6)
	}
}

func TestLanguageEquivalence_Scenarios(t *testing.T) {
	for name, a := range map[string]*Automaton[int, string]{
		"even a's":       evenAs(t),
		"chain":          chain(t, letters("abab"), "a", "b"),
		"ab loop":        abLoop(t),
		"third from end": nthFromEnd(t, 3),
	} {
		t.Run(name, func(t *testing.T) {
			checkEquivalent(t, a, 7)
		})
	}
}

// FuzzDeterminize decodes an epsilon-NFA over {a, b} from spec: the first
// byte picks the state count, every following triple is (from, symbol, to)
// with symbol 0 = a, 1 = b, 2 = ε, and the last state is accepting.
func FuzzDeterminize(f *testing.F) {
	f.Add([]byte{3, 0, 0, 1, 1, 1, 2, 2, 2, 0}, "abab")
	f.Add([]byte{1, 0, 0, 0, 0, 1, 0}, "")
	f.Add([]byte{2, 0, 2, 1, 1, 2, 0}, "aaa")
	f.Add([]byte{4, 0, 0, 0, 0, 0, 1, 1, 0, 2, 2, 1, 3}, "babba")

	f.Fuzz(func(t *testing.T, spec []byte, input string) {
		if len(spec) == 0 || len(input) > 32 {
			return
		}
		n := int(spec[0]%6) + 1
		states := make([]int, n)
		for i := range states {
			states[i] = i
		}
		symbols := []Symbol[string]{SymbolOf("a"), SymbolOf("b"), EpsilonSymbol[string]()}
		transitions := make(map[Key[int, string]][]State[int])
		for i := 1; i+2 < len(spec); i += 3 {
			key := Key[int, string]{
				State:  StateOf(int(spec[i]) % n),
				Symbol: symbols[int(spec[i+1])%len(symbols)],
			}
			transitions[key] = append(transitions[key], StateOf(int(spec[i+2])%n))
		}
		a := mustBuild(t, Config[int, string]{
			States:      StatesOf(states...),
			Alphabet:    SymbolsOf("a", "b"),
			Transitions: transitions,
			Start:       StateOf(0),
			Accepting:   StatesOf(n - 1),
		})

		var word []string
		for _, r := range input {
			if r == 'a' || r == 'b' {
				word = append(word, string(r))
			}
		}

		want := simulate(a, word)
		got, err := a.Determinize().Accepts(word)
		if err != nil {
			t.Fatalf("Accepts(%v): %v", word, err)
		}
		if got != want {
			t.Errorf("Determinize().Accepts(%v) = %v, want %v", word, got, want)
		}
	})
}
