package automaton

import (
	"errors"
	"testing"
)

func mustBuild[S, A comparable](t testing.TB, cfg Config[S, A]) *Automaton[S, A] {
	t.Helper()
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

// evenAs accepts the words over {a, b} with an even number of a's.
func evenAs(t testing.TB) *Automaton[int, string] {
	return mustBuild(t, Config[int, string]{
		States:   StatesOf(0, 1),
		Alphabet: SymbolsOf("a", "b"),
		Transitions: map[Key[int, string]][]State[int]{
			On(0, "a"): StatesOf(1),
			On(0, "b"): StatesOf(0),
			On(1, "a"): StatesOf(0),
			On(1, "b"): StatesOf(1),
		},
		Start:     StateOf(0),
		Accepting: StatesOf(0),
	})
}

// abLoop is the epsilon-NFA 0 -a-> 1 -b-> 2 -ε-> 0 accepting in 2.
func abLoop(t testing.TB) *Automaton[int, string] {
	return mustBuild(t, Config[int, string]{
		States:   StatesOf(0, 1, 2),
		Alphabet: SymbolsOf("a", "b"),
		Transitions: map[Key[int, string]][]State[int]{
			On(0, "a"):                  StatesOf(1),
			On(1, "b"):                  StatesOf(2),
			EpsilonFrom[int, string](2): StatesOf(0),
		},
		Start:     StateOf(0),
		Accepting: StatesOf(2),
	})
}

// chain accepts exactly word.
func chain(t testing.TB, word []string, alphabet ...string) *Automaton[int, string] {
	states := make([]int, len(word)+1)
	transitions := make(map[Key[int, string]][]State[int])
	for i := range states {
		states[i] = i
	}
	for i, sym := range word {
		transitions[On(i, sym)] = StatesOf(i + 1)
	}
	return mustBuild(t, Config[int, string]{
		States:      StatesOf(states...),
		Alphabet:    SymbolsOf(alphabet...),
		Transitions: transitions,
		Start:       StateOf(0),
		Accepting:   StatesOf(len(word)),
	})
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config[int, string]
		want Kind
	}{
		{
			name: "single state total",
			cfg: Config[int, string]{
				States:   StatesOf(0),
				Alphabet: SymbolsOf("a", "b"),
				Transitions: map[Key[int, string]][]State[int]{
					On(0, "a"): StatesOf(0),
					On(0, "b"): StatesOf(0),
				},
				Start:     StateOf(0),
				Accepting: StatesOf(0),
			},
			want: KindDFA,
		},
		{
			name: "two destinations",
			cfg: Config[int, string]{
				States:   StatesOf(0, 1),
				Alphabet: SymbolsOf("a"),
				Transitions: map[Key[int, string]][]State[int]{
					On(0, "a"): StatesOf(0, 1),
					On(1, "a"): StatesOf(0),
				},
				Start:     StateOf(0),
				Accepting: StatesOf(0),
			},
			want: KindNFA,
		},
		{
			name: "missing pair",
			cfg: Config[int, string]{
				States:   StatesOf(0),
				Alphabet: SymbolsOf("a", "b"),
				Transitions: map[Key[int, string]][]State[int]{
					On(0, "a"): StatesOf(0),
				},
				Start:     StateOf(0),
				Accepting: StatesOf(0),
			},
			want: KindNFA,
		},
		{
			name: "epsilon on a total automaton",
			cfg: Config[int, string]{
				States:   StatesOf(0),
				Alphabet: SymbolsOf("a"),
				Transitions: map[Key[int, string]][]State[int]{
					On(0, "a"):                  StatesOf(0),
					EpsilonFrom[int, string](0): StatesOf(0),
				},
				Start:     StateOf(0),
				Accepting: StatesOf(0),
			},
			want: KindEpsilonNFA,
		},
		{
			name: "recorded empty destination",
			cfg: Config[int, string]{
				States:   StatesOf(0),
				Alphabet: SymbolsOf("a"),
				Transitions: map[Key[int, string]][]State[int]{
					On(0, "a"): nil,
				},
				Start: StateOf(0),
			},
			want: KindDFA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustBuild(t, tt.cfg)
			if a.Kind() != tt.want {
				t.Errorf("Kind() = %s, want %s", a.Kind(), tt.want)
			}
		})
	}
}

func TestNew_Validation(t *testing.T) {
	valid := func() Config[int, string] {
		return Config[int, string]{
			States:   StatesOf(0, 1),
			Alphabet: SymbolsOf("a"),
			Transitions: map[Key[int, string]][]State[int]{
				On(0, "a"): StatesOf(1),
			},
			Start:     StateOf(0),
			Accepting: StatesOf(1),
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config[int, string])
		want   Reason
	}{
		{"empty states", func(c *Config[int, string]) { c.States = nil }, ReasonNoStates},
		{"empty alphabet", func(c *Config[int, string]) { c.Alphabet = nil }, ReasonNoAlphabet},
		{"start outside states", func(c *Config[int, string]) { c.Start = StateOf(7) }, ReasonStartNotInStates},
		{"accepting outside states", func(c *Config[int, string]) { c.Accepting = StatesOf(1, 9) }, ReasonAcceptingNotSubset},
		{"epsilon in alphabet", func(c *Config[int, string]) {
			c.Alphabet = append(c.Alphabet, EpsilonSymbol[string]())
		}, ReasonEpsilonInAlphabet},
		{"transition from unknown state", func(c *Config[int, string]) {
			c.Transitions[On(5, "a")] = StatesOf(0)
		}, ReasonUnknownState},
		{"transition to unknown state", func(c *Config[int, string]) {
			c.Transitions[On(0, "a")] = StatesOf(5)
		}, ReasonUnknownState},
		{"transition on unknown symbol", func(c *Config[int, string]) {
			c.Transitions[On(0, "z")] = StatesOf(0)
		}, ReasonUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			a, err := New(cfg)
			if err == nil {
				t.Fatalf("New succeeded with %s, want error", a)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("New error = %T, want *ValidationError", err)
			}
			if verr.Reason != tt.want {
				t.Errorf("Reason = %v, want %v", verr.Reason, tt.want)
			}
		})
	}
}

func TestNew_SentinelNeverEqualsDomainValue(t *testing.T) {
	lookalike := StateOf("start")
	_, err := New(Config[string, string]{
		States:    []State[string]{lookalike},
		Alphabet:  SymbolsOf("a"),
		Start:     SentinelState[string](Start),
		Accepting: nil,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Reason != ReasonStartNotInStates {
		t.Errorf("New error = %v, want start not in states", err)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	states := StatesOf(0, 1)
	transitions := map[Key[int, string]][]State[int]{
		On(0, "a"): StatesOf(1),
	}
	a := mustBuild(t, Config[int, string]{
		States:      states,
		Alphabet:    SymbolsOf("a"),
		Transitions: transitions,
		Start:       StateOf(0),
	})

	states[1] = StateOf(9)
	transitions[On(1, "a")] = StatesOf(0)

	if got := a.States(); got[1] != StateOf(1) {
		t.Errorf("States()[1] = %s after caller mutation, want 1", got[1])
	}
	if _, ok := a.Destinations(StateOf(1), SymbolOf("a")); ok {
		t.Error("transition added by the caller after New is visible")
	}
}

func TestNew_DeduplicatesInOrder(t *testing.T) {
	a := mustBuild(t, Config[int, string]{
		States:   StatesOf(2, 0, 2, 1, 0),
		Alphabet: SymbolsOf("b", "a", "b"),
		Start:    StateOf(0),
	})

	states := a.States()
	want := StatesOf(2, 0, 1)
	if len(states) != len(want) {
		t.Fatalf("States() = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("States()[%d] = %s, want %s", i, states[i], want[i])
		}
	}
	if got := a.Alphabet(); len(got) != 2 || got[0] != SymbolOf("b") {
		t.Errorf("Alphabet() = %v, want [b a]", got)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindDFA:        "dfa",
		KindNFA:        "nfa",
		KindEpsilonNFA: "epsilon-nfa",
		KindUnknown:    "unknown",
		Kind(42):       "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("pda")); err == nil {
		t.Error("UnmarshalText(pda) succeeded, want error")
	}
}
