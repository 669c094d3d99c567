package automaton

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestAccepts_EvenAs(t *testing.T) {
	a := evenAs(t)
	for n := 0; n <= 6; n++ {
		for _, w := range allWords([]string{"a", "b"}, n) {
			got, err := a.Accepts(w)
			if err != nil {
				t.Fatalf("Accepts(%v): %v", w, err)
			}
			want := strings.Count(strings.Join(w, ""), "a")%2 == 0
			if got != want {
				t.Errorf("Accepts(%v) = %v, want %v", w, got, want)
			}
		}
	}
}

func TestAccepts_EmptyWordOnSingleStateDFA(t *testing.T) {
	a := mustBuild(t, Config[int, string]{
		States:   StatesOf(0),
		Alphabet: SymbolsOf("a"),
		Transitions: map[Key[int, string]][]State[int]{
			On(0, "a"): StatesOf(0),
		},
		Start:     StateOf(0),
		Accepting: StatesOf(0),
	})
	if ok, err := a.Accepts(nil); err != nil || !ok {
		t.Errorf("Accepts(nil) = %v, %v, want true", ok, err)
	}
}

func TestCompute_Path(t *testing.T) {
	a := evenAs(t)
	path, err := a.Compute(letters("abba"))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	want := StatesOf(0, 1, 1, 1, 0)
	if len(path) != len(want) {
		t.Fatalf("Compute(abba) = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %s, want %s", i, path[i], want[i])
		}
	}
}

func TestCompute_DeterminizesTransparently(t *testing.T) {
	a := abLoop(t)
	path, err := a.Compute(letters("abab"))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(path) != 5 {
		t.Fatalf("len(Compute(abab)) = %d, want 5", len(path))
	}
	d := a.Determinize()
	if path[0] != d.Start() {
		t.Errorf("path starts in %s, want %s", path[0], d.Start())
	}
	if !d.IsAccepting(path[4]) {
		t.Errorf("path ends in %s, which is not accepting", path[4])
	}
}

func TestCompute_IllegalTransition(t *testing.T) {
	tests := []struct {
		name   string
		a      *Automaton[int, string]
		word   []string
		state  string
		symbol string
	}{
		{
			name:   "symbol outside the alphabet",
			a:      evenAs(t),
			word:   letters("abc"),
			state:  "1",
			symbol: "c",
		},
		{
			name: "recorded empty destination",
			a: mustBuild(t, Config[int, string]{
				States:      StatesOf(0),
				Alphabet:    SymbolsOf("a"),
				Transitions: map[Key[int, string]][]State[int]{On(0, "a"): nil},
				Start:       StateOf(0),
			}),
			word:   letters("a"),
			state:  "0",
			symbol: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := tt.a.Compute(tt.word)
			if path != nil {
				t.Errorf("Compute returned a partial path %v", path)
			}
			var ierr *IllegalTransitionError
			if !errors.As(err, &ierr) {
				t.Fatalf("Compute error = %v, want *IllegalTransitionError", err)
			}
			if ierr.State != tt.state || ierr.Symbol != tt.symbol {
				t.Errorf("error pair = (%s, %s), want (%s, %s)", ierr.State, ierr.Symbol, tt.state, tt.symbol)
			}
			if _, err := tt.a.Accepts(tt.word); err == nil {
				t.Error("Accepts succeeded, want error")
			}
		})
	}
}

func TestAccepts_Memoized(t *testing.T) {
	a := evenAs(t)
	word := letters("aab")

	if _, ok := a.memo.lookup(word); ok {
		t.Fatal("memo hit before the first call")
	}
	if ok, err := a.Accepts(word); err != nil || !ok {
		t.Fatalf("Accepts(aab) = %v, %v", ok, err)
	}
	accepted, ok := a.memo.lookup(word)
	if !ok || !accepted {
		t.Errorf("memo.lookup(aab) = %v, %v, want true, true", accepted, ok)
	}

	other := evenAs(t)
	if _, ok := other.memo.lookup(word); ok {
		t.Error("memo is shared between automata")
	}
}

func TestMemo_Bounded(t *testing.T) {
	m := newMemo[int]()
	for i := 0; i < maxMemoEntries+10; i++ {
		m.store([]int{i}, true)
	}
	if n := m.cache.Len(); n > maxMemoEntries {
		t.Errorf("memo holds %d hashes, want at most %d", n, maxMemoEntries)
	}
	if _, ok := m.lookup([]int{maxMemoEntries + 5}); !ok {
		t.Error("latest entry missing")
	}
	if _, ok := m.lookup([]int{0}); ok {
		t.Error("oldest entry survived eviction")
	}
}

func TestMemo_EvictsLeastRecentlyUsed(t *testing.T) {
	m := newMemo[int]()
	for i := 0; i < maxMemoEntries; i++ {
		m.store([]int{i}, i%2 == 0)
	}

	if accepted, ok := m.lookup([]int{0}); !ok || !accepted {
		t.Fatalf("lookup(0) = %v, %v, want true, true", accepted, ok)
	}
	m.store([]int{maxMemoEntries}, true)

	if _, ok := m.lookup([]int{0}); !ok {
		t.Error("recently used word was evicted")
	}
	if _, ok := m.lookup([]int{1}); ok {
		t.Error("least recently used word survived")
	}
}

func TestAccepts_ConcurrentReaders(t *testing.T) {
	a := nthFromEnd(t, 5)
	words := allWords([]string{"a", "b"}, 6)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range words {
				got, err := a.Accepts(w)
				if err != nil {
					t.Errorf("Accepts(%v): %v", w, err)
					return
				}
				if want := w[len(w)-5] == "a"; got != want {
					t.Errorf("Accepts(%v) = %v, want %v", w, got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
