package automaton

// Language is the set of words accepted by an automaton.
type Language[S, A comparable] struct {
	automaton *Automaton[S, A]
}

// NewLanguage returns the language recognized by a.
func NewLanguage[S, A comparable](a *Automaton[S, A]) *Language[S, A] {
	return &Language[S, A]{automaton: a}
}

// Automaton returns the recognizing automaton.
func (l *Language[S, A]) Automaton() *Automaton[S, A] {
	return l.automaton
}

// Contains reports whether word is in the language. word may be a []A, a
// []Symbol[A], or a string when A is string or rune (one symbol per rune).
// Anything else is not a word and is never contained. Simulation errors are
// logged and reported as false.
func (l *Language[S, A]) Contains(word any) bool {
	var accepted bool
	var err error

	switch w := word.(type) {
	case []A:
		accepted, err = l.automaton.Accepts(w)
	case []Symbol[A]:
		accepted, err = l.automaton.AcceptsSymbols(w)
	case string:
		symbols, ok := splitRunes[A](w)
		if !ok {
			return false
		}
		accepted, err = l.automaton.Accepts(symbols)
	default:
		return false
	}

	if err != nil {
		log.Errorf("membership test failed: %v", err)
		return false
	}
	return accepted
}

func splitRunes[A comparable](s string) ([]A, bool) {
	var zero A
	runes := []rune(s)
	symbols := make([]A, len(runes))
	switch any(zero).(type) {
	case string:
		for i, r := range runes {
			symbols[i] = any(string(r)).(A)
		}
	case rune:
		for i, r := range runes {
			symbols[i] = any(r).(A)
		}
	default:
		return nil, false
	}
	return symbols, true
}
