package automaton

// Determinize returns an equivalent DFA. A DFA is returned unchanged and an
// epsilon-NFA has its epsilon transitions removed first. The result is
// computed once per automaton.
//
// Every state of the returned automaton is a sentinel: one token per
// discovered set of states, plus Empty when some set has no successor on a
// symbol. Empty loops to itself on every symbol and is never accepting.
func (a *Automaton[S, A]) Determinize() *Automaton[S, A] {
	if a.kind == KindDFA {
		return a
	}
	a.dfaOnce.Do(func() {
		if a.kind == KindEpsilonNFA {
			a.dfa = a.RemoveEpsilonTransitions().Determinize()
			return
		}
		a.dfa = a.subsetConstruction()
	})
	return a.dfa
}

func (a *Automaton[S, A]) subsetConstruction() *Automaton[S, A] {
	empty := SentinelState[S](Empty)
	initial := NewComposite(a.start)

	found := newDiscovered[S]()
	found.add(initial)
	queue := []Composite[S]{initial}

	transitions := make(map[Key[S, A]][]State[S])
	reachesEmpty := false

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		from := SentinelState[S](current.Token())

		for _, sym := range a.alphabet.items {
			union := newSet[State[S]]()
			for _, s := range current.states {
				if destinations, ok := a.transitions[Key[S, A]{State: s, Symbol: sym}]; ok {
					union.addAll(destinations)
				}
			}

			key := Key[S, A]{State: from, Symbol: sym}
			if union.len() == 0 {
				transitions[key] = []State[S]{empty}
				reachesEmpty = true
				continue
			}

			next, ok := found.find(union.items)
			if !ok {
				next = NewComposite(union.items...)
				found.add(next)
				queue = append(queue, next)
			}
			transitions[key] = []State[S]{SentinelState[S](next.Token())}
		}
	}

	states := make([]State[S], 0, len(found.all)+1)
	var accepting []State[S]
	for _, c := range found.all {
		s := SentinelState[S](c.Token())
		states = append(states, s)
		for _, member := range c.states {
			if a.accepting.has(member) {
				accepting = append(accepting, s)
				break
			}
		}
	}

	if reachesEmpty {
		states = append(states, empty)
		for _, sym := range a.alphabet.items {
			transitions[Key[S, A]{State: empty, Symbol: sym}] = []State[S]{empty}
		}
	}

	log.Debugf("subset construction: %d states from %d", len(states), a.states.len())

	return mustNew(Config[S, A]{
		States:      states,
		Alphabet:    a.alphabet.values(),
		Transitions: transitions,
		Start:       SentinelState[S](initial.Token()),
		Accepting:   accepting,
	})
}
