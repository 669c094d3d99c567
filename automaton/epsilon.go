package automaton

// Closure returns the states reachable from s through epsilon transitions
// only, starting with s itself.
func (a *Automaton[S, A]) Closure(s State[S]) []State[S] {
	return a.closure(s).items
}

// closure walks the epsilon sub-relation breadth first. The visited set
// terminates the walk on epsilon cycles.
func (a *Automaton[S, A]) closure(s State[S]) *set[State[S]] {
	epsilon := EpsilonSymbol[A]()
	visited := newSet(s)
	queue := []State[S]{s}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		destinations, ok := a.transitions[Key[S, A]{State: current, Symbol: epsilon}]
		if !ok {
			continue
		}
		for _, next := range destinations.items {
			if visited.add(next) {
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// RemoveEpsilonTransitions returns an equivalent automaton without epsilon
// transitions. Automata that are not epsilon-NFAs are returned unchanged.
//
// Every state s reads symbol a into closure(δ(closure(s), a)). A fresh Start
// sentinel copies the outgoing transitions of the original start state and
// becomes the new start; it is accepting when the closure of the original
// start reaches an accepting state. Pairs with no destination are left
// unrecorded.
func (a *Automaton[S, A]) RemoveEpsilonTransitions() *Automaton[S, A] {
	if a.kind != KindEpsilonNFA {
		return a
	}

	closures := make(map[State[S]]*set[State[S]], a.states.len())
	closureOf := func(s State[S]) *set[State[S]] {
		if c, ok := closures[s]; ok {
			return c
		}
		c := a.closure(s)
		closures[s] = c
		return c
	}

	start := SentinelState[S](Start)
	transitions := make(map[Key[S, A]][]State[S])
	for _, s := range a.states.items {
		for _, sym := range a.alphabet.items {
			step := newSet[State[S]]()
			for _, t := range closureOf(s).items {
				if destinations, ok := a.transitions[Key[S, A]{State: t, Symbol: sym}]; ok {
					step.addAll(destinations)
				}
			}

			next := newSet[State[S]]()
			for _, d := range step.items {
				next.addAll(closureOf(d))
			}
			if next.len() == 0 {
				continue
			}

			transitions[Key[S, A]{State: s, Symbol: sym}] = next.items
			if s == a.start {
				transitions[Key[S, A]{State: start, Symbol: sym}] = next.items
			}
		}
	}

	accepting := a.accepting.values()
	for _, s := range closureOf(a.start).items {
		if a.accepting.has(s) {
			accepting = append(accepting, start)
			break
		}
	}

	result := mustNew(Config[S, A]{
		States:      append(a.states.values(), start),
		Alphabet:    a.alphabet.values(),
		Transitions: transitions,
		Start:       start,
		Accepting:   accepting,
	})
	log.Debugf("removed epsilon transitions: %d states, now %s", result.states.len(), result.kind)
	return result
}
