package automaton

import (
	"hash/maphash"
	"slices"
	"strings"
)

var compositeSeed = maphash.MakeSeed()

// Composite stands for a set of states discovered during subset
// construction. It keeps its members in the order they were collected and is
// named by a Token fixed at creation.
//
// Equal and Hash are positional. Subset construction looks composites up
// with SameElements instead, which ignores order.
type Composite[S comparable] struct {
	states []State[S]
	token  Token
}

// NewComposite creates a composite from a non-empty list of states.
func NewComposite[S comparable](states ...State[S]) Composite[S] {
	if len(states) == 0 {
		panic("automaton: composite state needs at least one state")
	}
	members := slices.Clone(states)
	return Composite[S]{
		states: members,
		token:  NewToken(compositeLabel(members)),
	}
}

func compositeLabel[S comparable](states []State[S]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range states {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// States returns the members in their stored order.
func (c Composite[S]) States() []State[S] {
	return slices.Clone(c.states)
}

// Token returns the sentinel that names c in a determinized automaton.
func (c Composite[S]) Token() Token {
	return c.token
}

// Len returns the number of members.
func (c Composite[S]) Len() int {
	return len(c.states)
}

// Contains reports whether s is a member of c.
func (c Composite[S]) Contains(s State[S]) bool {
	return slices.Contains(c.states, s)
}

// Equal compares members position by position.
func (c Composite[S]) Equal(other Composite[S]) bool {
	return slices.Equal(c.states, other.states)
}

// Hash is consistent with Equal.
func (c Composite[S]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(compositeSeed)
	for _, s := range c.states {
		maphash.WriteComparable(&h, s)
	}
	return h.Sum64()
}

// SameElements reports whether c holds exactly the states in members,
// ignoring order. members must not contain duplicates.
func (c Composite[S]) SameElements(members []State[S]) bool {
	if len(c.states) != len(members) {
		return false
	}
	own := make(map[State[S]]struct{}, len(c.states))
	for _, s := range c.states {
		own[s] = struct{}{}
	}
	for _, s := range members {
		if _, ok := own[s]; !ok {
			return false
		}
	}
	return true
}

// elementsHash is independent of member order.
func elementsHash[S comparable](members []State[S]) uint64 {
	var sum uint64
	for _, s := range members {
		sum += maphash.Comparable(compositeSeed, s)
	}
	return sum
}

// discovered indexes the composites found so far by their unordered
// contents.
type discovered[S comparable] struct {
	all     []Composite[S]
	buckets map[uint64][]int
}

func newDiscovered[S comparable]() *discovered[S] {
	return &discovered[S]{buckets: make(map[uint64][]int)}
}

func (d *discovered[S]) add(c Composite[S]) {
	h := elementsHash(c.states)
	d.buckets[h] = append(d.buckets[h], len(d.all))
	d.all = append(d.all, c)
}

func (d *discovered[S]) find(members []State[S]) (Composite[S], bool) {
	for _, i := range d.buckets[elementsHash(members)] {
		if d.all[i].SameElements(members) {
			return d.all[i], true
		}
	}
	return Composite[S]{}, false
}
