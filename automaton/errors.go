package automaton

import "fmt"

// Reason tells which construction invariant a ValidationError reports.
type Reason int

const (
	ReasonNoStates Reason = iota + 1
	ReasonNoAlphabet
	ReasonStartNotInStates
	ReasonAcceptingNotSubset
	ReasonEpsilonInAlphabet
	ReasonUnknownState
	ReasonUnknownSymbol
)

var reasonMessages = map[Reason]string{
	ReasonNoStates:           "a finite automaton must have at least one state",
	ReasonNoAlphabet:         "a finite automaton must have at least one symbol in its input alphabet",
	ReasonStartNotInStates:   "the start state must be in the states",
	ReasonAcceptingNotSubset: "the accepting states must be a subset of the states",
	ReasonEpsilonInAlphabet:  "epsilon cannot be declared as an alphabet symbol",
	ReasonUnknownState:       "transitions must only use declared states",
	ReasonUnknownSymbol:      "transitions must only use alphabet symbols or epsilon",
}

func (r Reason) String() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return "invalid automaton"
}

// ValidationError is returned by New when the definition violates an
// invariant. Detail names the offending state or symbol, if any.
type ValidationError struct {
	Reason Reason
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
	}
	return e.Reason.String()
}

// IllegalTransitionError reports a (state, symbol) pair without exactly one
// recorded destination during simulation.
type IllegalTransitionError struct {
	State  string
	Symbol string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition (%s, %s)", e.State, e.Symbol)
}
