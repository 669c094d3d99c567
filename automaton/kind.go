package automaton

import "fmt"

// Kind classifies an automaton. The zero Kind is KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindDFA
	KindNFA
	KindEpsilonNFA
)

var kindNames = map[Kind]string{
	KindDFA:        "dfa",
	KindNFA:        "nfa",
	KindEpsilonNFA: "epsilon-nfa",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown automaton kind %q", text)
}
