package automata

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/regdfa/internal/alphabet"
)

// DFATransition is the single edge a DFA state takes on Symbol.
type DFATransition struct {
	Symbol rune
	To     int // index into DFA.States
}

// DFAState is a DFA node standing for a set of NFA states.
type DFAState struct {
	Index       int
	Label       string
	Components  StateSet
	Transitions []DFATransition // one per alphabet symbol, in alphabet order
	Final       bool
}

// Target returns the index reached on sym.
func (s *DFAState) Target(sym rune) (int, bool) {
	for _, t := range s.Transitions {
		if t.Symbol == sym {
			return t.To, true
		}
	}
	return 0, false
}

// IsDead reports whether s has no component states.
func (s *DFAState) IsDead() bool {
	return len(s.Components) == 0
}

// DFA is the result of the subset construction. It is read-only once
// Determinize returns.
type DFA struct {
	States   []*DFAState
	Start    int
	Finals   []int
	Alphabet alphabet.Alphabet

	nfa *NFA
}

// StartState returns the start state.
func (d *DFA) StartState() *DFAState {
	return d.States[d.Start]
}

// State returns the state labelled label, or nil.
func (d *DFA) State(label string) *DFAState {
	for _, s := range d.States {
		if s.Label == label {
			return s
		}
	}
	return nil
}

// Dead returns the dead state, or nil when every move is non-empty.
func (d *DFA) Dead() *DFAState {
	for _, s := range d.States {
		if s.IsDead() {
			return s
		}
	}
	return nil
}

// LiveStates returns every state except the dead state.
func (d *DFA) LiveStates() []*DFAState {
	live := make([]*DFAState, 0, len(d.States))
	for _, s := range d.States {
		if !s.IsDead() {
			live = append(live, s)
		}
	}
	return live
}

// FinalStates returns the accepting states in discovery order.
func (d *DFA) FinalStates() []*DFAState {
	out := make([]*DFAState, len(d.Finals))
	for i, idx := range d.Finals {
		out[i] = d.States[idx]
	}
	return out
}

// TargetLabel returns the label reached from s on sym.
func (d *DFA) TargetLabel(s *DFAState, sym rune) (string, bool) {
	to, ok := s.Target(sym)
	if !ok {
		return "", false
	}
	return d.States[to].Label, true
}

// String lists every state with its component states and transitions.
func (d *DFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DFA alphabet=%s start=%s finals={", d.Alphabet, d.StartState().Label)
	for i, s := range d.FinalStates() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s.Label)
	}
	sb.WriteString("}\n")

	for _, s := range d.States {
		components := "empty"
		if !s.IsDead() && d.nfa != nil {
			components = strings.Join(d.nfa.Labels(s.Components), ",")
		}
		fmt.Fprintf(&sb, "  %s [%s]:", s.Label, components)
		for _, t := range s.Transitions {
			fmt.Fprintf(&sb, " %c->%s", t.Symbol, d.States[t.To].Label)
		}
		if s.Final {
			sb.WriteString(" (final)")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
