// Package automata builds NFAs with Thompson's construction and converts
// them to DFAs with the subset construction.
package automata

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/regdfa/internal/alphabet"
)

// StateID addresses a state inside one automaton.
type StateID int

// Transition lists the destinations reached from a state on one symbol.
// Symbol is alphabet.Epsilon for transitions that consume no input.
type Transition struct {
	Symbol rune
	To     []StateID
}

// State is an NFA node.
type State struct {
	ID          StateID
	Label       string
	Transitions []Transition
}

// Targets returns the destinations of s on sym.
func (s *State) Targets(sym rune) []StateID {
	for _, t := range s.Transitions {
		if t.Symbol == sym {
			return t.To
		}
	}
	return nil
}

// OutDegree counts the outgoing edges of s.
func (s *State) OutDegree() int {
	n := 0
	for _, t := range s.Transitions {
		n += len(t.To)
	}
	return n
}

// NFA is a finished automaton produced by Builder.Build. It is read-only;
// state IDs are dense and the start state is always 0.
type NFA struct {
	States   []State
	Start    StateID
	Final    StateID
	Alphabet alphabet.Alphabet
}

// State returns the state with the given ID.
func (n *NFA) State(id StateID) *State {
	return &n.States[id]
}

// Len returns the number of states.
func (n *NFA) Len() int {
	return len(n.States)
}

// IsStart reports whether id is the start state.
func (n *NFA) IsStart(id StateID) bool {
	return id == n.Start
}

// IsFinal reports whether id is the final state.
func (n *NFA) IsFinal(id StateID) bool {
	return id == n.Final
}

// Label returns the label of id.
func (n *NFA) Label(id StateID) string {
	return n.States[id].Label
}

// Labels maps IDs to labels.
func (n *NFA) Labels(ids []StateID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = n.Label(id)
	}
	return out
}

// EdgeCount counts every edge of the automaton, epsilon edges included.
func (n *NFA) EdgeCount() int {
	total := 0
	for i := range n.States {
		total += n.States[i].OutDegree()
	}
	return total
}

// String lists every state with its transitions, one per line.
func (n *NFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "NFA alphabet=%s start=%s final=%s\n", n.Alphabet, n.Label(n.Start), n.Label(n.Final))
	for i := range n.States {
		s := &n.States[i]
		fmt.Fprintf(&sb, "  %s:", s.Label)
		if len(s.Transitions) == 0 {
			sb.WriteString(" (none)")
		}
		for _, t := range s.Transitions {
			fmt.Fprintf(&sb, " %c->{%s}", t.Symbol, strings.Join(n.Labels(t.To), ","))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
