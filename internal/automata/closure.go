package automata

import (
	"slices"
	"strconv"
	"strings"

	"github.com/KromDaniel/regdfa/internal/alphabet"
)

// StateSet is a sorted set of NFA state IDs without duplicates.
// Two sets are equal exactly when their elements are equal.
type StateSet []StateID

// NewStateSet sorts ids and removes duplicates.
func NewStateSet(ids ...StateID) StateSet {
	set := slices.Clone(ids)
	slices.Sort(set)
	return StateSet(slices.Compact(set))
}

// Contains reports whether id is in s.
func (s StateSet) Contains(id StateID) bool {
	_, found := slices.BinarySearch(s, id)
	return found
}

// Equal reports set equality.
func (s StateSet) Equal(other StateSet) bool {
	return slices.Equal(s, other)
}

// Key identifies the set for map lookups.
func (s StateSet) Key() string {
	var sb strings.Builder
	for i, id := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(id)))
	}
	return sb.String()
}

// Closure returns the epsilon-closure of the given states: every state
// reachable from them using only epsilon transitions, the states
// themselves included. The traversal tracks visited states, so epsilon
// cycles terminate.
func (n *NFA) Closure(states ...StateID) StateSet {
	visited := make([]bool, len(n.States))
	stack := make([]StateID, 0, len(states))
	for _, id := range states {
		if !visited[id] {
			visited[id] = true
			stack = append(stack, id)
		}
	}

	var closure []StateID
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		closure = append(closure, id)
		for _, next := range n.States[id].Targets(alphabet.Epsilon) {
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}

	return NewStateSet(closure...)
}

// Move returns the states reached from set by one transition on sym,
// without taking the epsilon-closure.
func (n *NFA) Move(set StateSet, sym rune) StateSet {
	var out []StateID
	for _, id := range set {
		out = append(out, n.States[id].Targets(sym)...)
	}
	return NewStateSet(out...)
}
