package automata

import (
	"errors"
	"fmt"

	"github.com/KromDaniel/regdfa/internal/alphabet"
)

// Errors returned when fragments are misused. These are programming
// errors, not problems with the expression being built.
var (
	ErrFragmentConsumed = errors.New("fragment already consumed")
	ErrForeignFragment  = errors.New("fragment does not belong to this builder")
	ErrDanglingFinal    = errors.New("fragment final state has outgoing transitions")
)

// Fragment is a sub-automaton with one start and one final state. It only
// holds indices into its Builder's arena. Passing a fragment to a
// combinator consumes it; the returned fragment owns all operand states.
type Fragment struct {
	id    int
	Start StateID
	Final StateID
}

type node struct {
	out     []Transition
	removed bool // merged away by concatenation
}

// Builder is the state arena for one construction. Combinators rewire
// indices; nothing outside the arena refers to states until Build.
type Builder struct {
	nodes    []node
	consumed []bool // consumed[id-1]; the zero Fragment is never valid
}

// NewBuilder returns an empty arena.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) newState() StateID {
	b.nodes = append(b.nodes, node{})
	return StateID(len(b.nodes) - 1)
}

func (b *Builder) newFragment(start, final StateID) Fragment {
	b.consumed = append(b.consumed, false)
	return Fragment{id: len(b.consumed), Start: start, Final: final}
}

// take marks every operand as consumed, failing if any was consumed before
// or if the same fragment appears twice.
func (b *Builder) take(frags ...Fragment) error {
	for i, f := range frags {
		if f.id < 1 || f.id > len(b.consumed) {
			return ErrForeignFragment
		}
		if b.consumed[f.id-1] {
			return fmt.Errorf("%w: fragment %d", ErrFragmentConsumed, f.id)
		}
		for _, g := range frags[:i] {
			if g.id == f.id {
				return fmt.Errorf("%w: fragment %d used twice", ErrFragmentConsumed, f.id)
			}
		}
	}
	for _, f := range frags {
		if b.outDegree(f.Final) > 0 {
			return fmt.Errorf("%w: fragment %d", ErrDanglingFinal, f.id)
		}
	}
	for _, f := range frags {
		b.consumed[f.id-1] = true
	}
	return nil
}

func (b *Builder) outDegree(id StateID) int {
	n := 0
	for _, t := range b.nodes[id].out {
		n += len(t.To)
	}
	return n
}

func (b *Builder) addEdge(from StateID, sym rune, to StateID) {
	out := b.nodes[from].out
	for i := range out {
		if out[i].Symbol != sym {
			continue
		}
		for _, existing := range out[i].To {
			if existing == to {
				return
			}
		}
		out[i].To = append(out[i].To, to)
		return
	}
	b.nodes[from].out = append(out, Transition{Symbol: sym, To: []StateID{to}})
}

func (b *Builder) epsilon(from, to StateID) {
	b.addEdge(from, alphabet.Epsilon, to)
}

// Basic returns start --sym--> final.
func (b *Builder) Basic(sym rune) Fragment {
	start := b.newState()
	final := b.newState()
	b.addEdge(start, sym, final)
	return b.newFragment(start, final)
}

// Concatenate redirects every transition into first's final state to
// second's start state. The result starts at first's start and ends at
// second's final; first's final state is discarded.
func (b *Builder) Concatenate(first, second Fragment) (Fragment, error) {
	if err := b.take(first, second); err != nil {
		return Fragment{}, err
	}

	for i := range b.nodes {
		if b.nodes[i].removed {
			continue
		}
		for _, t := range b.nodes[i].out {
			for j, to := range t.To {
				if to == first.Final {
					t.To[j] = second.Start
				}
			}
		}
	}
	b.nodes[first.Final].removed = true

	return b.newFragment(first.Start, second.Final), nil
}

// Alternate adds a new start with epsilon edges to both operands and a new
// final reached by epsilon from both operand finals.
func (b *Builder) Alternate(first, second Fragment) (Fragment, error) {
	if err := b.take(first, second); err != nil {
		return Fragment{}, err
	}

	start := b.newState()
	final := b.newState()
	b.epsilon(start, first.Start)
	b.epsilon(start, second.Start)
	b.epsilon(first.Final, final)
	b.epsilon(second.Final, final)

	return b.newFragment(start, final), nil
}

// ZeroOrMore wraps f for the * operator: the wrapper start may skip straight
// to the wrapper final or enter f, and f's final loops back to f's start.
func (b *Builder) ZeroOrMore(f Fragment) (Fragment, error) {
	return b.repeat(f, true)
}

// OneOrMore is ZeroOrMore without the skip edge, so f is traversed at least once.
func (b *Builder) OneOrMore(f Fragment) (Fragment, error) {
	return b.repeat(f, false)
}

func (b *Builder) repeat(f Fragment, allowEmpty bool) (Fragment, error) {
	if err := b.take(f); err != nil {
		return Fragment{}, err
	}

	start := b.newState()
	final := b.newState()
	if allowEmpty {
		b.epsilon(start, final)
	}
	b.epsilon(start, f.Start)
	b.epsilon(f.Final, f.Start)
	b.epsilon(f.Final, final)

	return b.newFragment(start, final), nil
}

// ZeroOrOne adds an epsilon edge from f's start to f's final and reuses
// both states.
func (b *Builder) ZeroOrOne(f Fragment) (Fragment, error) {
	if err := b.take(f); err != nil {
		return Fragment{}, err
	}

	b.epsilon(f.Start, f.Final)
	return b.newFragment(f.Start, f.Final), nil
}

// States returns the arena states of f in breadth-first order from its
// start. The final state is always included.
func (b *Builder) States(f Fragment) []StateID {
	seen := map[StateID]bool{f.Start: true}
	order := []StateID{f.Start}
	for i := 0; i < len(order); i++ {
		for _, t := range b.nodes[order[i]].out {
			for _, to := range t.To {
				if !seen[to] {
					seen[to] = true
					order = append(order, to)
				}
			}
		}
	}
	if !seen[f.Final] {
		order = append(order, f.Final)
	}
	return order
}

// Build consumes f and produces a compact NFA. States are renumbered in
// breadth-first order from the start; the start is labelled S, the final F,
// and every other state takes the next label from a fresh Labeler.
func (b *Builder) Build(f Fragment, alpha alphabet.Alphabet) (*NFA, error) {
	if err := b.take(f); err != nil {
		return nil, err
	}

	order := b.States(f)
	remap := make(map[StateID]StateID, len(order))
	for newID, oldID := range order {
		remap[oldID] = StateID(newID)
	}

	labels := NewLabeler()
	nfa := &NFA{
		States:   make([]State, len(order)),
		Start:    0,
		Final:    remap[f.Final],
		Alphabet: alpha,
	}
	for newID, oldID := range order {
		s := State{ID: StateID(newID)}
		switch oldID {
		case f.Start:
			s.Label = StartLabel
		case f.Final:
			s.Label = FinalLabel
		default:
			s.Label = labels.Next()
		}
		for _, t := range b.nodes[oldID].out {
			to := make([]StateID, len(t.To))
			for i, dst := range t.To {
				to[i] = remap[dst]
			}
			s.Transitions = append(s.Transitions, Transition{Symbol: t.Symbol, To: to})
		}
		nfa.States[newID] = s
	}

	return nfa, nil
}
