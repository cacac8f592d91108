package automata

import (
	"math/rand"
	"testing"

	"github.com/KromDaniel/regdfa/internal/alphabet"
	"github.com/google/go-cmp/cmp"
)

func TestNewStateSet(t *testing.T) {
	s := NewStateSet(3, 1, 3, 2, 1)
	if diff := cmp.Diff(StateSet{1, 2, 3}, s); diff != "" {
		t.Errorf("NewStateSet (-want +got):\n%s", diff)
	}
	if !s.Contains(2) || s.Contains(4) {
		t.Errorf("Contains gave wrong answers for %v", s)
	}
	if !s.Equal(NewStateSet(2, 3, 1)) {
		t.Error("sets with the same elements must be equal")
	}
	if s.Key() != "1,2,3" {
		t.Errorf("Key() = %q", s.Key())
	}
	if NewStateSet().Key() != "" {
		t.Error("empty set key should be empty")
	}
}

func TestClosureOfStar(t *testing.T) {
	nfa := buildNFA(t, "a*")

	closure := nfa.Closure(nfa.Start)
	if !closure.Contains(nfa.Start) {
		t.Error("closure must contain the state itself")
	}
	if !closure.Contains(nfa.Final) {
		t.Error("closure of a* start must reach the final state")
	}
	if len(closure) != 3 {
		t.Errorf("closure size = %d, want 3 (wrapper start, inner start, final)", len(closure))
	}
}

func TestClosureTerminatesOnEpsilonCycle(t *testing.T) {
	// 0 <-ε-> 1 --a--> 2, built by hand.
	nfa := &NFA{
		States: []State{
			{ID: 0, Label: "S", Transitions: []Transition{{Symbol: alphabet.Epsilon, To: []StateID{1}}}},
			{ID: 1, Label: "A", Transitions: []Transition{
				{Symbol: alphabet.Epsilon, To: []StateID{0}},
				{Symbol: 'a', To: []StateID{2}},
			}},
			{ID: 2, Label: "F"},
		},
		Start:    0,
		Final:    2,
		Alphabet: alphabet.New('a'),
	}

	if diff := cmp.Diff(StateSet{0, 1}, nfa.Closure(0)); diff != "" {
		t.Errorf("Closure(0) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(StateSet{0, 1}, nfa.Closure(1)); diff != "" {
		t.Errorf("Closure(1) (-want +got):\n%s", diff)
	}

	d := Determinize(nfa)
	if len(d.LiveStates()) != 2 {
		t.Errorf("live states = %d, want 2\n%s", len(d.LiveStates()), d)
	}
}

func TestClosureCycleFromConstruction(t *testing.T) {
	// (a?)* links the inner start and final by epsilon in both directions.
	nfa := buildNFA(t, "(a?)*")
	d := Determinize(nfa)
	if !d.StartState().Final {
		t.Error("(a?)* must accept the empty string")
	}
	for _, in := range []string{"", "a", "aaaa"} {
		if !dfaAccepts(d, []rune(in)) {
			t.Errorf("(a?)* rejects %q", in)
		}
	}
}

func TestClosureIsFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, expr := range []string{"a", "a|b", "(a|b)*.a.b.b", "((a.b)?|c+)*", "(a*|b?)+.(c|d.e)*"} {
		nfa := buildNFA(t, expr)

		for id := range nfa.States {
			once := nfa.Closure(StateID(id))
			twice := nfa.Closure(once...)
			if !once.Equal(twice) {
				t.Errorf("%q: closure(closure(%d)) = %v, closure(%d) = %v", expr, id, twice, id, once)
			}
		}

		for i := 0; i < 20; i++ {
			var ids []StateID
			for id := range nfa.States {
				if rng.Intn(2) == 0 {
					ids = append(ids, StateID(id))
				}
			}
			once := nfa.Closure(ids...)
			if twice := nfa.Closure(once...); !once.Equal(twice) {
				t.Errorf("%q: closure not idempotent for %v", expr, ids)
			}
		}
	}
}

func TestMoveIgnoresEpsilon(t *testing.T) {
	nfa := buildNFA(t, "a|b")
	start := nfa.Closure(nfa.Start)

	if moved := nfa.Move(NewStateSet(nfa.Start), 'a'); len(moved) != 0 {
		t.Errorf("Move from bare start on a = %v, want empty", moved)
	}
	if moved := nfa.Move(start, 'a'); len(moved) != 1 {
		t.Errorf("Move from closed start on a = %v, want one state", moved)
	}
}
