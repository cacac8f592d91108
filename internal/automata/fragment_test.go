package automata

import (
	"errors"
	"testing"

	"github.com/KromDaniel/regdfa/internal/alphabet"
	"github.com/google/go-cmp/cmp"
)

func TestBasicFragment(t *testing.T) {
	b := NewBuilder()
	f := b.Basic('a')

	nfa, err := b.Build(f, alphabet.New('a'))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if nfa.Len() != 2 {
		t.Fatalf("states = %d, want 2", nfa.Len())
	}
	start := nfa.State(nfa.Start)
	if diff := cmp.Diff([]StateID{nfa.Final}, start.Targets('a')); diff != "" {
		t.Errorf("start transitions on a (-want +got):\n%s", diff)
	}
	if nfa.State(nfa.Final).OutDegree() != 0 {
		t.Error("final state must have no outgoing transitions")
	}
}

func TestConcatenateRedirectsFinal(t *testing.T) {
	b := NewBuilder()
	a := b.Basic('a')
	c := b.Basic('b')
	aFinal, bStart := a.Final, c.Start

	f, err := b.Concatenate(a, c)
	if err != nil {
		t.Fatalf("Concatenate: %v", err)
	}
	if f.Start != a.Start || f.Final != c.Final {
		t.Errorf("fragment = %+v, want start %d final %d", f, a.Start, c.Final)
	}

	for _, id := range b.States(f) {
		if id == aFinal {
			t.Fatalf("first operand's final state is still reachable")
		}
	}
	if diff := cmp.Diff([]StateID{bStart}, b.nodes[a.Start].out[0].To); diff != "" {
		t.Errorf("redirected transition (-want +got):\n%s", diff)
	}
}

func TestAlternateShape(t *testing.T) {
	nfa := buildNFA(t, "a|b")
	if nfa.Len() != 6 {
		t.Fatalf("states = %d, want 6\n%s", nfa.Len(), nfa)
	}

	start := nfa.State(nfa.Start)
	branches := start.Targets(alphabet.Epsilon)
	if len(branches) != 2 {
		t.Fatalf("start epsilon branches = %d, want 2", len(branches))
	}
	for _, br := range branches {
		s := nfa.State(br)
		if len(s.Transitions) != 1 || len(s.Transitions[0].To) != 1 {
			t.Fatalf("branch %s should have a single literal edge", s.Label)
		}
		mid := nfa.State(s.Transitions[0].To[0])
		if diff := cmp.Diff([]StateID{nfa.Final}, mid.Targets(alphabet.Epsilon)); diff != "" {
			t.Errorf("branch %s does not join the shared final (-want +got):\n%s", s.Label, diff)
		}
	}
}

func TestRepeatShapes(t *testing.T) {
	tests := []struct {
		expr         string
		startSkips   bool // start has epsilon edge to final
		wantStates   int
		wantEpsilons int
	}{
		{"a*", true, 4, 4},
		{"a+", false, 4, 3},
		{"a?", true, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			nfa := buildNFA(t, tt.expr)
			if nfa.Len() != tt.wantStates {
				t.Errorf("states = %d, want %d\n%s", nfa.Len(), tt.wantStates, nfa)
			}

			epsilons := 0
			for i := range nfa.States {
				epsilons += len(nfa.States[i].Targets(alphabet.Epsilon))
			}
			if epsilons != tt.wantEpsilons {
				t.Errorf("epsilon edges = %d, want %d", epsilons, tt.wantEpsilons)
			}

			skips := false
			for _, to := range nfa.State(nfa.Start).Targets(alphabet.Epsilon) {
				if to == nfa.Final {
					skips = true
				}
			}
			if skips != tt.startSkips {
				t.Errorf("start skips to final = %v, want %v", skips, tt.startSkips)
			}
		})
	}
}

func TestFinalHasNoOutgoingEdges(t *testing.T) {
	for _, expr := range []string{"a", "a.b", "a|b", "a*", "a+", "a?", "(a.b)*|c?", "((a|b)+.c)?"} {
		nfa := buildNFA(t, expr)
		if deg := nfa.State(nfa.Final).OutDegree(); deg != 0 {
			t.Errorf("%q: final out-degree = %d, want 0", expr, deg)
		}
	}
}

func TestFragmentReuseRejected(t *testing.T) {
	b := NewBuilder()
	a := b.Basic('a')
	if _, err := b.ZeroOrMore(a); err != nil {
		t.Fatalf("ZeroOrMore: %v", err)
	}

	if _, err := b.OneOrMore(a); !errors.Is(err, ErrFragmentConsumed) {
		t.Errorf("reusing consumed fragment: err = %v, want %v", err, ErrFragmentConsumed)
	}

	c := b.Basic('c')
	if _, err := b.Concatenate(c, c); !errors.Is(err, ErrFragmentConsumed) {
		t.Errorf("same fragment twice: err = %v, want %v", err, ErrFragmentConsumed)
	}

	if _, err := b.ZeroOrOne(Fragment{}); !errors.Is(err, ErrForeignFragment) {
		t.Errorf("zero fragment: err = %v, want %v", err, ErrForeignFragment)
	}
}

func TestBuildLabels(t *testing.T) {
	nfa := buildNFA(t, "a.b")

	var labels []string
	for i := range nfa.States {
		labels = append(labels, nfa.States[i].Label)
	}
	if diff := cmp.Diff([]string{"S", "A", "F"}, labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if nfa.Start != 0 {
		t.Errorf("start = %d, want 0", nfa.Start)
	}
}
