package automata

import (
	"testing"

	"github.com/KromDaniel/regdfa/internal/syntax"
)

func buildNFA(t *testing.T, expr string) *NFA {
	t.Helper()
	p, err := syntax.ToPostfix(expr)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", expr, err)
	}
	nfa, err := FromPostfix(p.Tokens, p.Alphabet)
	if err != nil {
		t.Fatalf("FromPostfix(%q): %v", expr, err)
	}
	return nfa
}

// nfaAccepts simulates n on input by tracking closed state sets.
func nfaAccepts(n *NFA, input []rune) bool {
	current := n.Closure(n.Start)
	for _, r := range input {
		current = n.Closure(n.Move(current, r)...)
		if len(current) == 0 {
			return false
		}
	}
	return current.Contains(n.Final)
}

// dfaAccepts walks d from its start state.
func dfaAccepts(d *DFA, input []rune) bool {
	s := d.StartState()
	for _, r := range input {
		to, ok := s.Target(r)
		if !ok {
			return false
		}
		s = d.States[to]
	}
	return s.Final
}
