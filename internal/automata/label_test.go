package automata

import (
	"strings"
	"testing"
)

func TestLabelerSequence(t *testing.T) {
	l := NewLabeler()

	seen := make(map[string]bool)
	var first []string
	for i := 0; i < len(labelLetters); i++ {
		label := l.Next()
		if label == StartLabel || label == FinalLabel || label == DeadLabel {
			t.Fatalf("labeler handed out reserved label %q", label)
		}
		if seen[label] {
			t.Fatalf("duplicate label %q", label)
		}
		seen[label] = true
		if i < 6 {
			first = append(first, label)
		}
	}

	if got := strings.Join(first, ""); got != "ABCDEG" {
		t.Errorf("first labels = %q, want %q", got, "ABCDEG")
	}
	if len(seen) != 50 {
		t.Errorf("single-letter labels = %d, want 50", len(seen))
	}
	if got := l.Next(); got != "A1" {
		t.Errorf("label after letters run out = %q, want A1", got)
	}
}

func TestLabelerReset(t *testing.T) {
	l := NewLabeler()
	l.Next()
	l.Next()
	l.Reset()
	if got := l.Next(); got != "A" {
		t.Errorf("after Reset Next() = %q, want A", got)
	}
}

func TestLabelsDoNotLeakBetweenBuilds(t *testing.T) {
	first := buildNFA(t, "a|b")
	second := buildNFA(t, "a|b")
	if first.String() != second.String() {
		t.Errorf("identical expressions produced different NFAs:\n%s\n%s", first, second)
	}

	d1 := Determinize(first)
	Determinize(buildNFA(t, "(a.b)*|c"))
	d2 := Determinize(second)
	if d1.String() != d2.String() {
		t.Errorf("DFA labels leaked between builds:\n%s\n%s", d1, d2)
	}
}
