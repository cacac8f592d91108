package compiler

import (
	"sort"

	"github.com/KromDaniel/regdfa/internal/syntax"
)

// AnalysisResult contains the results of expression analysis without code generation.
type AnalysisResult struct {
	// FeatureLabels are derived from expression structure (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels"`

	Symbols string `json:"symbols"`
	Postfix string `json:"postfix"`

	// Detailed analysis info
	NFAStates     int  `json:"nfa_states"`
	NFAEdges      int  `json:"nfa_edges"`
	DFAStates     int  `json:"dfa_states"` // excludes the dead state
	HasDeadState  bool `json:"has_dead_state"`
	AcceptsEmpty  bool `json:"accepts_empty"`
	MaxGroupDepth int  `json:"max_group_depth"`
}

// AnalyzeExpression builds the automata for expr and summarizes them.
// It returns an error if the expression is invalid.
func AnalyzeExpression(expr string) (*AnalysisResult, error) {
	result, err := New(Config{Expression: expr}).Build()
	if err != nil {
		return nil, err
	}
	return analyze(result), nil
}

func analyze(r *Result) *AnalysisResult {
	labels, depth := deriveFeatureLabels(r.Tree)
	return &AnalysisResult{
		FeatureLabels: labels,
		Symbols:       r.Alphabet.String(),
		Postfix:       r.Postfix,
		NFAStates:     r.NFA.Len(),
		NFAEdges:      r.NFA.EdgeCount(),
		DFAStates:     len(r.DFA.LiveStates()),
		HasDeadState:  r.DFA.Dead() != nil,
		AcceptsEmpty:  r.DFA.StartState().Final,
		MaxGroupDepth: depth,
	}
}

// deriveFeatureLabels extracts feature labels from the expression tree.
// Labels are sorted alphabetically.
func deriveFeatureLabels(tree *syntax.Expression) ([]string, int) {
	seen := map[string]bool{}
	maxDepth := 0

	var visitExpr func(e *syntax.Expression)
	visitExpr = func(e *syntax.Expression) {
		if len(e.Alternatives) > 1 {
			seen["Alternation"] = true
		}
		for _, c := range e.Alternatives {
			if len(c.Terms) > 1 {
				seen["Concatenation"] = true
			}
		}
	}
	visitExpr(tree)

	tree.Walk(func(r *syntax.Repetition, depth int) {
		if r.Atom.Group != nil {
			seen["Grouping"] = true
			if depth+1 > maxDepth {
				maxDepth = depth + 1
			}
			visitExpr(r.Atom.Group)
		}
		for _, op := range r.Operators {
			switch op {
			case "*":
				seen["ZeroOrMore"] = true
			case "+":
				seen["OneOrMore"] = true
			case "?":
				seen["Optional"] = true
			}
		}
	})

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	if len(labels) == 0 {
		labels = []string{"Simple"}
	}
	return labels, maxDepth
}
