package regdfa

import (
	"github.com/KromDaniel/regdfa/internal/compiler"
)

// AnalysisResult summarizes an expression and the automata built from it.
type AnalysisResult = compiler.AnalysisResult

// Analyze builds the automata for expr and reports its structure without
// generating code.
//
// FeatureLabels are sorted alphabetically for deterministic comparison.
//
// Example:
//
//	result, err := regdfa.Analyze("(a|b)*.a")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FeatureLabels) // [Alternation Concatenation Grouping ZeroOrMore]
func Analyze(expr string) (*AnalysisResult, error) {
	return compiler.AnalyzeExpression(expr)
}
