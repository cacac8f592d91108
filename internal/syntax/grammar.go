package syntax

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The structural grammar accepted by the converter:
//
//	expression    = concatenation { "|" concatenation }
//	concatenation = repetition { "." repetition }
//	repetition    = atom { "*" | "+" | "?" }
//	atom          = symbol | "(" expression ")"
//
// Concatenation is always explicit.

// Expression is an alternation of one or more concatenations.
type Expression struct {
	Alternatives []*Concatenation `parser:"@@ ( '|' @@ )*"`
}

// Concatenation is a '.'-separated sequence of repetitions.
type Concatenation struct {
	Terms []*Repetition `parser:"@@ ( '.' @@ )*"`
}

// Repetition is an atom followed by zero or more postfix operators.
type Repetition struct {
	Atom      *Atom    `parser:"@@"`
	Operators []string `parser:"@( '*' | '+' | '?' )*"`
}

// Atom is a single input symbol or a parenthesized expression.
type Atom struct {
	Symbol *string     `parser:"  @Symbol"`
	Group  *Expression `parser:"| '(' @@ ')'"`
}

var expressionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Operator", Pattern: `[*+?.|()]`},
	{Name: "Symbol", Pattern: `[^\s*+?.|()]`},
})

var expressionParser = participle.MustBuild[Expression](
	participle.Lexer(expressionLexer),
	participle.Elide("Whitespace"),
)

// Parse checks expr against the structural grammar and returns its tree.
// Parenthesis balance and the alphabet limit are not checked here.
func Parse(expr string) (*Expression, error) {
	ast, err := expressionParser.ParseString("", expr)
	if err != nil {
		pos := -1
		var perr participle.Error
		if errors.As(err, &perr) {
			pos = perr.Position().Offset
		}
		return nil, newError(ErrMalformedExpression, expr, pos, "%s", describeParseError(err))
	}
	return ast, nil
}

func describeParseError(err error) string {
	var perr participle.Error
	if errors.As(err, &perr) {
		return perr.Message()
	}
	return err.Error()
}

// Walk calls visit for every repetition in the tree, outermost first.
// depth counts the enclosing groups.
func (e *Expression) Walk(visit func(r *Repetition, depth int)) {
	e.walk(visit, 0)
}

func (e *Expression) walk(visit func(r *Repetition, depth int), depth int) {
	for _, c := range e.Alternatives {
		for _, r := range c.Terms {
			visit(r, depth)
			if r.Atom.Group != nil {
				r.Atom.Group.walk(visit, depth+1)
			}
		}
	}
}
