// Package alphabet separates operator characters from input symbols and
// enforces the limit on the number of distinct input symbols.
package alphabet

import (
	"strings"
	"unicode"
)

// MaxSymbols is the largest number of distinct input symbols an expression may use.
const MaxSymbols = 5

// Epsilon is the reserved symbol labelling transitions that consume no input.
const Epsilon = 'ε'

// Operator characters.
const (
	Star        = '*'
	Plus        = '+'
	Optional    = '?'
	Concat      = '.'
	Alternation = '|'
	LeftParen   = '('
	RightParen  = ')'
)

// Operator describes how the infix converter treats an operator character.
type Operator struct {
	Char          rune
	Unary         bool
	Precedence    int
	LeftAssociate bool
}

// operators holds every character with a meaning in the expression grammar.
// Unary postfix operators bind tighter than concatenation, which binds
// tighter than alternation.
var operators = map[rune]Operator{
	Star:        {Char: Star, Unary: true, Precedence: 3},
	Plus:        {Char: Plus, Unary: true, Precedence: 3},
	Optional:    {Char: Optional, Unary: true, Precedence: 3},
	Concat:      {Char: Concat, Precedence: 2, LeftAssociate: true},
	Alternation: {Char: Alternation, Precedence: 1, LeftAssociate: true},
}

// Lookup returns the operator for r. Parentheses are not operators.
func Lookup(r rune) (Operator, bool) {
	op, ok := operators[r]
	return op, ok
}

// IsOperator reports whether r is one of * + ? . |
func IsOperator(r rune) bool {
	_, ok := operators[r]
	return ok
}

// IsUnary reports whether r is a postfix repetition operator.
func IsUnary(r rune) bool {
	return operators[r].Unary
}

// IsParen reports whether r is a grouping character.
func IsParen(r rune) bool {
	return r == LeftParen || r == RightParen
}

// IsSymbol reports whether r may appear as an input symbol.
func IsSymbol(r rune) bool {
	if IsOperator(r) || IsParen(r) || r == Epsilon {
		return false
	}
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// Alphabet is the ordered set of input symbols registered for one build.
// Symbols keep the order of their first appearance in the expression.
type Alphabet struct {
	symbols []rune
}

// New builds an alphabet from explicit symbols, dropping duplicates.
func New(symbols ...rune) Alphabet {
	var a Alphabet
	for _, r := range symbols {
		if !a.Contains(r) {
			a.symbols = append(a.symbols, r)
		}
	}
	return a
}

// FromExpression collects the distinct non-operator characters of expr.
// Whitespace and parentheses are ignored. The result may exceed MaxSymbols;
// callers check Valid.
func FromExpression(expr string) Alphabet {
	var a Alphabet
	for _, r := range expr {
		if IsOperator(r) || IsParen(r) || unicode.IsSpace(r) {
			continue
		}
		if !a.Contains(r) {
			a.symbols = append(a.symbols, r)
		}
	}
	return a
}

// Valid reports whether the alphabet respects MaxSymbols.
func (a Alphabet) Valid() bool {
	return len(a.symbols) <= MaxSymbols
}

// Len returns the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the symbols in registration order.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Index returns the column of r, or -1.
func (a Alphabet) Index(r rune) int {
	for i, s := range a.symbols {
		if s == r {
			return i
		}
	}
	return -1
}

// Contains reports whether r is registered.
func (a Alphabet) Contains(r rune) bool {
	return a.Index(r) >= 0
}

func (a Alphabet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range a.symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('}')
	return sb.String()
}
