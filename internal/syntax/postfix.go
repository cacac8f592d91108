// Package syntax validates restricted regular expressions and converts them
// from infix to postfix notation.
package syntax

import (
	"strings"
	"unicode"

	"github.com/KromDaniel/regdfa/internal/alphabet"
)

// Kind classifies a postfix token.
type Kind int

const (
	KindSymbol Kind = iota // input symbol
	KindUnary              // * + ?
	KindBinary             // . |
)

// Token is one element of a postfix sequence.
type Token struct {
	Kind  Kind
	Value rune
	Pos   int // byte offset in the stripped expression
}

func (t Token) String() string {
	return string(t.Value)
}

// Postfix is the result of a successful conversion.
type Postfix struct {
	Expression string            // input with whitespace removed
	Tokens     []Token           // postfix order
	Alphabet   alphabet.Alphabet // distinct symbols in order of appearance
	Tree       *Expression       // structural parse of Expression
}

// String renders the token queue, e.g. "ab.c|".
func (p *Postfix) String() string {
	return Format(p.Tokens)
}

// Format renders tokens as a compact string.
func Format(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteRune(t.Value)
	}
	return sb.String()
}

// StripSpace removes every whitespace rune from expr.
func StripSpace(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}

// ToPostfix validates expr and converts it to postfix order.
//
// Checks run in this order: the alphabet limit, the characters themselves,
// parenthesis balance, then the structural grammar. Only an expression that
// passes all of them reaches the shunting-yard conversion.
func ToPostfix(expr string) (*Postfix, error) {
	stripped := StripSpace(expr)

	alpha := alphabet.FromExpression(stripped)
	if !alpha.Valid() {
		return nil, newError(ErrInvalidAlphabet, stripped, -1,
			"found %d distinct symbols %s, at most %d allowed", alpha.Len(), alpha, alphabet.MaxSymbols)
	}

	for i, r := range stripped {
		if alphabet.IsOperator(r) || alphabet.IsParen(r) {
			continue
		}
		if !alphabet.IsSymbol(r) {
			return nil, newError(ErrMalformedExpression, stripped, i, "%q cannot be used as an input symbol", r)
		}
	}

	if err := checkBalance(stripped); err != nil {
		return nil, err
	}

	tree, err := Parse(stripped)
	if err != nil {
		return nil, err
	}

	tokens, err := shunt(stripped)
	if err != nil {
		return nil, err
	}

	return &Postfix{
		Expression: stripped,
		Tokens:     tokens,
		Alphabet:   alpha,
		Tree:       tree,
	}, nil
}

// checkBalance reports the first ')' without a matching '(' or the last
// unmatched '('.
func checkBalance(expr string) error {
	var open []int
	for i, r := range expr {
		switch r {
		case alphabet.LeftParen:
			open = append(open, i)
		case alphabet.RightParen:
			if len(open) == 0 {
				return newError(ErrUnbalancedParentheses, expr, i, "')' has no matching '('")
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return newError(ErrUnbalancedParentheses, expr, open[len(open)-1], "'(' is never closed")
	}
	return nil
}

// shunt is Dijkstra's shunting-yard algorithm over the operator table.
// Binary operators pass through the stack; postfix unary operators already
// follow their operand and go straight to the output.
func shunt(expr string) ([]Token, error) {
	var (
		output []Token
		stack  []Token
	)

	for i, r := range expr {
		switch {
		case alphabet.IsUnary(r):
			output = append(output, Token{Kind: KindUnary, Value: r, Pos: i})

		case alphabet.IsOperator(r):
			op, _ := alphabet.Lookup(r)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Value == alphabet.LeftParen {
					break
				}
				topOp, _ := alphabet.Lookup(top.Value)
				if !(op.LeftAssociate && op.Precedence <= topOp.Precedence) &&
					!(!op.LeftAssociate && op.Precedence < topOp.Precedence) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, Token{Kind: KindBinary, Value: r, Pos: i})

		case r == alphabet.LeftParen:
			stack = append(stack, Token{Value: r, Pos: i})

		case r == alphabet.RightParen:
			for {
				if len(stack) == 0 {
					return nil, newError(ErrUnbalancedParentheses, expr, i, "')' has no matching '('")
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Value == alphabet.LeftParen {
					break
				}
				output = append(output, top)
			}

		default:
			output = append(output, Token{Kind: KindSymbol, Value: r, Pos: i})
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if alphabet.IsParen(top.Value) {
			return nil, newError(ErrUnbalancedParentheses, expr, top.Pos, "'(' is never closed")
		}
		output = append(output, top)
	}

	return output, nil
}
