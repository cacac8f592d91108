package automata

import (
	"fmt"

	"github.com/KromDaniel/regdfa/internal/alphabet"
	"github.com/KromDaniel/regdfa/internal/syntax"
)

// FromPostfix runs Thompson's construction over a postfix token sequence.
// tokens must come from syntax.ToPostfix; they are not validated again,
// so a malformed sequence is reported as ErrMalformedExpression when the
// operand stack underflows or does not end with exactly one fragment.
func FromPostfix(tokens []syntax.Token, alpha alphabet.Alphabet) (*NFA, error) {
	b := NewBuilder()
	var stack []Fragment

	pop := func(tok syntax.Token) (Fragment, error) {
		if len(stack) == 0 {
			return Fragment{}, fmt.Errorf("%w: operator %q at position %d is missing an operand",
				syntax.ErrMalformedExpression, tok.Value, tok.Pos)
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, tok := range tokens {
		var (
			result Fragment
			err    error
		)

		switch tok.Kind {
		case syntax.KindSymbol:
			stack = append(stack, b.Basic(tok.Value))
			continue

		case syntax.KindUnary:
			operand, perr := pop(tok)
			if perr != nil {
				return nil, perr
			}
			result, err = applyUnary(b, tok.Value, operand)

		case syntax.KindBinary:
			right, perr := pop(tok)
			if perr != nil {
				return nil, perr
			}
			left, perr := pop(tok)
			if perr != nil {
				return nil, perr
			}
			result, err = applyBinary(b, tok.Value, left, right)

		default:
			return nil, fmt.Errorf("%w: unexpected token %q at position %d",
				syntax.ErrMalformedExpression, tok.Value, tok.Pos)
		}

		if err != nil {
			return nil, fmt.Errorf("thompson: %q at position %d: %w", tok.Value, tok.Pos, err)
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: postfix %q leaves %d fragments, want 1",
			syntax.ErrMalformedExpression, syntax.Format(tokens), len(stack))
	}

	return b.Build(stack[0], alpha)
}

func applyUnary(b *Builder, op rune, f Fragment) (Fragment, error) {
	switch op {
	case alphabet.Star:
		return b.ZeroOrMore(f)
	case alphabet.Plus:
		return b.OneOrMore(f)
	case alphabet.Optional:
		return b.ZeroOrOne(f)
	}
	return Fragment{}, fmt.Errorf("%w: %q is not a unary operator", syntax.ErrMalformedExpression, op)
}

func applyBinary(b *Builder, op rune, left, right Fragment) (Fragment, error) {
	switch op {
	case alphabet.Concat:
		return b.Concatenate(left, right)
	case alphabet.Alternation:
		return b.Alternate(left, right)
	}
	return Fragment{}, fmt.Errorf("%w: %q is not a binary operator", syntax.ErrMalformedExpression, op)
}
