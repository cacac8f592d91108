package syntax

import (
	"errors"
	"fmt"
)

// Error kinds reported while validating and converting an expression.
// They are recoverable: the caller is expected to ask for a new expression.
var (
	ErrInvalidAlphabet       = errors.New("invalid alphabet")
	ErrMalformedExpression   = errors.New("malformed expression")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
)

// Error describes why an expression was rejected.
type Error struct {
	Kind       error  // one of the Err* sentinels above
	Expression string // expression after whitespace removal
	Pos        int    // byte offset of the offending character, -1 if unknown
	Msg        string
}

func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%v: %s (position %d in %q)", e.Kind, e.Msg, e.Pos, e.Expression)
	}
	return fmt.Sprintf("%v: %s (in %q)", e.Kind, e.Msg, e.Expression)
}

// Unwrap lets errors.Is match the sentinel kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, expr string, pos int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:       kind,
		Expression: expr,
		Pos:        pos,
		Msg:        fmt.Sprintf(format, args...),
	}
}
