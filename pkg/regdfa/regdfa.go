// Package regdfa converts small regular expressions into NFAs and DFAs.
//
// Expressions use explicit concatenation ('.'), alternation ('|'), the postfix
// operators '*', '+' and '?', and parentheses, over at most five distinct
// input symbols.
package regdfa

import (
	"fmt"
	"log/slog"

	"github.com/KromDaniel/regdfa/internal/automata"
	"github.com/KromDaniel/regdfa/internal/compiler"
	"github.com/KromDaniel/regdfa/internal/syntax"
)

// Errors reported for rejected expressions. Use errors.Is to test for them.
var (
	ErrInvalidAlphabet       = syntax.ErrInvalidAlphabet
	ErrMalformedExpression   = syntax.ErrMalformedExpression
	ErrUnbalancedParentheses = syntax.ErrUnbalancedParentheses
)

type (
	// SyntaxError describes a rejected expression and where it failed.
	SyntaxError = syntax.Error

	NFA      = automata.NFA
	State    = automata.State
	StateID  = automata.StateID
	DFA      = automata.DFA
	DFAState = automata.DFAState

	// Result holds every intermediate product of a build.
	Result = compiler.Result
)

// BuildOptions configures BuildWithOptions.
type BuildOptions struct {
	// Expression is the infix expression to convert
	Expression string

	// Verbose logs each pipeline stage
	Verbose bool

	// Logger receives verbose output. Defaults to a text logger on stderr.
	Logger *slog.Logger
}

// Build converts expr into its NFA and DFA.
func Build(expr string) (*NFA, *DFA, error) {
	result, err := BuildWithOptions(BuildOptions{Expression: expr})
	if err != nil {
		return nil, nil, err
	}
	return result.NFA, result.DFA, nil
}

// BuildWithOptions runs the pipeline and returns all intermediate products.
func BuildWithOptions(opts BuildOptions) (*Result, error) {
	return compiler.New(compiler.Config{
		Expression: opts.Expression,
		Verbose:    opts.Verbose,
		Logger:     opts.Logger,
	}).Build()
}

// Options configures Go table generation.
type Options struct {
	// Expression is the infix expression to convert
	Expression string

	// Name is the prefix for generated identifiers (e.g., "Binary" generates "BinaryTransitions")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Verbose logs each pipeline stage
	Verbose bool

	// Logger receives verbose output. Defaults to a text logger on stderr.
	Logger *slog.Logger
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Expression == "" {
		return fmt.Errorf("expression cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate writes a Go file declaring the DFA tables for opts.Expression.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(compiler.Config{
		Expression: opts.Expression,
		Name:       opts.Name,
		Package:    opts.Package,
		Verbose:    opts.Verbose,
		Logger:     opts.Logger,
	})
	c.SetOutputFile(opts.OutputFile)

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
