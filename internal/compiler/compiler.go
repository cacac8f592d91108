// Package compiler runs the expression-to-DFA pipeline: validation,
// infix-to-postfix conversion, Thompson's construction and the subset
// construction.
package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/KromDaniel/regdfa/internal/alphabet"
	"github.com/KromDaniel/regdfa/internal/automata"
	"github.com/KromDaniel/regdfa/internal/syntax"
)

// Config holds the configuration for one build.
type Config struct {
	Expression string
	Name       string       // prefix for generated identifiers
	OutputFile string       // destination of Generate
	Package    string       // package clause of the generated file
	Verbose    bool         // Enable verbose logging of pipeline stages
	Logger     *slog.Logger // optional sink for verbose logging
}

// Result is everything produced by a successful build.
type Result struct {
	Expression string // expression with whitespace removed
	Postfix    string
	Alphabet   alphabet.Alphabet
	Tree       *syntax.Expression
	NFA        *automata.NFA
	DFA        *automata.DFA
}

// Compiler builds automata for a single expression. Every call to Build
// starts from scratch, so results of earlier builds never influence later ones.
type Compiler struct {
	config Config
	logger *Logger
	result *Result
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	logger := NewLogger(config.Verbose)
	if config.Logger != nil {
		logger.SetLogger(config.Logger)
	}
	return &Compiler{
		config: config,
		logger: logger,
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// SetLogOutput redirects verbose logging to w.
func (c *Compiler) SetLogOutput(w io.Writer) {
	c.logger.SetOutput(w)
}

// Build validates the expression and constructs its NFA and DFA.
// Validation failures wrap syntax.ErrInvalidAlphabet,
// syntax.ErrMalformedExpression or syntax.ErrUnbalancedParentheses.
func (c *Compiler) Build() (*Result, error) {
	c.result = nil

	c.logger.Section("Parsing")
	c.logger.Log("Expression: %s", c.config.Expression)

	postfix, err := syntax.ToPostfix(c.config.Expression)
	if err != nil {
		c.logger.Log("Rejected: %v", err)
		return nil, err
	}
	c.logger.Log("Alphabet: %s", postfix.Alphabet)
	c.logger.Log("Postfix: %s", postfix)

	c.logger.Section("Thompson Construction")
	nfa, err := automata.FromPostfix(postfix.Tokens, postfix.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("failed to build NFA: %w", err)
	}
	c.logger.Log("NFA states: %d", nfa.Len())
	c.logger.Log("NFA edges: %d", nfa.EdgeCount())

	c.logger.Section("Subset Construction")
	dfa := automata.Determinize(nfa)
	c.logger.Log("DFA states: %d (live: %d)", len(dfa.States), len(dfa.LiveStates()))
	c.logger.Log("DFA final states: %d", len(dfa.Finals))
	c.logger.Log("Has dead state: %v", dfa.Dead() != nil)

	c.result = &Result{
		Expression: postfix.Expression,
		Postfix:    postfix.String(),
		Alphabet:   postfix.Alphabet,
		Tree:       postfix.Tree,
		NFA:        nfa,
		DFA:        dfa,
	}
	return c.result, nil
}
