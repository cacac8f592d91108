package compiler

import (
	"errors"
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/regdfa/internal/codegen"
	"github.com/KromDaniel/regdfa/internal/syntax"
)

// ErrNoOutputFile is returned by Generate when no destination was configured.
var ErrNoOutputFile = errors.New("no output file configured")

// Generate builds the automata if needed and writes the DFA tables to the
// configured output file.
func (c *Compiler) Generate() error {
	if c.config.OutputFile == "" {
		return ErrNoOutputFile
	}
	f, err := c.file()
	if err != nil {
		return err
	}
	c.logger.Log("Writing %s", c.config.OutputFile)
	return f.Save(c.config.OutputFile)
}

// GenerateTo renders the generated file to w.
func (c *Compiler) GenerateTo(w io.Writer) error {
	f, err := c.file()
	if err != nil {
		return err
	}
	return f.Render(w)
}

func (c *Compiler) file() (*jen.File, error) {
	if !codegen.ValidName(c.config.Name) {
		return nil, fmt.Errorf("invalid name %q: must be a Go identifier starting with a letter", c.config.Name)
	}
	if !codegen.ValidName(c.config.Package) {
		return nil, fmt.Errorf("invalid package %q", c.config.Package)
	}
	if c.result == nil || c.result.Expression != syntax.StripSpace(c.config.Expression) {
		if _, err := c.Build(); err != nil {
			return nil, err
		}
	}

	c.logger.Section("Code Generation")
	dfa := c.result.DFA
	name := func(suffix string) string { return codegen.TableName(c.config.Name, suffix) }

	f := jen.NewFile(c.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by regdfa for expression: %s; DO NOT EDIT.", c.result.Expression))

	f.Comment(name(codegen.ExpressionSuffix) + " is the expression the tables were built from.")
	f.Const().Id(name(codegen.ExpressionSuffix)).Op("=").Lit(c.result.Expression)
	f.Line()

	symbols := dfa.Alphabet.Symbols()
	alpha := make([]jen.Code, len(symbols))
	for i, r := range symbols {
		alpha[i] = jen.LitRune(r)
	}
	f.Comment(name(codegen.AlphabetSuffix) + " holds the input symbols in column order.")
	f.Var().Id(name(codegen.AlphabetSuffix)).Op("=").Index(jen.Op("...")).Rune().Values(alpha...)
	f.Line()

	dead := codegen.NoState
	if d := dfa.Dead(); d != nil {
		dead = d.Index
	}
	f.Const().Defs(
		jen.Id(name(codegen.StartSuffix)).Op("=").Lit(dfa.Start),
		jen.Id(name(codegen.DeadSuffix)).Op("=").Lit(dead),
	)
	f.Line()

	labels := make([]jen.Code, len(dfa.States))
	accepting := make([]jen.Code, len(dfa.States))
	rows := make([]jen.Code, len(dfa.States))
	for i, s := range dfa.States {
		labels[i] = jen.Lit(s.Label)
		accepting[i] = jen.Lit(s.Final)
		row := make([]jen.Code, len(s.Transitions))
		for j, t := range s.Transitions {
			row[j] = jen.Lit(t.To)
		}
		rows[i] = jen.Values(row...)
	}
	f.Var().Id(name(codegen.LabelsSuffix)).Op("=").Index(jen.Op("...")).String().Values(labels...)
	f.Line()
	f.Var().Id(name(codegen.AcceptingSuffix)).Op("=").Index(jen.Op("...")).Bool().Values(accepting...)
	f.Line()
	f.Comment(name(codegen.TransitionsSuffix) + " is indexed by state, then by alphabet column.")
	f.Var().Id(name(codegen.TransitionsSuffix)).Op("=").Index(jen.Op("...")).Index(jen.Lit(len(symbols))).Int().Values(rows...)

	c.logger.Log("Generated %d states over %d symbols", len(dfa.States), len(symbols))
	return f, nil
}
