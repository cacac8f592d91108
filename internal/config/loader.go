package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/KromDaniel/regdfa/internal/codegen"
	"github.com/KromDaniel/regdfa/internal/ctxlog"
)

// fileRoot is the top-level shape of a batch file.
type fileRoot struct {
	Expressions []*expressionBlock `hcl:"expression,block"`
}

type expressionBlock struct {
	Name    string  `hcl:"name,label"`
	Pattern string  `hcl:"pattern"`
	Package *string `hcl:"package,optional"`
	Output  *string `hcl:"output,optional"`
}

// LoadFile reads and decodes the batch file at path.
func LoadFile(ctx context.Context, path string, vars map[string]string) (*Batch, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading batch file %s: %w", path, err)
	}
	return Parse(ctx, src, path, vars)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string, vars map[string]string) (*Batch, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing batch file.", "file", filename, "vars", len(vars))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(vars), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	batch := &Batch{}
	seen := make(map[string]struct{}, len(root.Expressions))
	for _, block := range root.Expressions {
		if _, dup := seen[block.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate expression %q", filename, block.Name)
		}
		seen[block.Name] = struct{}{}

		entry, err := translate(block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		batch.Entries = append(batch.Entries, entry)
	}

	logger.Debug("Batch file loaded.", "file", filename, "expressions", len(batch.Entries))
	return batch, nil
}

func translate(block *expressionBlock) (Entry, error) {
	entry := Entry{
		Name:    block.Name,
		Pattern: block.Pattern,
		Package: DefaultPackage,
	}
	if block.Package != nil && *block.Package != "" {
		entry.Package = *block.Package
	}
	if block.Output != nil {
		entry.Output = *block.Output
	}
	if entry.Output != "" {
		if !codegen.ValidName(entry.Name) {
			return Entry{}, fmt.Errorf("expression %q: name must be a Go identifier to generate code", entry.Name)
		}
		if !codegen.ValidName(entry.Package) {
			return Entry{}, fmt.Errorf("expression %q: invalid package %q", entry.Name, entry.Package)
		}
	}
	return entry, nil
}

// evalContext exposes vars as the `var` object.
func evalContext(vars map[string]string) *hcl.EvalContext {
	values := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		values[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(values),
		},
	}
}
