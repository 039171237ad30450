package graph

import (
	"github.com/cockroachdb/errors"
	"github.com/google/cel-go/cel"
)

// Filter selects components with a CEL expression over the variables
// root (int), size (int) and members (list of int), e.g. "size >= 3" or
// "5 in members". The empty expression keeps everything.
type Filter struct {
	program cel.Program
}

// NewFilter compiles expr into a component filter.
func NewFilter(expr string) (*Filter, error) {
	if expr == "" {
		return &Filter{}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("root", cel.IntType),
		cel.Variable("size", cel.IntType),
		cel.Variable("members", cel.ListType(cel.IntType)),
	)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, errors.Wrapf(iss.Err(), "invalid filter %q", expr)
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.Newf("filter %q must evaluate to bool, got %s", expr, ast.OutputType())
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, err
	}
	return &Filter{program: program}, nil
}

// Keep reports whether the component passes the filter.
func (f *Filter) Keep(c Component) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	out, _, err := f.program.Eval(map[string]any{
		"root":    c.Root,
		"size":    c.Size,
		"members": c.Members,
	})
	if err != nil {
		return false, err
	}
	keep, ok := out.Value().(bool)
	if !ok {
		return false, errors.Newf("filter returned %T, want bool", out.Value())
	}
	return keep, nil
}
