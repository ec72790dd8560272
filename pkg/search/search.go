// Package search compiles advanced-search expressions into record
// predicates. Expressions use expr-lang syntax and see one record's fields
// as variables, e.g.
//
//	dangerLevel >= 7 && cellBlock == "A"
//	"riddle" in lower(notes)
//
// Records expose their fields through an Env() map; field names follow the
// JSON field names of the API.
package search

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

// Enver is satisfied by record types that can expose their fields to an
// expression environment.
type Enver interface {
	Env() map[string]any
}

// Query is a compiled search expression.
type Query struct {
	src  string
	prog *vm.Program
}

// Compile parses and compiles a search expression. The expression must
// evaluate to a boolean. Compilation errors surface as validation errors so
// the request layer maps them to a 400.
func Compile(src string) (*Query, error) {
	if src == "" {
		return nil, &roster.ValidationError{Field: "q", Message: "search expression is required"}
	}
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, &roster.ValidationError{Field: "q", Message: fmt.Sprintf("invalid search expression: %v", err)}
	}
	return &Query{src: src, prog: prog}, nil
}

// Source returns the original expression text.
func (q *Query) Source() string {
	return q.src
}

// Match evaluates the query against one record.
func (q *Query) Match(rec Enver) (bool, error) {
	out, err := expr.Run(q.prog, rec.Env())
	if err != nil {
		return false, &roster.ValidationError{Field: "q", Message: fmt.Sprintf("eval %q: %v", q.src, err)}
	}
	matched, ok := out.(bool)
	if !ok {
		return false, &roster.ValidationError{Field: "q", Message: "search expression must evaluate to a boolean"}
	}
	return matched, nil
}

// Predicate adapts the query to the collection Select signature. Evaluation
// errors mark the record as non-matching and are reported through errOut,
// so one bad record does not fail the whole scan.
func Predicate[T Enver](q *Query, errOut *error) func(T) bool {
	return func(rec T) bool {
		matched, err := q.Match(rec)
		if err != nil && *errOut == nil {
			*errOut = err
		}
		return matched
	}
}
