// Package qosvalidate builds profile validation callbacks from CEL
// expressions, so operators can express acceptance rules for overridden
// profiles without writing Go.
package qosvalidate

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/conduitmesh/qospolicy/pkg/qos"
)

// Variables visible to validation expressions. Durations are exposed as
// signed nanosecond counts, matching their parameter representation.
var envOptions = []cel.EnvOption{
	cel.Variable("avoid_namespace_conventions", cel.BoolType),
	cel.Variable("deadline", cel.IntType),
	cel.Variable("durability", cel.StringType),
	cel.Variable("history", cel.StringType),
	cel.Variable("depth", cel.IntType),
	cel.Variable("lifespan", cel.IntType),
	cel.Variable("liveliness", cel.StringType),
	cel.Variable("liveliness_lease_duration", cel.IntType),
	cel.Variable("reliability", cel.StringType),
}

// Compile turns a CEL expression like
//
//	depth >= 1 && reliability == "reliable"
//
// into a validation callback over the final profile. The expression must
// evaluate to a bool. Evaluation errors fail closed: the callback
// returns false.
func Compile(expr string) (func(qos.Profile) bool, error) {
	env, err := cel.NewEnv(envOptions...)
	if err != nil {
		return nil, fmt.Errorf("qosvalidate: build env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("qosvalidate: compile %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("qosvalidate: expression %q evaluates to %s, want bool", expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("qosvalidate: program %q: %w", expr, err)
	}

	return func(p qos.Profile) bool {
		out, _, err := prg.Eval(activation(p))
		if err != nil {
			return false
		}
		ok, isBool := out.Value().(bool)
		return isBool && ok
	}, nil
}

func activation(p qos.Profile) map[string]any {
	return map[string]any{
		"avoid_namespace_conventions": p.AvoidNamespaceConventions,
		"deadline":                    p.Deadline.Nanoseconds(),
		"durability":                  string(p.Durability),
		"history":                     string(p.History),
		"depth":                       int64(p.Depth),
		"lifespan":                    p.Lifespan.Nanoseconds(),
		"liveliness":                  string(p.Liveliness),
		"liveliness_lease_duration":   p.LivelinessLeaseDuration.Nanoseconds(),
		"reliability":                 string(p.Reliability),
	}
}
