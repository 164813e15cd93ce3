// Package params provides generic typed parameter values, descriptors
// and the stores that declare and resolve them. Stores are the source
// of operator-supplied overrides; the rest of the module only consumes
// the Store interface.
package params

import "fmt"

// ValueKind tags which variant a Value holds.
type ValueKind int

const (
	KindUnset ValueKind = iota
	KindBool
	KindInt
	KindString
)

// String returns the kind's name for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a tagged parameter value holding exactly one of bool, int64
// or string. The zero Value is unset.
type Value struct {
	kind    ValueKind
	boolVal bool
	intVal  int64
	strVal  string
}

// NewBool wraps a boolean parameter value.
func NewBool(v bool) Value { return Value{kind: KindBool, boolVal: v} }

// NewInt wraps a 64-bit integer parameter value.
func NewInt(v int64) Value { return Value{kind: KindInt, intVal: v} }

// NewString wraps a string parameter value.
func NewString(v string) Value { return Value{kind: KindString, strVal: v} }

// Kind returns which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the boolean variant. ok is false if v holds another kind.
func (v Value) Bool() (b bool, ok bool) { return v.boolVal, v.kind == KindBool }

// Int returns the integer variant. ok is false if v holds another kind.
func (v Value) Int() (i int64, ok bool) { return v.intVal, v.kind == KindInt }

// Str returns the string variant. ok is false if v holds another kind.
func (v Value) Str() (s string, ok bool) { return v.strVal, v.kind == KindString }

// Interface returns the held value as an untyped interface, or nil when
// unset. Useful for printing and SQL parameter binding.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindString:
		return v.strVal
	default:
		return nil
	}
}

// Equal reports whether both values hold the same kind and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindUnset {
		return "<unset>"
	}
	return fmt.Sprintf("%v", v.Interface())
}

// FromScalar converts a decoded YAML/JSON scalar into a Value.
// Only bool, integer and string scalars are representable.
func FromScalar(raw any) (Value, error) {
	switch s := raw.(type) {
	case bool:
		return NewBool(s), nil
	case int:
		return NewInt(int64(s)), nil
	case int64:
		return NewInt(s), nil
	case uint64:
		return NewInt(int64(s)), nil
	case string:
		return NewString(s), nil
	default:
		return Value{}, fmt.Errorf("unrepresentable parameter scalar %v (%T)", raw, raw)
	}
}

// Descriptor carries the metadata attached to a declared parameter.
type Descriptor struct {
	Description string
	ReadOnly    bool
}

// Store declares named parameters and resolves their effective values.
// Declare registers name with the given default and descriptor and
// returns the effective value, which is either the default or an
// operator-supplied override already known to the store. Implementations
// define their own failure modes (duplicate names, mismatched override
// types); such errors propagate unchanged to the caller.
type Store interface {
	Declare(name string, def Value, desc Descriptor) (Value, error)
}
