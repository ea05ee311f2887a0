// Package value defines the runtime values produced and manipulated by the
// evaluator: nil, booleans, numbers, strings, callables, classes and
// instances.
package value

// Value is implemented by every runtime value.
type Value interface {
	// String returns the value's textual representation, as printed by the
	// `print` statement and the REPL.
	String() string

	// Type returns a short name for the value's dynamic type (e.g. "number",
	// "instance").
	Type() string

	// Truthy reports whether the value counts as true in a boolean context.
	// Lox considers everything truthy except nil and the boolean false
	// (spec.md §4.F).
	Truthy() bool
}

// Nil is the single value of the absence of a value.
type Nil struct{}

var _ Value = Nil{}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }
func (Nil) Truthy() bool   { return false }

// Bool is the type of boolean values.
type Bool bool

var _ Value = Bool(false)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Type() string { return "bool" }
func (b Bool) Truthy() bool { return bool(b) }

// Equal reports whether two values are equal under Lox's `==` semantics:
// values of different dynamic types are never equal, nil equals only nil,
// and otherwise equality is Go equality on the underlying representation
// (spec.md §4.H).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}
