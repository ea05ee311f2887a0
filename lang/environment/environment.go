// Package environment implements the chain of lexical scopes that bindings
// live in: one Environment per block, function call and loop iteration,
// each linking to its enclosing scope.
//
// Bindings are stored as `any` rather than a value.Value so that this
// package does not need to depend on the value package (value.Function
// closes over an *Environment, which would otherwise be an import cycle).
// Callers type-assert back to value.Value when reading a binding.
package environment

import "fmt"

// Environment is a single lexical scope: a table of bindings plus a link to
// the enclosing scope. The global scope is the Environment with a nil
// Enclosing.
type Environment struct {
	Enclosing *Environment
	values    map[string]any
}

// New returns a fresh Environment enclosed by parent. Passing a nil parent
// creates the global scope.
func New(parent *Environment) *Environment {
	return &Environment{Enclosing: parent, values: make(map[string]any)}
}

// Declare binds name to v in this scope, shadowing any binding of the same
// name in an enclosing scope. Redeclaring a name already bound in this same
// scope silently replaces it; the resolver is responsible for rejecting
// that statically where it isn't allowed (spec.md §4.E).
func (e *Environment) Declare(name string, v any) {
	e.values[name] = v
}

// Get looks up name starting at this scope and walking out through
// enclosing scopes, as used for globals and any reference the resolver
// could not statically bind.
func (e *Environment) Get(name string) (any, error) {
	for env := e; env != nil; env = env.Enclosing {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, &UndefinedError{Name: name}
}

// Assign stores v into the nearest scope (walking out through enclosing
// scopes) that already declares name. A name not declared anywhere in the
// chain is created in the global scope instead of erroring: only reading an
// undefined variable is a runtime error, not assigning one (spec.md §9).
func (e *Environment) Assign(name string, v any) error {
	env := e
	for ; env.Enclosing != nil; env = env.Enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return nil
		}
	}
	env.values[name] = v // global scope, create-or-update
	return nil
}

// GetAt returns the value of name exactly depth scopes out from e, as
// computed by the resolver; it performs no search.
func (e *Environment) GetAt(depth int, name string) any {
	return e.ancestor(depth).values[name]
}

// AssignAt stores v for name exactly depth scopes out from e, as computed
// by the resolver; it performs no search.
func (e *Environment) AssignAt(depth int, name string, v any) {
	e.ancestor(depth).values[name] = v
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Enclosing
	}
	return env
}

// UndefinedError is returned by Get for a name with no binding anywhere in
// the scope chain. Assign never returns it: a missing name is created in the
// global scope instead.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}
