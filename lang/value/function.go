package value

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/environment"
)

// Function is a user-defined function or method: its declaration plus the
// environment it closed over at the point it was declared.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

var _ Callable = (*Function)(nil)

func (fn *Function) String() string { return fmt.Sprintf("<fn %s>", fn.Declaration.Name.Lexeme) }
func (fn *Function) Type() string   { return "function" }
func (fn *Function) Truthy() bool   { return true }
func (fn *Function) Arity() int     { return len(fn.Declaration.Params) }

func (fn *Function) Call(caller Caller, args []Value) (Value, error) {
	return caller.CallFunction(fn, args)
}

// Bind returns a copy of fn whose closure has `this` bound to instance, so
// the method body can refer to the receiver (spec.md §4.H).
func (fn *Function) Bind(instance *Instance) *Function {
	env := environment.New(fn.Closure)
	env.Declare("this", instance)
	return &Function{Declaration: fn.Declaration, Closure: env, IsInitializer: fn.IsInitializer}
}
