// Package interp is the tree-walking evaluator: it drives statements
// sequentially and expressions recursively over a chain of environments,
// producing side effects (the `print` statement) and, on the first
// dynamic error, a *RuntimeError.
package interp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/environment"
	"github.com/mna/lox/lang/value"
)

// Interpreter executes a resolved program. A zero Interpreter is not
// usable; construct one with New.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	locals  map[ast.Expr]int
	out     io.Writer
}

var (
	_ ast.ExprVisitor = (*Interpreter)(nil)
	_ ast.StmtVisitor = (*Interpreter)(nil)
	_ value.Caller    = (*Interpreter)(nil)
)

// New returns an Interpreter that writes `print` output to out and has the
// standard native globals (currently just `clock`) installed.
func New(out io.Writer) *Interpreter {
	globals := environment.New(nil)
	it := &Interpreter{globals: globals, env: globals, locals: map[ast.Expr]int{}, out: out}
	it.defineNatives()
	return it
}

func (it *Interpreter) defineNatives() {
	it.globals.Declare("clock", &value.Native{
		Name: "clock",
		Arty: 0,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}

// Run executes stmts (a complete program, or a single REPL line) using the
// locals the resolver computed for it. Locals from successive calls
// accumulate, so a REPL session can resolve and run one line at a time
// while still remembering the depths resolved on earlier lines. ctx is
// checked between top-level statements only: evaluation itself never
// suspends (spec.md §5), so cancellation can't interrupt a single
// statement, only stop the run before its next one starts.
func (it *Interpreter) Run(ctx context.Context, stmts []ast.Stmt, locals map[ast.Expr]int) error {
	for k, v := range locals {
		it.locals[k] = v
	}
	for _, s := range stmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := it.execute(s); err != nil {
			var rs returnSignal
			var bs breakSignal
			if errors.As(err, &rs) || errors.As(err, &bs) {
				panic(fmt.Sprintf("internal error: unhandled control-flow signal escaped to top level: %v", err))
			}
			return err
		}
	}
	return nil
}

func (it *Interpreter) execute(s ast.Stmt) (any, error) { return s.Accept(it) }

func (it *Interpreter) evaluate(e ast.Expr) (value.Value, error) {
	v, err := e.Accept(it)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return value.Nil{}, nil
	}
	return v.(value.Value), nil
}

func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) (err error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		if _, err := it.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// CallFunction implements value.Caller: it runs fn's body in a fresh
// environment parented to its closure, with params bound to args, and
// unwinds a returnSignal into fn's result (spec.md §4.H).
func (it *Interpreter) CallFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	env := environment.New(fn.Closure)
	for i, p := range fn.Declaration.Params {
		env.Declare(p.Lexeme, args[i])
	}

	err := it.executeBlock(fn.Declaration.Body, env)
	if err != nil {
		var rs returnSignal
		if !errors.As(err, &rs) {
			return nil, err
		}
		if fn.IsInitializer {
			return fn.Closure.GetAt(0, "this").(value.Value), nil
		}
		if rs.Value == nil {
			return value.Nil{}, nil
		}
		return rs.Value, nil
	}
	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this").(value.Value), nil
	}
	return value.Nil{}, nil
}
