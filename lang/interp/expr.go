package interp

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
	"github.com/mna/lox/lang/value"
)

func (it *Interpreter) VisitLiteral(e *ast.Literal) (any, error) {
	return goToValue(e.Value), nil
}

// goToValue converts the raw Go value a Literal node carries (set by the
// scanner/parser: nil, bool, float64 or string) into the matching
// value.Value.
func goToValue(v any) value.Value {
	switch v := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool(v)
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	default:
		panic(fmt.Sprintf("unreachable: literal of unexpected Go type %T", v))
	}
}

func (it *Interpreter) VisitGrouping(e *ast.Grouping) (any, error) {
	return it.evaluate(e.Inner)
}

func (it *Interpreter) VisitUnary(e *ast.Unary) (any, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, runtimeErrorf(e.Op.Line, "operand must be a number")
		}
		return -n, nil
	case token.BANG:
		return value.Bool(!right.Truthy()), nil
	default:
		panic("unreachable: unknown unary operator " + e.Op.Kind.String())
	}
}

func (it *Interpreter) VisitBinary(e *ast.Binary) (any, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	line := e.Op.Line

	switch e.Op.Kind {
	case token.PLUS:
		return plus(left, right, line)
	case token.MINUS:
		l, r, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.STAR:
		l, r, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.SLASH:
		l, r, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return l / r, nil // division by zero follows float64 semantics, spec.md §9
	case token.GT:
		l, r, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.Bool(l > r), nil
	case token.GT_EQ:
		l, r, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.Bool(l >= r), nil
	case token.LT:
		l, r, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.Bool(l < r), nil
	case token.LT_EQ:
		l, r, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return value.Bool(l <= r), nil
	case token.EQ_EQ:
		return value.Bool(value.Equal(left, right)), nil
	case token.BANG_EQ:
		return value.Bool(!value.Equal(left, right)), nil
	default:
		panic("unreachable: unknown binary operator " + e.Op.Kind.String())
	}
}

// plus implements `+`: number+number, string+string, and (per the test
// suite's exercised behavior) string+anything by coercing the other
// operand to its textual representation (spec.md §4.H).
func plus(left, right value.Value, line int) (value.Value, error) {
	ln, lIsNum := left.(value.Number)
	rn, rIsNum := right.(value.Number)
	if lIsNum && rIsNum {
		return ln + rn, nil
	}

	ls, lIsStr := left.(value.String)
	rs, rIsStr := right.(value.String)
	switch {
	case lIsStr && rIsStr:
		return ls + rs, nil
	case lIsStr:
		return ls + value.String(right.String()), nil
	case rIsStr:
		return value.String(left.String()) + rs, nil
	default:
		return nil, runtimeErrorf(line, "operands must be two numbers or two strings")
	}
}

func numberOperands(left, right value.Value, line int) (value.Number, value.Number, error) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, runtimeErrorf(line, "operands must be numbers")
	}
	return l, r, nil
}

func (it *Interpreter) VisitLogical(e *ast.Logical) (any, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Kind == token.OR {
		if left.Truthy() {
			return left, nil
		}
	} else { // token.AND
		if !left.Truthy() {
			return left, nil
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) VisitVariable(e *ast.Variable) (any, error) {
	return it.lookUpVariable(e.Name.Lexeme, e)
}

func (it *Interpreter) lookUpVariable(name string, node ast.Expr) (value.Value, error) {
	if depth, ok := it.locals[node]; ok {
		return it.env.GetAt(depth, name).(value.Value), nil
	}
	v, err := it.globals.Get(name)
	if err != nil {
		return nil, runtimeErrorf(node.Line(), "%s", err)
	}
	return v.(value.Value), nil
}

func (it *Interpreter) VisitAssign(e *ast.Assign) (any, error) {
	v, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if depth, ok := it.locals[e]; ok {
		it.env.AssignAt(depth, e.Name.Lexeme, v)
	} else if err := it.globals.Assign(e.Name.Lexeme, v); err != nil {
		return nil, runtimeErrorf(e.Name.Line, "%s", err)
	}
	return v, nil
}

func (it *Interpreter) VisitCall(e *ast.Call) (any, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren.Line, "can only call functions and classes")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(e.Paren.Line, "expected %d arguments but got %d", callable.Arity(), len(args))
	}
	return callable.Call(it, args)
}

func (it *Interpreter) VisitGet(e *ast.Get) (any, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "only instances have properties")
	}
	v, err := inst.Get(e.Name.Lexeme)
	if err != nil {
		return nil, runtimeErrorf(e.Name.Line, "%s", err)
	}
	return v, nil
}

func (it *Interpreter) VisitSet(e *ast.Set) (any, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "only instances have fields")
	}
	v, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}

func (it *Interpreter) VisitThis(e *ast.This) (any, error) {
	return it.lookUpVariable("this", e)
}

func (it *Interpreter) VisitSuper(e *ast.Super) (any, error) {
	depth := it.locals[e]
	super := it.env.GetAt(depth, "super").(*value.Class)
	this := it.env.GetAt(depth-1, "this").(*value.Instance)

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Method.Line, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(this), nil
}
