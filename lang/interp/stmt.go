package interp

import (
	"errors"
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/environment"
	"github.com/mna/lox/lang/value"
)

func (it *Interpreter) VisitExprStmt(s *ast.ExprStmt) (any, error) {
	_, err := it.evaluate(s.Expr)
	return nil, err
}

func (it *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (any, error) {
	v, err := it.evaluate(s.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(it.out, v.String())
	return nil, nil
}

func (it *Interpreter) VisitVarStmt(s *ast.VarStmt) (any, error) {
	var v value.Value = value.Nil{}
	if s.Init != nil {
		var err error
		v, err = it.evaluate(s.Init)
		if err != nil {
			return nil, err
		}
	}
	it.env.Declare(s.Name.Lexeme, v)
	return nil, nil
}

func (it *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (any, error) {
	return nil, it.executeBlock(s.Stmts, environment.New(it.env))
}

func (it *Interpreter) VisitIfStmt(s *ast.IfStmt) (any, error) {
	cond, err := it.evaluate(s.Cond)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return it.execute(s.Then)
	}
	if s.Else != nil {
		return it.execute(s.Else)
	}
	return nil, nil
}

func (it *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (any, error) {
	for {
		cond, err := it.evaluate(s.Cond)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			return nil, nil
		}
		if _, err := it.execute(s.Body); err != nil {
			var bs breakSignal
			if errors.As(err, &bs) {
				return nil, nil
			}
			return nil, err
		}
	}
}

func (it *Interpreter) VisitBreakStmt(s *ast.BreakStmt) (any, error) {
	return nil, breakSignal{}
}

func (it *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (any, error) {
	fn := &value.Function{Declaration: s, Closure: it.env, IsInitializer: s.Kind == ast.KindInitializer}
	it.env.Declare(s.Name.Lexeme, fn)
	return nil, nil
}

func (it *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (any, error) {
	var v value.Value
	if s.Value != nil {
		var err error
		v, err = it.evaluate(s.Value)
		if err != nil {
			return nil, err
		}
	}
	return nil, returnSignal{Value: v}
}

func (it *Interpreter) VisitClassStmt(s *ast.ClassStmt) (any, error) {
	var super *value.Class
	if s.Superclass != nil {
		sv, err := it.evaluate(s.Superclass)
		if err != nil {
			return nil, err
		}
		var ok bool
		super, ok = sv.(*value.Class)
		if !ok {
			return nil, runtimeErrorf(s.Superclass.Name.Line, "superclass must be a class")
		}
	}

	it.env.Declare(s.Name.Lexeme, value.Nil{})

	env := it.env
	if super != nil {
		env = environment.New(it.env)
		env.Declare("super", super)
	}

	methods := make(map[string]*value.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &value.Function{
			Declaration:   m,
			Closure:       env,
			IsInitializer: m.Kind == ast.KindInitializer,
		}
	}

	cls := &value.Class{Name: s.Name.Lexeme, Superclass: super, Methods: methods}
	return nil, it.env.Assign(s.Name.Lexeme, cls)
}
