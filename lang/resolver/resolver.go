// Package resolver performs a static pass over the syntax tree between
// parsing and evaluation. It resolves every variable reference to the
// number of scopes between its use and its declaration (so the evaluator
// can jump straight to the right environment frame instead of searching),
// and it rejects programs that break Lox's static rules: using a variable
// in its own initializer, returning from top level, using `this`/`super`
// outside a class, a class inheriting from itself, or `break` outside a
// loop.
package resolver

import (
	"github.com/mna/lox/lang/ast"
)

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	clsNone classKind = iota
	clsClass
	clsSubclass
)

// Resolver walks a program once, recording the lexical depth of every
// variable reference it can statically determine.
type Resolver struct {
	scopes    []map[string]bool
	locals    map[ast.Expr]int
	errors    ErrorList
	curFn     functionKind
	curClass  classKind
	loopDepth int
}

// New returns a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{locals: make(map[ast.Expr]int)}
}

// Resolve walks stmts and returns the resolved locals table: for every
// Variable, Assign, This or Super expression that refers to a binding
// introduced by an enclosing block, function or loop, the number of scopes
// between the reference and the declaring scope. References to globals are
// absent from the map, and are looked up dynamically at runtime instead.
func Resolve(stmts []ast.Stmt) (map[ast.Expr]int, error) {
	r := New()
	r.resolveStmts(stmts)
	return r.locals, r.errors.Err()
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) { s.Accept(r) }
func (r *Resolver) resolveExpr(e ast.Expr) { e.Accept(r) }

func (r *Resolver) errorf(line int, msg string) { r.errors.Add(line, msg) }

// --- scope stack ---

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) peekScope() map[string]bool {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as present but not yet usable in the current scope, so
// `var a = a;` can be rejected (spec.md §4.E).
func (r *Resolver) declare(name string, line int) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	if _, ok := scope[name]; ok {
		r.errorf(line, "already a variable named '"+name+"' in this scope")
	}
	scope[name] = false
}

func (r *Resolver) define(name string) {
	if scope := r.peekScope(); scope != nil {
		scope[name] = true
	}
}

func (r *Resolver) resolveLocal(e ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[e] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any enclosing scope: treated as a global, resolved
	// dynamically at runtime.
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFn, enclosingLoop := r.curFn, r.loopDepth
	r.curFn, r.loopDepth = kind, 0
	defer func() { r.curFn, r.loopDepth = enclosingFn, enclosingLoop }()

	r.beginScope()
	defer r.endScope()
	for _, p := range fn.Params {
		r.declare(p.Lexeme, p.Line)
		r.define(p.Lexeme)
	}
	r.resolveStmts(fn.Body)
}

// --- statements ---

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) (any, error) {
	r.beginScope()
	r.resolveStmts(s.Stmts)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) (any, error) {
	r.declare(s.Name.Lexeme, s.Name.Line)
	if s.Init != nil {
		r.resolveExpr(s.Init)
	}
	r.define(s.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) (any, error) {
	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)
	r.resolveFunction(s, fnFromDeclKind(s.Kind))
	return nil, nil
}

func fnFromDeclKind(k ast.FunctionKind) functionKind {
	switch k {
	case ast.KindMethod:
		return fnMethod
	case ast.KindInitializer:
		return fnInitializer
	default:
		return fnFunction
	}
}

func (r *Resolver) VisitExprStmt(s *ast.ExprStmt) (any, error) {
	r.resolveExpr(s.Expr)
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) (any, error) {
	r.resolveExpr(s.Expr)
	return nil, nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) (any, error) {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) (any, error) {
	r.resolveExpr(s.Cond)
	r.loopDepth++
	r.resolveStmt(s.Body)
	r.loopDepth--
	return nil, nil
}

func (r *Resolver) VisitBreakStmt(s *ast.BreakStmt) (any, error) {
	if r.loopDepth == 0 {
		r.errorf(s.Keyword.Line, "'break' outside of a loop")
	}
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) (any, error) {
	if r.curFn == fnNone {
		r.errorf(s.Keyword.Line, "'return' outside of a function")
	}
	if s.Value != nil {
		if r.curFn == fnInitializer {
			r.errorf(s.Keyword.Line, "can't return a value from an initializer")
		}
		r.resolveExpr(s.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) (any, error) {
	enclosingClass := r.curClass
	r.curClass = clsClass
	defer func() { r.curClass = enclosingClass }()

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorf(s.Superclass.Name.Line, "a class can't inherit from itself")
		} else {
			r.curClass = clsSubclass
			r.resolveExpr(s.Superclass)
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, m := range s.Methods {
		kind := fnFromDeclKind(m.Kind)
		r.resolveFunction(m, kind)
	}
	return nil, nil
}

// --- expressions ---

func (r *Resolver) VisitVariable(e *ast.Variable) (any, error) {
	if scope := r.peekScope(); scope != nil {
		if defined, ok := scope[e.Name.Lexeme]; ok && !defined {
			r.errorf(e.Name.Line, "can't read local variable '"+e.Name.Lexeme+"' in its own initializer")
		}
	}
	r.resolveLocal(e, e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitAssign(e *ast.Assign) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitBinary(e *ast.Binary) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogical(e *ast.Logical) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitUnary(e *ast.Unary) (any, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGrouping(e *ast.Grouping) (any, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitLiteral(e *ast.Literal) (any, error) { return nil, nil }

func (r *Resolver) VisitCall(e *ast.Call) (any, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil, nil
}

func (r *Resolver) VisitGet(e *ast.Get) (any, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSet(e *ast.Set) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThis(e *ast.This) (any, error) {
	if r.curClass == clsNone {
		r.errorf(e.Keyword.Line, "can't use 'this' outside of a class")
		return nil, nil
	}
	r.resolveLocal(e, "this")
	return nil, nil
}

func (r *Resolver) VisitSuper(e *ast.Super) (any, error) {
	switch r.curClass {
	case clsNone:
		r.errorf(e.Keyword.Line, "can't use 'super' outside of a class")
	case clsClass:
		r.errorf(e.Keyword.Line, "can't use 'super' in a class with no superclass")
	}
	r.resolveLocal(e, "super")
	return nil, nil
}
