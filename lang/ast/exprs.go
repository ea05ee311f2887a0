package ast

import "github.com/mna/lox/lang/token"

// Literal is a boolean, number, string or nil constant.
type Literal struct {
	Value any
	Ln    int
}

func (e *Literal) Line() int { return e.Ln }
func (e *Literal) Accept(v ExprVisitor) (any, error) { return v.VisitLiteral(e) }

// Unary is a prefix operator applied to a single operand, e.g. `-x`, `!x`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) Line() int { return e.Op.Line }
func (e *Unary) Accept(v ExprVisitor) (any, error) { return v.VisitUnary(e) }

// Binary is an infix arithmetic, comparison or equality operator.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) Line() int { return e.Op.Line }
func (e *Binary) Accept(v ExprVisitor) (any, error) { return v.VisitBinary(e) }

// Logical is `and`/`or`, which short-circuit and must be evaluated
// separately from Binary (spec.md §4.H).
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) Line() int { return e.Op.Line }
func (e *Logical) Accept(v ExprVisitor) (any, error) { return v.VisitLogical(e) }

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner Expr
	Ln    int
}

func (e *Grouping) Line() int { return e.Ln }
func (e *Grouping) Accept(v ExprVisitor) (any, error) { return v.VisitGrouping(e) }

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

func (e *Variable) Line() int { return e.Name.Line }
func (e *Variable) Accept(v ExprVisitor) (any, error) { return v.VisitVariable(e) }

// Assign stores Value into Name, which must already be bound somewhere in
// the enclosing scope chain (or is treated as a new global, spec.md §9).
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Line() int { return e.Name.Line }
func (e *Assign) Accept(v ExprVisitor) (any, error) { return v.VisitAssign(e) }

// Call invokes Callee with Args. Paren is the closing `)`, used to report
// runtime errors at the call site.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (e *Call) Line() int { return e.Paren.Line }
func (e *Call) Accept(v ExprVisitor) (any, error) { return v.VisitCall(e) }

// Get reads a property or bound method off an instance.
type Get struct {
	Object Expr
	Name   token.Token
}

func (e *Get) Line() int { return e.Name.Line }
func (e *Get) Accept(v ExprVisitor) (any, error) { return v.VisitGet(e) }

// Set stores Value into a property of an instance.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) Line() int { return e.Name.Line }
func (e *Set) Accept(v ExprVisitor) (any, error) { return v.VisitSet(e) }

// This is the `this` keyword, valid only inside a method body.
type This struct {
	Keyword token.Token
}

func (e *This) Line() int { return e.Keyword.Line }
func (e *This) Accept(v ExprVisitor) (any, error) { return v.VisitThis(e) }

// Super is a `super.method` lookup, valid only inside a subclass method.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (e *Super) Line() int { return e.Keyword.Line }
func (e *Super) Accept(v ExprVisitor) (any, error) { return v.VisitSuper(e) }
