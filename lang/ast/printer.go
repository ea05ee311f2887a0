package ast

import (
	"fmt"
	"strings"
)

// Print renders e as a fully-parenthesized Lisp-like expression, used by
// the `parse` debug subcommand to inspect the tree the parser produced.
func Print(e Expr) string {
	p := &printer{}
	s, err := e.Accept(p)
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return s.(string)
}

// printer implements ExprVisitor purely for diagnostic output; it never
// errors.
type printer struct{}

func (p *printer) parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		s, _ := e.Accept(p)
		sb.WriteString(s.(string))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (p *printer) VisitLiteral(e *Literal) (any, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return fmt.Sprintf("%v", e.Value), nil
}

func (p *printer) VisitUnary(e *Unary) (any, error) {
	return p.parenthesize(e.Op.Lexeme, e.Right), nil
}

func (p *printer) VisitBinary(e *Binary) (any, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right), nil
}

func (p *printer) VisitLogical(e *Logical) (any, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right), nil
}

func (p *printer) VisitGrouping(e *Grouping) (any, error) {
	return p.parenthesize("group", e.Inner), nil
}

func (p *printer) VisitVariable(e *Variable) (any, error) {
	return e.Name.Lexeme, nil
}

func (p *printer) VisitAssign(e *Assign) (any, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value), nil
}

func (p *printer) VisitCall(e *Call) (any, error) {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Args...)...), nil
}

func (p *printer) VisitGet(e *Get) (any, error) {
	return p.parenthesize("get "+e.Name.Lexeme, e.Object), nil
}

func (p *printer) VisitSet(e *Set) (any, error) {
	return p.parenthesize("set "+e.Name.Lexeme, e.Object, e.Value), nil
}

func (p *printer) VisitThis(e *This) (any, error) {
	return "this", nil
}

func (p *printer) VisitSuper(e *Super) (any, error) {
	return "(super " + e.Method.Lexeme + ")", nil
}
