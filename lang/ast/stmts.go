package ast

import "github.com/mna/lox/lang/token"

// ExprStmt evaluates Expr for its side effect and discards the result.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) Line() int { return s.Expr.Line() }
func (s *ExprStmt) Accept(v StmtVisitor) (any, error) { return v.VisitExprStmt(s) }

// PrintStmt evaluates Expr and writes its stringified form to the
// interpreter's output stream.
type PrintStmt struct {
	Expr Expr
	Ln   int
}

func (s *PrintStmt) Line() int { return s.Ln }
func (s *PrintStmt) Accept(v StmtVisitor) (any, error) { return v.VisitPrintStmt(s) }

// VarStmt declares Name in the current scope, optionally initialized by
// Init. An absent Init binds nil (spec.md §4.G).
type VarStmt struct {
	Name token.Token
	Init Expr
}

func (s *VarStmt) Line() int { return s.Name.Line }
func (s *VarStmt) Accept(v StmtVisitor) (any, error) { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around Stmts.
type BlockStmt struct {
	Stmts []Stmt
	Ln    int
}

func (s *BlockStmt) Line() int { return s.Ln }
func (s *BlockStmt) Accept(v StmtVisitor) (any, error) { return v.VisitBlockStmt(s) }

// IfStmt runs Then if Cond is truthy, otherwise Else if present.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
	Ln   int
}

func (s *IfStmt) Line() int { return s.Ln }
func (s *IfStmt) Accept(v StmtVisitor) (any, error) { return v.VisitIfStmt(s) }

// WhileStmt runs Body while Cond remains truthy. `for` loops desugar into
// this plus a BlockStmt during parsing (spec.md §4.D).
type WhileStmt struct {
	Cond Expr
	Body Stmt
	Ln   int
}

func (s *WhileStmt) Line() int { return s.Ln }
func (s *WhileStmt) Accept(v StmtVisitor) (any, error) { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function or method. Kind distinguishes a
// free function from a method and from a class initializer, which affects
// return-statement validation (spec.md §4.E) and instance construction
// (spec.md §4.H).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
	Kind   FunctionKind
}

func (s *FunctionStmt) Line() int { return s.Name.Line }
func (s *FunctionStmt) Accept(v StmtVisitor) (any, error) { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds the enclosing function call, carrying Value (nil if
// bare `return;`).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) Line() int { return s.Keyword.Line }
func (s *ReturnStmt) Accept(v StmtVisitor) (any, error) { return v.VisitReturnStmt(s) }

// ClassStmt declares a class, its optional superclass reference and its
// methods.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (s *ClassStmt) Line() int { return s.Name.Line }
func (s *ClassStmt) Accept(v StmtVisitor) (any, error) { return v.VisitClassStmt(s) }

// BreakStmt unwinds to the nearest enclosing loop (spec.md §7).
type BreakStmt struct {
	Keyword token.Token
}

func (s *BreakStmt) Line() int { return s.Keyword.Line }
func (s *BreakStmt) Accept(v StmtVisitor) (any, error) { return v.VisitBreakStmt(s) }
