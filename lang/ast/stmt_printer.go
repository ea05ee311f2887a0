package ast

import (
	"fmt"
	"strings"

	"github.com/mna/lox/lang/token"
)

// PrintStmts renders a top-level program as an indented, Lisp-like tree,
// one line per statement, for the `parse` and `resolve` debug commands.
// It is a plain recursive dump rather than a Visitor: the interpreter and
// resolver only ever need to walk statements to execute or resolve them,
// never to print them, so a second dispatch table would be unused outside
// this one diagnostic path.
func PrintStmts(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		printStmt(&sb, s, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func printStmt(sb *strings.Builder, s Stmt, depth int) {
	indent(sb, depth)
	switch s := s.(type) {
	case *ExprStmt:
		fmt.Fprintf(sb, "expr %s\n", Print(s.Expr))
	case *PrintStmt:
		fmt.Fprintf(sb, "print %s\n", Print(s.Expr))
	case *VarStmt:
		if s.Init != nil {
			fmt.Fprintf(sb, "var %s = %s\n", s.Name.Lexeme, Print(s.Init))
		} else {
			fmt.Fprintf(sb, "var %s\n", s.Name.Lexeme)
		}
	case *BlockStmt:
		sb.WriteString("block\n")
		for _, inner := range s.Stmts {
			printStmt(sb, inner, depth+1)
		}
	case *IfStmt:
		fmt.Fprintf(sb, "if %s\n", Print(s.Cond))
		printStmt(sb, s.Then, depth+1)
		if s.Else != nil {
			indent(sb, depth)
			sb.WriteString("else\n")
			printStmt(sb, s.Else, depth+1)
		}
	case *WhileStmt:
		fmt.Fprintf(sb, "while %s\n", Print(s.Cond))
		printStmt(sb, s.Body, depth+1)
	case *FunctionStmt:
		fmt.Fprintf(sb, "%s %s(%s)\n", s.Kind, s.Name.Lexeme, joinParams(s.Params))
		for _, inner := range s.Body {
			printStmt(sb, inner, depth+1)
		}
	case *ReturnStmt:
		if s.Value != nil {
			fmt.Fprintf(sb, "return %s\n", Print(s.Value))
		} else {
			sb.WriteString("return\n")
		}
	case *ClassStmt:
		if s.Superclass != nil {
			fmt.Fprintf(sb, "class %s < %s\n", s.Name.Lexeme, s.Superclass.Name.Lexeme)
		} else {
			fmt.Fprintf(sb, "class %s\n", s.Name.Lexeme)
		}
		for _, m := range s.Methods {
			printStmt(sb, m, depth+1)
		}
	case *BreakStmt:
		sb.WriteString("break\n")
	default:
		fmt.Fprintf(sb, "<unknown stmt %T>\n", s)
	}
}

// DescribeLocal names the variable reference e resolves, for printing the
// resolver's depth annotations (the `resolve` debug command) without
// exposing the concrete Expr types to its caller.
func DescribeLocal(e Expr) string {
	switch e := e.(type) {
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return e.Name.Lexeme
	case *This:
		return "this"
	case *Super:
		return "super." + e.Method.Lexeme
	default:
		return fmt.Sprintf("%T", e)
	}
}

func joinParams(params []token.Token) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, ", ")
}
