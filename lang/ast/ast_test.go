package ast_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	// -123 * (45.67)
	expr := &ast.Binary{
		Left: &ast.Unary{
			Op:    token.Token{Kind: token.MINUS, Lexeme: "-", Line: 1},
			Right: &ast.Literal{Value: 123.0},
		},
		Op: token.Token{Kind: token.STAR, Lexeme: "*", Line: 1},
		Right: &ast.Grouping{
			Inner: &ast.Literal{Value: 45.67},
		},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", ast.Print(expr))
}

func TestPrintNilLiteral(t *testing.T) {
	assert.Equal(t, "nil", ast.Print(&ast.Literal{}))
}

func TestFunctionKindString(t *testing.T) {
	assert.Equal(t, "function", ast.KindFunction.String())
	assert.Equal(t, "method", ast.KindMethod.String())
	assert.Equal(t, "initializer", ast.KindInitializer.String())
}

func TestNodeLine(t *testing.T) {
	v := &ast.Variable{Name: token.Token{Kind: token.IDENT, Lexeme: "x", Line: 7}}
	assert.Equal(t, 7, v.Line())

	bs := &ast.BlockStmt{Ln: 4}
	assert.Equal(t, 4, bs.Line())
}
