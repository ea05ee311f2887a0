package parser_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScan(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := scanner.ScanAll([]byte(src))
	require.NoError(t, err)
	return toks
}

func TestParseExpr(t *testing.T) {
	toks := mustScan(t, "1 + 2 * 3")
	e, err := parser.ParseExpr(toks)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.Print(e))
}

func TestParseVarAndPrint(t *testing.T) {
	stmts, err := parser.Parse(mustScan(t, `var a = 1; print a;`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	_, ok := stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	_, ok = stmts[1].(*ast.PrintStmt)
	assert.True(t, ok)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, err := parser.Parse(mustScan(t, `for (var i = 0; i < 3; i = i + 1) print i;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
	_, ok = block.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	while, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, err := parser.Parse(mustScan(t, `
class Animal {
  speak() { print "..."; }
}
class Dog < Animal {
  init(name) { this.name = name; }
  speak() { print this.name; }
}
`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	dog, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	require.NotNil(t, dog.Superclass)
	assert.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 2)
	assert.Equal(t, ast.KindInitializer, dog.Methods[0].Kind)
}

func TestParseErrorRecoveryCollectsMultiple(t *testing.T) {
	_, err := parser.Parse(mustScan(t, `var = 1; var = 2;`))
	require.Error(t, err)
	var el parser.ErrorList
	require.ErrorAs(t, err, &el)
	assert.Len(t, el, 2)
}

func TestParseAssignmentTargetMustBeVariable(t *testing.T) {
	_, err := parser.Parse(mustScan(t, `1 + 2 = 3;`))
	require.Error(t, err)
}

func TestParseBreakAndReturn(t *testing.T) {
	stmts, err := parser.Parse(mustScan(t, `
fun f() {
  while (true) {
    break;
  }
  return 1;
}
`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	require.Len(t, fn.Body, 2)
	_, ok = fn.Body[1].(*ast.ReturnStmt)
	assert.True(t, ok)
}
