package resolver_test

import (
	"testing"

	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) error {
	t.Helper()
	toks, err := scanner.ScanAll([]byte(src))
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	_, err = resolver.Resolve(stmts)
	return err
}

func TestResolveOK(t *testing.T) {
	err := resolveSrc(t, `
var a = 1;
{
  var b = a + 1;
  print b;
}
fun f(x) { return x + 1; }
print f(a);
`)
	assert.NoError(t, err)
}

func TestResolveSelfReferenceInInitializer(t *testing.T) {
	err := resolveSrc(t, `{ var a = a; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own initializer")
}

func TestResolveDuplicateLocal(t *testing.T) {
	err := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a variable")
}

func TestResolveReturnOutsideFunction(t *testing.T) {
	err := resolveSrc(t, `return 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside of a function")
}

func TestResolveReturnValueFromInitializer(t *testing.T) {
	err := resolveSrc(t, `
class A {
  init() { return 1; }
}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initializer")
}

func TestResolveThisOutsideClass(t *testing.T) {
	err := resolveSrc(t, `print this;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'this'")
}

func TestResolveSuperOutsideSubclass(t *testing.T) {
	err := resolveSrc(t, `
class A {
  f() { return super.f(); }
}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'super'")
}

func TestResolveSelfInheritance(t *testing.T) {
	err := resolveSrc(t, `class A < A {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inherit from itself")
}

func TestResolveBreakOutsideLoop(t *testing.T) {
	err := resolveSrc(t, `break;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'break'")
}

func TestResolveBreakInsideLoopOK(t *testing.T) {
	err := resolveSrc(t, `while (true) { break; }`)
	assert.NoError(t, err)
}

func TestResolveLocalsTableDepth(t *testing.T) {
	toks, err := scanner.ScanAll([]byte(`
var a = 1;
{
  var b = 2;
  print a;
  print b;
}
`))
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	// "a" is a global (no entry); "b" is local at depth 0.
	assert.Len(t, locals, 1)
}
