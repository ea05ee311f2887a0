package interp_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := scanner.ScanAll([]byte(src))
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var buf bytes.Buffer
	it := interp.New(&buf)
	err = it.Run(context.Background(), stmts, locals)
	return buf.String(), err
}

func TestScenario1Arithmetic(t *testing.T) {
	out, err := run(t, `var a=3; print 1+(a*2);`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestScenario2Shadowing(t *testing.T) {
	out, err := run(t, `var b=3;{var b=4; print b;} print b;`)
	require.NoError(t, err)
	assert.Equal(t, "4\n6\n", out)
}

func TestScenario3ShortCircuit(t *testing.T) {
	out, err := run(t, `print "ok" or "no"; print "no" and "ok";`)
	require.NoError(t, err)
	assert.Equal(t, "ok\nok\n", out)
}

func TestScenario4ForLoop(t *testing.T) {
	out, err := run(t, `var c=0; for(var i=0;i<=50;i=i+1) c=c+i; print c;`)
	require.NoError(t, err)
	assert.Equal(t, "1275\n", out)
}

func TestScenario5Closure(t *testing.T) {
	out, err := run(t, `fun mk(){var i=0; fun c(){i=i+1; return i;} return c;} var k=mk(); k(); k(); print k();`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestScenario6SuperCall(t *testing.T) {
	out, err := run(t, `class P{foo(){return 42;}} class C<P{bar(){return super.foo()+1;}} print C().bar();`)
	require.NoError(t, err)
	assert.Equal(t, "43\n", out)
}

func TestScenario7InitializerReinvocation(t *testing.T) {
	out, err := run(t, `class F{init(n){this.x=n;}} var f=F(5); f.init(9); print f.x;`)
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestClosureCapturesDefinitionTimeEnvironment(t *testing.T) {
	out, err := run(t, `
var a = "outer";
{
  fun get_a() { return a; }
  var a = "inner";
  print get_a();
}
`)
	require.NoError(t, err)
	assert.Equal(t, "outer\n", out)
}

func TestInstancesHaveIndependentFields(t *testing.T) {
	out, err := run(t, `
class Counter { init() { this.n = 0; } }
var a = Counter();
var b = Counter();
a.n = 5;
print a.n;
print b.n;
`)
	require.NoError(t, err)
	assert.Equal(t, "5\n0\n", out)
}

func TestInitReturnsReceiverRegardlessOfBareReturn(t *testing.T) {
	out, err := run(t, `
class A {
  init() {
    this.x = 1;
    return;
  }
}
print A().x;
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestMethodOverrideStopsAtFirstHit(t *testing.T) {
	out, err := run(t, `
class A { greet() { return "A"; } }
class B < A { greet() { return "B"; } }
class C < B {}
print C().greet();
`)
	require.NoError(t, err)
	assert.Equal(t, "B\n", out)
}

func TestBreakExitsOnlyOneLoop(t *testing.T) {
	out, err := run(t, `
var count = 0;
for (var i = 0; i < 3; i = i + 1) {
  for (var j = 0; j < 3; j = j + 1) {
    if (j == 1) break;
    count = count + 1;
  }
}
print count;
`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestStringNumberConcatenation(t *testing.T) {
	out, err := run(t, `print "n=" + 3;`)
	require.NoError(t, err)
	assert.Equal(t, "n=3\n", out)
}

func TestTruthinessOfOrAnd(t *testing.T) {
	out, err := run(t, `
print false or 1;
print true and 2;
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestDivisionByZeroIsNotAnError(t *testing.T) {
	out, err := run(t, `print 1/0; print -1/0; print 0/0;`)
	require.NoError(t, err)
	assert.Equal(t, "+Inf\n-Inf\nNaN\n", out)
}

func TestRuntimeErrorUndefinedVariable(t *testing.T) {
	_, err := run(t, `print undefined_var;`)
	require.Error(t, err)
	var re *interp.RuntimeError
	require.ErrorAs(t, err, &re)
}

func TestRuntimeErrorCallNonCallable(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
}

func TestRuntimeErrorWrongArity(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
}

func TestRuntimeErrorArithmeticTypeMismatch(t *testing.T) {
	_, err := run(t, `print 1 - "x";`)
	require.Error(t, err)
}

func TestClock(t *testing.T) {
	out, err := run(t, `print clock() > 1000;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
