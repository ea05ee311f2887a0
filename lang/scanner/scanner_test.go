package scanner_test

import (
	"testing"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanAll(t *testing.T) {
	toks, err := scanner.ScanAll([]byte(`var a = 3;
print a + 1; // comment
/* block
   comment */
print "ok";
`))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.VAR, token.IDENT, token.EQ, token.NUMBER, token.SEMI,
		token.PRINT, token.IDENT, token.PLUS, token.NUMBER, token.SEMI,
		token.PRINT, token.STRING, token.SEMI,
		token.EOF,
	}, kinds(toks))
}

func TestScanNumberLiteral(t *testing.T) {
	toks, err := scanner.ScanAll([]byte("1.5"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, 1.5, toks[0].Literal)
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := scanner.ScanAll([]byte(`"hello"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "hello", toks[0].Literal)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.ScanAll([]byte(`"hello`))
	require.Error(t, err)
	var el scanner.ErrorList
	require.ErrorAs(t, err, &el)
	assert.Contains(t, el[0].Msg, "unterminated string")
}

func TestScanLineTracking(t *testing.T) {
	toks, err := scanner.ScanAll([]byte("var a = 1;\nvar b = 2;\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	// first token of the second line ("var") should be on line 2
	var found bool
	for _, tk := range toks {
		if tk.Kind == token.VAR && tk.Line == 2 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := scanner.ScanAll([]byte("@"))
	require.Error(t, err)
}

func TestScanNestedBlockComment(t *testing.T) {
	toks, err := scanner.ScanAll([]byte("/* outer /* inner */ still outer */ print 1;"))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.PRINT, token.NUMBER, token.SEMI, token.EOF}, kinds(toks))
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	_, err := scanner.ScanAll([]byte("/* never closed"))
	require.Error(t, err)
	var el scanner.ErrorList
	require.ErrorAs(t, err, &el)
	assert.Contains(t, el[0].Msg, "unterminated block comment")
}
