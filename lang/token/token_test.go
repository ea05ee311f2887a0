package token_test

import (
	"testing"

	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, token.CLASS, token.Lookup("class"))
	assert.Equal(t, token.IDENT, token.Lookup("classy"))
	assert.Equal(t, token.IDENT, token.Lookup("notakeyword"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "class", token.CLASS.String())
	assert.Equal(t, "(", token.LPAREN.String())
}
