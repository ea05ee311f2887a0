package environment_test

import (
	"testing"

	"github.com/mna/lox/lang/environment"
	"github.com/mna/lox/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareAndGet(t *testing.T) {
	env := environment.New(nil)
	env.Declare("a", value.Number(1))
	v, err := env.Get("a")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGetUndefined(t *testing.T) {
	env := environment.New(nil)
	_, err := env.Get("missing")
	require.Error(t, err)
	var ue *environment.UndefinedError
	require.ErrorAs(t, err, &ue)
}

func TestGetWalksEnclosing(t *testing.T) {
	global := environment.New(nil)
	global.Declare("a", value.Number(1))
	block := environment.New(global)
	v, err := block.Get("a")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestShadowing(t *testing.T) {
	global := environment.New(nil)
	global.Declare("a", value.Number(1))
	block := environment.New(global)
	block.Declare("a", value.Number(2))

	v, _ := block.Get("a")
	assert.Equal(t, value.Number(2), v)
	v, _ = global.Get("a")
	assert.Equal(t, value.Number(1), v)
}

func TestAssignUpdatesEnclosing(t *testing.T) {
	global := environment.New(nil)
	global.Declare("a", value.Number(1))
	block := environment.New(global)

	require.NoError(t, block.Assign("a", value.Number(5)))
	v, _ := global.Get("a")
	assert.Equal(t, value.Number(5), v)
	_, ok := block.Get("a")
	assert.NoError(t, ok)
}

func TestAssignUndeclaredCreatesGlobal(t *testing.T) {
	global := environment.New(nil)
	block := environment.New(global)

	require.NoError(t, block.Assign("a", value.Number(9)))
	v, err := global.Get("a")
	require.NoError(t, err)
	assert.Equal(t, value.Number(9), v)
}

func TestGetAtAndAssignAt(t *testing.T) {
	global := environment.New(nil)
	outer := environment.New(global)
	inner := environment.New(outer)
	outer.Declare("x", value.Number(1))

	assert.Equal(t, value.Number(1), inner.GetAt(1, "x"))
	inner.AssignAt(1, "x", value.Number(2))
	assert.Equal(t, value.Number(2), outer.GetAt(0, "x"))
}
