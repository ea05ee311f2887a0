package value_test

import (
	"testing"

	"github.com/mna/lox/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberString(t *testing.T) {
	assert.Equal(t, "3", value.Number(3).String())
	assert.Equal(t, "3.5", value.Number(3.5).String())
	assert.Equal(t, "-1", value.Number(-1).String())
}

func TestTruthy(t *testing.T) {
	assert.False(t, value.Nil{}.Truthy())
	assert.False(t, value.Bool(false).Truthy())
	assert.True(t, value.Bool(true).Truthy())
	assert.True(t, value.Number(0).Truthy())
	assert.True(t, value.String("").Truthy())
}

func TestEqual(t *testing.T) {
	assert.True(t, value.Equal(value.Nil{}, value.Nil{}))
	assert.False(t, value.Equal(value.Nil{}, value.Bool(false)))
	assert.True(t, value.Equal(value.Number(1), value.Number(1)))
	assert.False(t, value.Equal(value.Number(1), value.String("1")))
	assert.True(t, value.Equal(value.String("a"), value.String("a")))
}

func TestClassInstanceFields(t *testing.T) {
	cls := &value.Class{Name: "Point", Methods: map[string]*value.Function{}}
	inst := value.NewInstance(cls)

	_, err := inst.Get("x")
	require.Error(t, err)
	var nse *value.NoSuchPropertyError
	require.ErrorAs(t, err, &nse)

	inst.Set("x", value.Number(1))
	v, err := inst.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestClassFindMethodWithSuperclass(t *testing.T) {
	base := &value.Class{Name: "Animal", Methods: map[string]*value.Function{
		"speak": {},
	}}
	sub := &value.Class{Name: "Dog", Superclass: base, Methods: map[string]*value.Function{}}

	_, ok := sub.FindMethod("speak")
	assert.True(t, ok)
	_, ok = sub.FindMethod("missing")
	assert.False(t, ok)
}

type fakeCaller struct{}

func (fakeCaller) CallFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	return value.Nil{}, nil
}

func TestNativeCall(t *testing.T) {
	n := &value.Native{Name: "clock", Arty: 0, Fn: func(args []value.Value) (value.Value, error) {
		return value.Number(42), nil
	}}
	v, err := n.Call(fakeCaller{}, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Number(42), v)
}

func TestClassCallConstructsInstance(t *testing.T) {
	cls := &value.Class{Name: "Thing", Methods: map[string]*value.Function{}}
	v, err := cls.Call(fakeCaller{}, nil)
	require.NoError(t, err)
	inst, ok := v.(*value.Instance)
	require.True(t, ok)
	assert.Equal(t, "Thing", inst.Class.Name)
}
