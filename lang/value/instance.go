package value

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Instance is an instantiated object of a Class, with its own independent
// table of fields (spec.md §4.H: every instance gets its own state, even
// when constructed from the same class).
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

// NewInstance returns a new, field-less Instance of cls.
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
func (i *Instance) Type() string   { return "instance" }
func (i *Instance) Truthy() bool   { return true }

// Get reads a field or bound method named name off the instance. Fields
// shadow methods of the same name. A missing name is a NoSuchPropertyError.
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.fields.Get(name); ok {
		return v, nil
	}
	if fn, ok := i.Class.FindMethod(name); ok {
		return fn.Bind(i), nil
	}
	return nil, &NoSuchPropertyError{Class: i.Class.Name, Name: name}
}

// Set stores v into field name, creating it if it doesn't already exist;
// Lox classes have no field declarations, so any name may be assigned
// (spec.md §4.H).
func (i *Instance) Set(name string, v Value) {
	i.fields.Put(name, v)
}

// NoSuchPropertyError is returned by Instance.Get for an unknown field or
// method name.
type NoSuchPropertyError struct {
	Class string
	Name  string
}

func (e *NoSuchPropertyError) Error() string {
	return fmt.Sprintf("undefined property '%s' on %s instance", e.Name, e.Class)
}
