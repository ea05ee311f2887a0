package value

// String is a Lox string value.
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truthy() bool   { return true }
