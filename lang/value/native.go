package value

// Native wraps a Go function as a Lox-callable native function, e.g. the
// global `clock()`.
type Native struct {
	Name string
	Arty int
	Fn   func(args []Value) (Value, error)
}

var _ Callable = (*Native)(nil)

func (n *Native) String() string { return "<native fn>" }
func (n *Native) Type() string   { return "native function" }
func (n *Native) Truthy() bool   { return true }
func (n *Native) Arity() int     { return n.Arty }

func (n *Native) Call(_ Caller, args []Value) (Value, error) {
	return n.Fn(args)
}
