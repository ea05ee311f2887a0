package interp

import "github.com/mna/lox/lang/value"

// returnSignal and breakSignal are internal, typed unwinding signals: the
// tree-walk propagates them up through ordinary Go error returns rather
// than panicking, and they are caught at the call boundary and the nearest
// enclosing loop respectively (spec.md §4.H, §7). Neither ever escapes to
// the driver; a signal reaching Run would be a bug.
type returnSignal struct {
	Value value.Value
}

func (returnSignal) Error() string { return "return outside of a function call" }

type breakSignal struct{}

func (breakSignal) Error() string { return "break outside of a loop" }
