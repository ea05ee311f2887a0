package interp

import "fmt"

// RuntimeError is a single dynamic error: an offending line and a message.
// Unlike the static-pass packages, only one is ever reported per run: the
// evaluator halts at the first one (spec.md §7).
type RuntimeError struct {
	Line int
	Msg  string
}

func (e *RuntimeError) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Msg) }

func runtimeErrorf(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
