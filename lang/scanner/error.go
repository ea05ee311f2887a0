package scanner

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a single scan error: an offending line and a message.
type Error struct {
	Line int
	Msg  string
}

func (e Error) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Msg) }

// ErrorList collects every Error found while scanning a source, so that a
// single pass can report more than one problem instead of stopping at the
// first.
type ErrorList []Error

func (el *ErrorList) Add(line int, msg string) {
	*el = append(*el, Error{Line: line, Msg: msg})
}

func (el ErrorList) Len() int      { return len(el) }
func (el ErrorList) Swap(i, j int) { el[i], el[j] = el[j], el[i] }
func (el ErrorList) Less(i, j int) bool {
	return el[i].Line < el[j].Line
}

// Sort orders the list by line number.
func (el ErrorList) Sort() { sort.Stable(el) }

// Err returns el as an error, or nil if el is empty.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

func (el ErrorList) Error() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
