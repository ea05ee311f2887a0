package value

import "strconv"

// Number is the single numeric type in Lox: a double-precision float.
// Division by zero follows float64 semantics (±Inf or NaN) rather than
// raising a runtime error (spec.md §9).
type Number float64

var _ Value = Number(0)

func (n Number) Type() string { return "number" }
func (n Number) Truthy() bool { return true }

// String formats n the way Lox programs expect numeric output to look:
// integral values print without a trailing ".0", with no loss of precision
// for non-integral ones.
func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
