package cast

import (
	"fmt"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// String converts v to its string form. nil converts to the empty string.
//
// Values implementing [fmt.Stringer] or error render through their own
// methods; numbers, booleans and byte slices use [cast.ToStringE]. Composite
// values such as maps, slices and plain structs are rejected.
func String(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	}

	out, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("unsupported conversion to string from %T", v)
	}

	return out, nil
}

// Int converts v to int. Integer inputs use safemath so that overflow and
// underflow are reported; other inputs (numeric strings, floats) use cast.
func Int(v any) (int, error) {
	if isIntVal(v) {
		return safemath.ConvertAny[int](v)
	}

	return cast.ToE[int](v)
}

// NonNegative is like Int but also rejects negative values.
func NonNegative(v any) (int, error) {
	n, err := Int(v)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}

	return n, nil
}

// IsInteger reports whether v's dynamic type is one of the integer types
// routed through safemath.
func IsInteger(v any) bool {
	return isIntVal(v)
}

func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
