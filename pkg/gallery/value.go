package gallery

import (
	"fmt"
	"reflect"
	"strconv"
)

// Value wraps a record field exactly as it was supplied. Numbers, booleans and
// other non-string inputs are stored untouched and converted by String.
type Value struct {
	raw any
}

// ValueOf wraps v. Passing an existing Value returns it unchanged.
func ValueOf(v any) Value {
	if existing, ok := v.(Value); ok {
		return existing
	}
	return Value{raw: v}
}

// Raw returns the value as supplied to the constructor.
func (v Value) Raw() any {
	return v.raw
}

// IsZero reports whether the value was never set or set to nil.
func (v Value) IsZero() bool {
	return v.raw == nil
}

// String returns the textual form used during rendering. nil, including a
// typed nil pointer, renders as "".
func (v Value) String() string {
	switch raw := v.raw.(type) {
	case nil:
		return ""
	case string:
		return raw
	case []byte:
		return string(raw)
	case int:
		return strconv.Itoa(raw)
	case int64:
		return strconv.FormatInt(raw, 10)
	case float64:
		return strconv.FormatFloat(raw, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(raw), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(raw)
	case fmt.Stringer:
		if isNilPointer(raw) {
			return ""
		}
		return raw.String()
	default:
		return fmt.Sprint(raw)
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
