package assert

import (
	"encoding"
	"fmt"
	"reflect"
)

// Render reports whether v has a human-readable text form and, if so,
// returns it. Strings, booleans and numeric values render via their
// default formatting; fmt.Stringer, error and encoding.TextMarshaler
// implementations render through those interfaces. Structs, slices,
// maps, pointers, channels and funcs without one of the interfaces do
// not render, which is what keeps them out of failure diagnostics.
func Render(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	case error:
		return t.Error(), true
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return "", false
		}
		return string(b), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}
