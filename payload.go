package regbus

import (
	"fmt"
	"reflect"
)

// CheckPayload verifies at run time that T satisfies the payload contract:
// a fixed-size, copy-by-value type with no owned indirection. It rejects
// pointers, slices, maps, strings, channels, funcs, and interfaces anywhere
// inside T.
//
// Channel operations never perform this check; it is a test- and setup-time
// helper so payload mistakes surface in CI rather than as silently shared
// memory between producer and consumers.
func CheckPayload[T any]() error {
	return checkPayloadType(reflect.TypeFor[T](), "")
}

func checkPayloadType(t reflect.Type, path string) error {
	at := func() string {
		if path == "" {
			return t.String()
		}
		return fmt.Sprintf("%s (at %s)", t.String(), path)
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return checkPayloadType(t.Elem(), path+"[]")
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fieldPath := f.Name
			if path != "" {
				fieldPath = path + "." + f.Name
			}
			if err := checkPayloadType(f.Type, fieldPath); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("regbus: payload must be fixed-size and indirection-free, %s is a %s", at(), t.Kind())
	}
}
