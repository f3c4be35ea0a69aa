package nilcheck

import "reflect"

// Interface reports whether value is nil, including interfaces that wrap a
// typed nil pointer. Calling Close through such an interface would invoke the
// method on a nil receiver, so bulk-release paths use this to skip them.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
