package reflectx

import "reflect"

// IsNil reports whether v is nil or holds a nil value of a nillable kind
// (func, pointer, map, slice, chan or interface).
//
// A typed nil stored in an interface is not == nil, which is how an
// unassigned func value wrapped in a named func type slips past a plain
// nil comparison.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return val.IsNil()
	default:
		return false
	}
}
