package reflectx

import "reflect"

// TypeID is the identity of a Go type, derived from the address of its runtime
// type descriptor. Identical types share a descriptor, so two TypeIDs are
// equal exactly when the types they were taken from are identical.
type TypeID uintptr

// TypeIDOf returns the identity of the provided reflect.Type.
// It returns 0 for a nil type.
func TypeIDOf(t reflect.Type) TypeID {
	if t == nil {
		return 0
	}
	return TypeID(reflect.ValueOf(t).Pointer())
}

// TypeIDFor returns the identity of the type parameter T.
//
// Unlike a name based key, this distinguishes types that print the same, for
// example two function-local types that are both called msg.
func TypeIDFor[T any]() TypeID {
	return TypeIDOf(reflect.TypeFor[T]())
}
