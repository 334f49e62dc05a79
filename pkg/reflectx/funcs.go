package reflectx

import (
	"reflect"
	"runtime"
	"strings"
)

// FuncName returns a short, human readable name for a value that is used as a
// callback. Functions (including values of named func types) are named after
// the symbol the runtime reports for them, stripped of the package path and
// the "-fm" suffix of method values. Anything else is named after its type.
//
// The name is meant for logs; it is not stable across builds and must not be
// used as a key.
func FuncName(fn any) string {
	if fn == nil {
		return ""
	}

	val := reflect.ValueOf(fn)
	if val.Kind() != reflect.Func {
		return val.Type().String()
	}
	if val.IsNil() {
		return ""
	}

	rfn := runtime.FuncForPC(val.Pointer())
	if rfn == nil {
		return val.Type().String()
	}

	name := rfn.Name()
	if lastSlash := strings.LastIndex(name, "/"); lastSlash >= 0 {
		name = name[lastSlash+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
