package reflectx

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type functionTestStruct struct{}

func (t *functionTestStruct) method() {}
func (t functionTestStruct) method2() {}

func regularFunction()   {}
func withParams(x int)   {}
func withReturn() error  { return nil }
func variadic(...string) {}

type namedFunc func(int) error

func TestFuncName(t *testing.T) {
	tests := []struct {
		name     string
		fn       interface{}
		expected string
	}{
		{"nil", nil, ""},
		{"int", 42, "int"},
		{"struct", functionTestStruct{}, "reflectx.functionTestStruct"},
		{"nil func", namedFunc(nil), ""},
		{"regular function", regularFunction, "reflectx.regularFunction"},
		{"function with params", withParams, "reflectx.withParams"},
		{"function with return", withReturn, "reflectx.withReturn"},
		{"variadic function", variadic, "reflectx.variadic"},
		{"method value", (&functionTestStruct{}).method, "reflectx.(*functionTestStruct).method"},
		{"value method value", (functionTestStruct{}).method2, "reflectx.functionTestStruct.method2"},
		{"named func type", namedFunc(withReturnInt), "reflectx.withReturnInt"},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FuncName(tt.fn))
		})
	}

	t.Run("anonymous function", func(t *testing.T) {
		got := FuncName(func() {})
		require.NotEmpty(t, got)
		require.Contains(t, got, "TestFuncName")
	})
}

func withReturnInt(int) error { return nil }
