package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	CustomString string
	CustomInt    int
	CustomStruct struct {
		Field string
	}
)

func localTypeA() TypeID {
	type msg struct{ Value int }
	return TypeIDFor[msg]()
}

func localTypeB() TypeID {
	type msg struct{ Value int }
	return TypeIDFor[msg]()
}

func TestTypeIDFor(t *testing.T) {
	t.Run("stable for the same type", func(t *testing.T) {
		assert.Equal(t, TypeIDFor[CustomStruct](), TypeIDFor[CustomStruct]())
		assert.Equal(t, TypeIDFor[string](), TypeIDFor[string]())
		assert.NotZero(t, TypeIDFor[CustomStruct]())
	})

	t.Run("distinct for named types over the same underlying type", func(t *testing.T) {
		assert.NotEqual(t, TypeIDFor[string](), TypeIDFor[CustomString]())
		assert.NotEqual(t, TypeIDFor[int](), TypeIDFor[CustomInt]())
	})

	t.Run("distinct for pointer and value", func(t *testing.T) {
		assert.NotEqual(t, TypeIDFor[CustomStruct](), TypeIDFor[*CustomStruct]())
	})

	t.Run("distinct for local types with the same name", func(t *testing.T) {
		require.Equal(t, localTypeA(), localTypeA())
		assert.NotEqual(t, localTypeA(), localTypeB())
	})

	t.Run("matches the reflected type of a value", func(t *testing.T) {
		assert.Equal(t, TypeIDFor[CustomStruct](), TypeIDOf(reflect.TypeOf(CustomStruct{Field: "x"})))
	})

	t.Run("zero for nil type", func(t *testing.T) {
		assert.Zero(t, TypeIDOf(nil))
	})
}

func TestIsNil(t *testing.T) {
	var nilFunc func()
	var nilPtr *CustomStruct
	var nilMap map[string]int
	var nilNamed namedFunc

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil func", nilFunc, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil named func", nilNamed, true},
		{"func", regularFunction, false},
		{"pointer", &CustomStruct{}, false},
		{"struct", CustomStruct{}, false},
		{"int", 0, false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNil(tt.v))
		})
	}
}
