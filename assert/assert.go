// Package assert provides minimal test assertions with a uniform
// (t, expected, actual, message) signature.
package assert

import (
	"reflect"
	"strings"
	"testing"
)

// Equal fails the test if want and got are not deeply equal.
func Equal(t *testing.T, want, got any, msg string) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Errorf("%s: want %v, got %v", msg, want, got)
	}
}

// NotEqual fails the test if want and got are deeply equal.
func NotEqual(t *testing.T, want, got any, msg string) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		t.Errorf("%s: did not expect %v", msg, want)
	}
}

// True fails the test if cond is false.
func True(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Errorf("%s: expected true", msg)
	}
}

// False fails the test if cond is true.
func False(t *testing.T, cond bool, msg string) {
	t.Helper()
	if cond {
		t.Errorf("%s: expected false", msg)
	}
}

// Nil fails the test if v is not nil.
func Nil(t *testing.T, v any, msg string) {
	t.Helper()
	if !isNil(v) {
		t.Errorf("%s: expected nil, got %v", msg, v)
	}
}

// NotNil fails the test if v is nil.
func NotNil(t *testing.T, v any, msg string) {
	t.Helper()
	if isNil(v) {
		t.Errorf("%s: expected non-nil", msg)
	}
}

// NoError fails the test if err is non-nil.
func NoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", msg, err)
	}
}

// Error fails the test if err is nil.
func Error(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error", msg)
	}
}

// Len fails the test if v does not have length want. v must be a slice,
// array, map, string, or channel.
func Len(t *testing.T, v any, want int, msg string) {
	t.Helper()
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		if rv.Len() != want {
			t.Errorf("%s: want length %d, got %d", msg, want, rv.Len())
		}
	default:
		t.Errorf("%s: value of kind %s has no length", msg, rv.Kind())
	}
}

// Contains fails the test if s does not contain substr.
func Contains(t *testing.T, s, substr, msg string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("%s: %q does not contain %q", msg, s, substr)
	}
}

// Greater fails the test if a <= b.
func Greater(t *testing.T, a, b int, msg string) {
	t.Helper()
	if a <= b {
		t.Errorf("%s: expected %d > %d", msg, a, b)
	}
}

// GreaterOrEqual fails the test if a < b.
func GreaterOrEqual(t *testing.T, a, b int, msg string) {
	t.Helper()
	if a < b {
		t.Errorf("%s: expected %d >= %d", msg, a, b)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
