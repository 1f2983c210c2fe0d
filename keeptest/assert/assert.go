// Package assert provides a minimal set of test helpers used across
// the project. They report failures through the standard testing
// interface, without pulling a third party matcher into the call site.
package assert

import (
	"reflect"
)

// Tester is the minimal subset of testing.TB needed by this package.
type Tester interface {
	Helper()
	Fatalf(msg string, args ...interface{})
}

// Nil fails the test if the value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		t.Fatalf("want a nil value, got %v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Equal fails the test if the two values are not equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal\nwant %v\n got %v", want, got)
	}
}

// Panics runs the function and fails the test unless it panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
}
