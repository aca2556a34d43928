// Package selfname inspects the simple names of runtime types.
//
// The simple name is the unqualified type name: no package path and no
// pointer markers. It is what a fixture uses to assert its own identity.
package selfname

import (
	"fmt"
	"reflect"
)

// Simple returns the simple name of v's dynamic type. Pointers are unwrapped.
// Unnamed types, and a nil v, have no simple name and yield "".
func Simple(v interface{}) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// MismatchError is returned by Check when a type's simple name differs from
// the expected one. It carries both names.
type MismatchError struct {
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("type name mismatch: expected %q, actual %q", e.Expected, e.Actual)
}

// Check compares the simple name of v's type against want and returns a
// *MismatchError when they differ.
func Check(v interface{}, want string) error {
	if got := Simple(v); got != want {
		return &MismatchError{Expected: want, Actual: got}
	}
	return nil
}
