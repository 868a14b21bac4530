// Provides a tiny assertion and test-runner toolkit:
// test cases are plain values, run by Run, which returns a
// structured Report, written to a terminal by WriteReport.
//
// The assertions return a non nil error describing the failure.
package svgtest

import (
	"errors"
	"fmt"
	"reflect"
)

// isSequence returns true for slices and arrays.
func isSequence(v interface{}) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// strictEqual requires the same dynamic type.
// NaN is not equal to itself.
func strictEqual(expected, actual interface{}) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}
	ve, va := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if ve.Type() != va.Type() {
		return false
	}
	// the dynamic values may hold slices behind interface fields
	if ve.Comparable() && va.Comparable() {
		return expected == actual
	}
	return reflect.DeepEqual(expected, actual)
}

// AssertTrue checks that `condition` is true.
func AssertTrue(condition bool) error {
	if !condition {
		return errors.New("Expected TRUE but was FALSE")
	}
	return nil
}

// AssertFalse checks that `condition` is false.
func AssertFalse(condition bool) error {
	if condition {
		return errors.New("Expected FALSE but was TRUE")
	}
	return nil
}

// AssertEquals checks that `expected` and `actual` have the same type and value.
// It refuses to compare two slices or arrays: use AssertArrayEquals instead.
func AssertEquals(expected, actual interface{}) error {
	if isSequence(expected) && isSequence(actual) {
		return errors.New("Both parameters are arrays.\nFix parameters or use AssertArrayEquals() instead.")
	}
	if !strictEqual(expected, actual) {
		return fmt.Errorf("Expected %v of type %s\n but was %v of type %s",
			expected, typeName(expected), actual, typeName(actual))
	}
	return nil
}

// AssertArrayEquals checks that two slices or arrays have the same
// elements in the same order. Nested sequences are compared recursively,
// other elements with AssertEquals.
func AssertArrayEquals(expected, actual interface{}) error {
	if !isSequence(expected) || !isSequence(actual) {
		return fmt.Errorf("Both parameters must be arrays.\nYour parameter types are %s and %s\nFix parameters or use AssertEquals() instead.",
			typeName(expected), typeName(actual))
	}
	if err := arrayEquals(reflect.ValueOf(expected), reflect.ValueOf(actual)); err != nil {
		return fmt.Errorf("%s\nExpected array: %v\n  Actual array: %v", err, expected, actual)
	}
	return nil
}

func arrayEquals(expected, actual reflect.Value) error {
	if expected.Len() != actual.Len() {
		return fmt.Errorf("Arrays are of different lengths.\nExpected Length: %d\n  Actual Length: %d",
			expected.Len(), actual.Len())
	}
	for i := 0; i < expected.Len(); i++ {
		exp, act := expected.Index(i).Interface(), actual.Index(i).Interface()
		var err error
		if isSequence(exp) && isSequence(act) {
			err = arrayEquals(reflect.ValueOf(exp), reflect.ValueOf(act))
		} else {
			err = AssertEquals(exp, act)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// AssertNull checks that `value` is nil, either untyped
// or a nil pointer, slice, map, channel, function or interface.
func AssertNull(value interface{}) error {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return nil
		}
	}
	return fmt.Errorf("Expected NULL but was %v", value)
}
