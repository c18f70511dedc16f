package pipe

import (
	"context"
	"errors"
	"reflect"
	"strconv"
)

// IsNil reports whether i is nil or holds a nil pointer, func, map, channel,
// slice or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func nilStepMessage(caller string, position int) string {
	return caller + ": step " + strconv.Itoa(position) + " must not be nil"
}

// CheckStep panics with a message naming the caller and the 1-based position
// of the step when it is nil. Typed chains use it since their steps do not
// share one type.
func CheckStep(caller string, position int, step any) {
	if IsNil(step) {
		panic(nilStepMessage(caller, position))
	}
}
