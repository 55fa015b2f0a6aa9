package random

import (
	"errors"
	"fmt"
)

// RangeError is returned when a supplied [min, max) pair violates its
// domain bounds or ordering. Validation is all-or-nothing: no sampling
// occurs once a RangeError is detected.
type RangeError struct {
	msg string
}

func rangeErrorf(format string, args ...interface{}) RangeError {
	return RangeError{msg: fmt.Sprintf(format, args...)}
}

func (e RangeError) Error() string {
	return e.msg
}

// IsRangeError checks whether err is a RangeError.
func IsRangeError(err error) bool {
	var target RangeError
	return errors.As(err, &target)
}
