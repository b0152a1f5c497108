package sentience

import (
	"errors"
	"fmt"
)

// Errno identifies the kind of a runtime failure.
type Errno int

// Possible Errno values
const (
	ErrnoTypeMismatch Errno = iota
	ErrnoUnsupportedOp
	ErrnoDivZero
	ErrnoIndexRange
	ErrnoNoVar
	ErrnoArity
	ErrnoBadNum
	ErrnoIO
)

var errnoStrings = []string{
	ErrnoTypeMismatch:  "type mismatch",
	ErrnoUnsupportedOp: "unsupported operation",
	ErrnoDivZero:       "division by zero",
	ErrnoIndexRange:    "index out of range",
	ErrnoNoVar:         "undefined variable",
	ErrnoArity:         "bad argument",
	ErrnoBadNum:        "bad number",
	ErrnoIO:            "io error",
}

func (n Errno) String() string {
	if n < 0 || int(n) >= len(errnoStrings) {
		return "unknown"
	}
	return errnoStrings[n]
}

// Error is a runtime failure tagged with the Errno describing its kind.
// Every failing path in this package surfaces an *Error to the caller; none
// are retried or swallowed internally.
type Error struct {
	Errno Errno
	Msg   string
}

func (e *Error) Error() string {
	return e.Msg
}

// Errorf returns an *Error with a formatted message.
func Errorf(errno Errno, format string, v ...interface{}) *Error {
	return &Error{Errno: errno, Msg: fmt.Sprintf(format, v...)}
}

// ErrnoOf extracts the failure kind from an error produced by this package.
// The second return is false when err did not originate here.
func ErrnoOf(err error) (Errno, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Errno, true
	}
	return 0, false
}
