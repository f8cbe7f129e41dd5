package lisp

import "fmt"

// Errno is an error code
type Errno int

// Posible Errno values
const (
	ErrnoInvalid Errno = iota
	ErrnoDivByZero
	ErrnoBadOp
	ErrnoBadNum
	ErrnoIncorrectParamCount
	ErrnoEmptyList
	ErrnoWrongType
	ErrnoUnboundSymbol
	ErrnoInterrupt
)

var errnoStrings = []string{
	ErrnoInvalid:             "INVALID",
	ErrnoDivByZero:           "division by zero",
	ErrnoBadOp:               "not a valid operator",
	ErrnoBadNum:              "argument is not a number",
	ErrnoIncorrectParamCount: "incorrect number of arguments",
	ErrnoEmptyList:           "empty list",
	ErrnoWrongType:           "wrong type",
	ErrnoUnboundSymbol:       "unbound symbol",
	ErrnoInterrupt:           "interrupt",
}

func (n Errno) String() string {
	if n < 0 || int(n) >= len(errnoStrings) {
		return errnoStrings[ErrnoInvalid]
	}
	return errnoStrings[n]
}

// Error returns an LVal representing an error with the given errno and a
// message that is the errno's description.
func Error(errno Errno) *LVal {
	return &LVal{
		Type:  LError,
		Errno: errno,
		Str:   errno.String(),
	}
}

// Errorf returns an LVal representing an error with the given errno and a
// message formed by appending the formatted detail to the errno's
// description.
func Errorf(errno Errno, format string, v ...interface{}) *LVal {
	return &LVal{
		Type:  LError,
		Errno: errno,
		Str:   errno.String() + ": " + fmt.Sprintf(format, v...),
	}
}

// IsInterrupt returns true if v is an error requesting that the host stop
// evaluating input.
func (v *LVal) IsInterrupt() bool {
	return v.Type == LError && v.Errno == ErrnoInterrupt
}

// ErrorVal implements the error interface so that errors can be first class lisp
// objects.  The error message is stored in the Str field while the call stack
// at the time of the error is kept in Stack.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return e.Str
}

// Is reports whether target is an *ErrorVal with the same Errno, allowing
// errors.Is(err, lisp.GoError(lisp.Error(lisp.ErrnoDivByZero))).
func (e *ErrorVal) Is(target error) bool {
	t, ok := target.(*ErrorVal)
	return ok && t.Errno == e.Errno
}

// GoError returns an error that represents e.  If e is not LError then nil is
// returned.
func GoError(e *LVal) error {
	if e == nil || e.Type != LError {
		return nil
	}
	return (*ErrorVal)(e)
}

// ErrnoOf returns the Errno of err if err is a lisp error.
func ErrnoOf(err error) (Errno, bool) {
	lerr, ok := err.(*ErrorVal)
	if !ok {
		return ErrnoInvalid, false
	}
	return lerr.Errno, true
}
