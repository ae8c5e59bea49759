package dynamo

import "errors"

var errEmptyDescription = errors.New("response carries no table")

// Error is a failed DynamoDB call: a short description of what ddv was
// doing and the SDK error that caused it.
type Error struct {
	Msg   string
	Cause error
}

func newError(msg string, cause error) *Error {
	return &Error{Msg: msg, Cause: cause}
}

// Error implements error.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Cause.Error()
}

// Unwrap returns the SDK error.
func (e *Error) Unwrap() error { return e.Cause }
