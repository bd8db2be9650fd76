package hapi

import "fmt"

// Error is the failure raised by the procedural engine side, either by a
// transform source while sampling or while assembling a clip.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hapi %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}
