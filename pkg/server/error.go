package server

import (
	"errors"
	"fmt"
)

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUnprocessable well-formed request whose query cannot be answered
	ErrUnprocessable = errors.New("request cannot be processed")
)

var MessageInternalServerError string = "internal server error"

// CodeOf code of the first *Error in err's chain. Errors without one are internal.
func CodeOf(err error) error {
	var serr *Error
	if !errors.As(err, &serr) {
		return ErrInternalServerError
	}
	return serr.Code()
}
