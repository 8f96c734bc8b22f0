// Package apperr is the error-wrapping idiom shared across the module's
// service layer: a small wrapped-error type carrying a sentinel
// classification alongside a human message, so the HTTP layer can map any
// error back to a status code without string-matching its text.
package apperr

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

func (e *Error) Code() error {
	return e.code
}

// WrapErrorf wraps orig (which may be nil) with a sentinel code and a
// formatted message.
func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

var (
	ErrInternalServerError = errors.New("internal server error")
	ErrNotFound            = errors.New("requested item not found")
	ErrConflict            = errors.New("item already exists")
	ErrBadParamInput       = errors.New("given parameter is not valid")
	ErrNoPath              = errors.New("no path between start and goal")
)

// CodeOf returns the sentinel code carried by err, if err (or something it
// wraps) is an *Error; otherwise it returns ErrInternalServerError.
func CodeOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ErrInternalServerError
}
