package response

import (
	"errors"
	"net/http"
)

// Error is a domain error that knows the HTTP status it maps to.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

// Wrap keeps the status of base and the sentinel identity while adding
// detail for the client, e.g. which query parameter was malformed.
func Wrap(base error, detail string) error {
	var b *Error
	if !errors.As(base, &b) {
		return &Error{http.StatusInternalServerError, errors.New(detail)}
	}
	return &Error{b.Code, &detailed{base: b, detail: detail}}
}

type detailed struct {
	base   *Error
	detail string
}

func (d *detailed) Error() string {
	return d.base.Error() + ": " + d.detail
}

func (d *detailed) Unwrap() error {
	return d.base
}

// StatusCode returns the HTTP status carried by err, or 500.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
