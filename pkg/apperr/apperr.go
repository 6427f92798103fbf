package apperr

import (
	"errors"
	"net/http"
)

// Kind is the closed set of error categories the API can return.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnprocessable
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(msg string) *Error    { return &Error{Kind: KindBadRequest, Message: msg} }
func Unauthorized(msg string) *Error  { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) *Error     { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error      { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error      { return &Error{Kind: KindConflict, Message: msg} }
func Unprocessable(msg string) *Error { return &Error{Kind: KindUnprocessable, Message: msg} }
func Internal(msg string) *Error      { return &Error{Kind: KindInternal, Message: msg} }

// From extracts an *Error from err, or nil when err is not one.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	ae := From(err)
	return ae != nil && ae.Kind == k
}
