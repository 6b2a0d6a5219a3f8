// Package apperr defines the error taxonomy shared by all services. Every
// failure a service reports carries one of four kinds, which the HTTP layer
// maps to a status code; use errors.As / the Kind helper for type-safe checks.
package apperr

import "errors"

// Kind classifies an error for the caller.
type Kind int

const (
	// KindValidation covers missing or malformed input.
	KindValidation Kind = iota
	// KindConflict covers duplicate emails and self-trade attempts.
	KindConflict
	// KindAuth covers bad credentials.
	KindAuth
	// KindNotFound covers references that resolve to nothing.
	KindNotFound
)

// Error is a terminal, human-readable service error. There are no partial
// effects: an operation that returns an Error has written nothing.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation returns a KindValidation error.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// Conflict returns a KindConflict error.
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// Auth returns a KindAuth error.
func Auth(msg string) *Error { return &Error{Kind: KindAuth, Message: msg} }

// NotFound returns a KindNotFound error.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// KindOf reports the kind of err and whether err is an apperr.Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool { k, ok := KindOf(err); return ok && k == KindValidation }
func IsConflict(err error) bool   { k, ok := KindOf(err); return ok && k == KindConflict }
func IsAuth(err error) bool       { k, ok := KindOf(err); return ok && k == KindAuth }
func IsNotFound(err error) bool   { k, ok := KindOf(err); return ok && k == KindNotFound }
