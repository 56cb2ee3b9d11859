// Package apperr defines the error kinds shared by services and HTTP handlers.
package apperr

import "errors"

type Kind int

const (
	KindPersistence Kind = iota
	KindValidation
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "persistence"
	}
}

// Error is a user-facing failure. Message is safe to return to clients.
type Error struct {
	Kind        Kind
	Message     string
	EmptyFields []string
	Err         error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string, emptyFields ...string) *Error {
	return &Error{Kind: KindValidation, Message: msg, EmptyFields: emptyFields}
}

func Conflict(msg string, err error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are persistence failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// Is reports whether err is an *Error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
