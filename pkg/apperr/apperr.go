package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a business error so the HTTP layer can pick a status code
// without inspecting message text.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindInvalidState
	KindNotFound
	KindConflict
)

type Error struct {
	Kind  Kind
	Field string // optional; set for field-level validation failures
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Msg
	}
	return e.Msg
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func ValidationField(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
