package models

import (
	"errors"
	"fmt"
)

// Error codes for the booking domain. These are the outcomes a caller can
// act on; infrastructure failures are never wrapped in an Error.
const (
	CodeInvalidRange   = "invalidRange"
	CodeConflict       = "conflict"
	CodeSlotTaken      = "slotTaken"
	CodeNotFound       = "notFound"
	CodeStaleReference = "staleReference"
)

// Error is a tagged domain error returned as part of an operation's result.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidRangeError(msg string) error {
	return &Error{Code: CodeInvalidRange, Message: msg}
}

func NewConflictError(msg string) error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewSlotTakenError(msg string) error {
	return &Error{Code: CodeSlotTaken, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewStaleReferenceError(msg string) error {
	return &Error{Code: CodeStaleReference, Message: msg}
}

// ErrorCode extracts the domain code from err, or "" if err is not a
// domain error.
func ErrorCode(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCode reports whether err is a domain error with the given code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}
