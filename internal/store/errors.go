package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Code categorizes store failures.
type Code string

const (
	// CodeNotFound indicates a required single-row fetch found nothing,
	// or a row with a null primary identifier.
	CodeNotFound Code = "NOT_FOUND"

	// CodeInvalidArgument indicates a caller-supplied value failed a
	// precondition before any statement was issued.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeDuplicate indicates a unique-constraint violation on insert.
	CodeDuplicate Code = "DUPLICATE"

	// CodeInsertFailed, CodeUpdateFailed and CodeDeleteFailed indicate a
	// driver failure during the corresponding write; the message names
	// the failing operation.
	CodeInsertFailed Code = "INSERT_FAILED"
	CodeUpdateFailed Code = "UPDATE_FAILED"
	CodeDeleteFailed Code = "DELETE_FAILED"

	// CodeDriver carries any unclassified driver failure verbatim.
	CodeDriver Code = "DRIVER"
)

// Error is a store failure with a category and an operation-specific
// message. The underlying driver error, when present, is wrapped and
// reachable through errors.Unwrap.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying driver error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is supports errors.Is against another *Error by code.
func (e *Error) Is(target error) bool {
	var se *Error
	if errors.As(target, &se) {
		return e.Code == se.Code
	}
	return false
}

func codeOf(err error) (Code, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}

// IsNotFound reports whether err is a not-found failure.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	c, ok := codeOf(err)
	return ok && c == CodeNotFound
}

// IsInvalidArgument reports whether err is a precondition failure.
func IsInvalidArgument(err error) bool {
	c, ok := codeOf(err)
	return ok && c == CodeInvalidArgument
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	c, ok := codeOf(err)
	return ok && c == CodeDuplicate
}

func notFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func invalidArgument(message string, err error) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message, Err: err}
}

func duplicate(message string, err error) *Error {
	return &Error{Code: CodeDuplicate, Message: message, Err: err}
}

func insertFailed(message string, err error) *Error {
	return &Error{Code: CodeInsertFailed, Message: message, Err: err}
}

func updateFailed(message string, err error) *Error {
	return &Error{Code: CodeUpdateFailed, Message: message, Err: err}
}

func deleteFailed(message string, err error) *Error {
	return &Error{Code: CodeDeleteFailed, Message: message, Err: err}
}

func driverError(message string, err error) *Error {
	return &Error{Code: CodeDriver, Message: message, Err: err}
}

// isUniqueViolation reports whether err is a SQLite unique or primary-key
// constraint violation.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
		se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
