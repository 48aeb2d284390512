package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is. Every concrete error
// type in this package unwraps to one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsDuplicated = errors.New("value is duplicated")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAccessForbidden   = errors.New("access forbidden")
)

// sanitize flattens multi-line input so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
// ParamName names the lookup parameter and ID carries the value that missed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the error
// that surfaced the miss (for example a driver-level lookup failure).
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a value that is present but malformed or
// outside its allowed domain.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with the error
// explaining why the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsDuplicatedError indicates a uniqueness violation, for example an order
// number that lost the race against a concurrent insert.
type ValueIsDuplicatedError struct {
	ParamName string
	Cause     error
}

// NewValueIsDuplicatedError creates a ValueIsDuplicatedError without a cause.
func NewValueIsDuplicatedError(paramName string) *ValueIsDuplicatedError {
	return &ValueIsDuplicatedError{ParamName: paramName}
}

// NewValueIsDuplicatedErrorWithCause creates a ValueIsDuplicatedError wrapping the
// constraint violation reported by the persistence layer.
func NewValueIsDuplicatedErrorWithCause(paramName string, cause error) *ValueIsDuplicatedError {
	return &ValueIsDuplicatedError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsDuplicatedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsDuplicated, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsDuplicated, e.ParamName))
}

func (e *ValueIsDuplicatedError) Unwrap() error {
	return ErrValueIsDuplicated
}

// UnauthorizedError indicates that no authenticated identity is present.
// Distinct from AccessForbiddenError, which means the identity is known but
// lacks the required rights.
type UnauthorizedError struct {
	Cause error
}

// NewUnauthorizedError creates an UnauthorizedError without a cause.
func NewUnauthorizedError() *UnauthorizedError {
	return &UnauthorizedError{}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping the
// token-verification failure that triggered it.
func NewUnauthorizedErrorWithCause(cause error) *UnauthorizedError {
	return &UnauthorizedError{Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: sign in required (cause: %s)", ErrUnauthorized, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: sign in required", ErrUnauthorized))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// AccessForbiddenError indicates an authenticated caller without sufficient
// rights for the attempted action.
type AccessForbiddenError struct {
	Message string
	Cause   error
}

// NewAccessForbiddenError creates an AccessForbiddenError with a short
// human-readable reason safe to return to the caller.
func NewAccessForbiddenError(message string) *AccessForbiddenError {
	return &AccessForbiddenError{Message: message}
}

// NewAccessForbiddenErrorWithCause creates an AccessForbiddenError with a cause.
func NewAccessForbiddenErrorWithCause(message string, cause error) *AccessForbiddenError {
	return &AccessForbiddenError{Message: message, Cause: cause}
}

func (e *AccessForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrAccessForbidden, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAccessForbidden, e.Message))
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}
