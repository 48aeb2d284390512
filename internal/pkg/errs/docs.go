// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps directly onto the service's error taxonomy:
//   - ValueIsRequiredError: a required value is missing (HTTP 400)
//   - ValueIsInvalidError: a value is present but invalid (HTTP 400)
//   - ObjectNotFoundError: a referenced object does not exist (HTTP 404)
//   - ValueIsDuplicatedError: a uniqueness constraint was violated
//   - UnauthorizedError: no authenticated identity (HTTP 401)
//   - AccessForbiddenError: identity present, insufficient rights (HTTP 403)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Handlers never branch on error strings; they classify with errors.Is against
// the sentinels and translate to HTTP status codes at the boundary.
package errs
