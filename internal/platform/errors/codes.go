// Package errors provides structured error handling for the blog service.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Auth errors
	CodeEmailTaken      Code = "AUTH_EMAIL_TAKEN"
	CodeEmailUnknown    Code = "AUTH_EMAIL_UNKNOWN"
	CodeWrongPassword   Code = "AUTH_WRONG_PASSWORD"
	CodeUnauthenticated Code = "AUTH_UNAUTHENTICATED"
	CodeForbidden       Code = "AUTH_FORBIDDEN"

	// Validation errors
	CodeEmailInvalid  Code = "VALIDATION_EMAIL_INVALID"
	CodeFieldRequired Code = "VALIDATION_FIELD_REQUIRED"
	CodeURLInvalid    Code = "VALIDATION_URL_INVALID"

	// Post errors
	CodePostTitleTaken Code = "POST_TITLE_TAKEN"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeEmailInvalid,
		CodeFieldRequired,
		CodeURLInvalid:
		return http.StatusBadRequest

	// Conflict - unique resource constraint
	case CodeEmailTaken,
		CodePostTitleTaken:
		return http.StatusConflict

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return http.StatusNotFound

	case CodeUnauthenticated,
		CodeEmailUnknown,
		CodeWrongPassword:
		return http.StatusUnauthorized

	case CodeForbidden:
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}
