package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error for HTTP status mapping.
type Kind int

const (
	// KindInternal covers store failures and anything unclassified.
	KindInternal Kind = iota
	// KindValidation covers bad or missing input.
	KindValidation
	// KindNotFound covers lookups by unknown id, username, email, city or category.
	KindNotFound
	// KindConflict covers duplicate username/email on create or update.
	KindConflict
)

// Error is a domain error carrying a kind and a client-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation builds a KindValidation error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure. The cause is folded into the message
// so it surfaces in the error envelope.
func Internal(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps a domain error to its response status code.
// Conflicts surface as 400, matching the API contract.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
