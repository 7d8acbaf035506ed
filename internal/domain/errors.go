package domain

import "fmt"

// ErrKind maps domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindInvalidInput ErrKind = "invalid_input" // 400
	KindNotFound     ErrKind = "not_found"     // 404
	KindConflict     ErrKind = "conflict"      // 409
	KindReferential  ErrKind = "referential"   // 500, broken foreign key
	KindStorage      ErrKind = "storage"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Message: safe summary for clients
// - Details: optional extra context, also safe for clients
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Message string
	Details string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// ----------------------
// Invalid input (400)
// ----------------------

func ErrInvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func ErrMissingField(field string) *Error {
	return &Error{Kind: KindInvalidInput, Message: "missing required field", Details: field}
}

func ErrInvalidField(field, reason string) *Error {
	return &Error{Kind: KindInvalidInput, Message: "invalid field", Details: field + ": " + reason}
}

// ----------------------
// Not found (404)
// ----------------------

func ErrNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrConflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// ----------------------
// Storage (5xx)
// ----------------------

// ErrReferential reports a write that violated a foreign-key constraint.
// The store guarantees no row was written.
func ErrReferential(msg string, cause error) *Error {
	e := &Error{Kind: KindReferential, Message: msg, Cause: cause}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// ErrStorage wraps any database failure not otherwise classified.
// The underlying message is surfaced in Details per the API contract.
func ErrStorage(cause error) *Error {
	e := &Error{Kind: KindStorage, Message: "storage failure", Cause: cause}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}
