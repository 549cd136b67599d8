package devstore

import "errors"

var (
	// ErrNoDocument is returned when a user has never uploaded a document.
	ErrNoDocument = errors.New("no document stored")

	// ErrUnknownRevision is returned when a download names a revision the
	// store has never assigned.
	ErrUnknownRevision = errors.New("unknown revision")

	// ErrRevisionMismatch is returned when a conditional upload names a
	// parent revision that is no longer current.
	ErrRevisionMismatch = errors.New("revision mismatch")

	// ErrEmptyAuthorizationHeader is returned when the Authorization header
	// is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
