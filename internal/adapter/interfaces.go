// Package adapter provides the transport-layer client for the remote
// document store.
//
// The primary abstraction is [RemoteStore]: three operations over an opaque
// conditional-write blob service. Any object storage with compare-and-swap
// writes satisfies the contract; the package ships an HTTP implementation
// ([NewHTTPRemoteStore]) speaking the built-in devstore protocol.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthenticated] for 401).
package adapter

import (
	"context"

	"github.com/koenjo741/smartcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic access to the remote snapshot
// document. Implementations are responsible for serialisation, auth header
// management, and mapping transport-level failures to the sentinel errors of
// this package.
type RemoteStore interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "" if none is set.
	Token() string

	// LatestRevision fetches the store's current revision without
	// downloading content. It must bypass any caching layer so a stale
	// cached revision can never mask a concurrent write. Returns
	// [ErrNotFound] when no document exists yet.
	LatestRevision(ctx context.Context) (models.Revision, error)

	// Download fetches the document. When rev is zero it first resolves the
	// latest revision, then fetches that exact revision's content, so the
	// returned snapshot and revision are always a mutually consistent pair.
	// Returns [ErrNotFound] when the document or revision does not exist.
	Download(ctx context.Context, rev models.Revision) (models.Snapshot, models.Revision, error)

	// Upload writes the snapshot. When parent is non-zero the write is
	// conditional: the store accepts it only if its current revision still
	// equals parent ([ErrConflict] otherwise). A zero parent overwrites
	// unconditionally, which is how the document is first created.
	// [ErrServerUnavailable] is ambiguous — the write may or may not have
	// applied; callers must re-resolve via LatestRevision before assuming
	// either outcome.
	Upload(ctx context.Context, snap models.Snapshot, parent models.Revision) (models.Revision, error)
}
