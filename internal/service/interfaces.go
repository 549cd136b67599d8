// Package service implements the client's sync engine: the state machine
// that keeps the local snapshot and the remote document converged through
// debounced autosaves, periodic drift polls, and explicit conflict
// resolution.
package service

import (
	"context"

	"github.com/koenjo741/smartcards/internal/canon"
	"github.com/koenjo741/smartcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncEngine defines the sync state machine. All methods are safe for
// concurrent use; the background job and the UI call into the same engine.
type SyncEngine interface {
	// InitialLoad runs the once-per-session load sequence: it consults the
	// crash-recovery hint, downloads the remote document, and decides
	// whether to adopt the cloud snapshot, keep local state, or flag a
	// conflict. It is idempotent; subsequent calls after a success are
	// no-ops.
	InitialLoad(ctx context.Context) error

	// NoteLocalChange records the time of a local mutation. The drift poll
	// uses it as a guard window around active edit bursts.
	NoteLocalChange()

	// Flush uploads the local snapshot if it diverged from the last saved
	// state. It is the debounced autosave body: a no-op when clean, when a
	// conflict is pending, or before the initial load has completed.
	Flush(ctx context.Context) error

	// PollDrift compares the remote head revision against the last one seen
	// and pulls the remote snapshot when it advanced while local state is
	// clean. A remote advance over dirty local state flags a conflict.
	PollDrift(ctx context.Context) error

	// Resolve ends a pending conflict with the given strategy. AcceptCloud
	// discards local edits and adopts the remote snapshot; KeepLocal
	// overwrites the remote document with local state.
	Resolve(ctx context.Context, strategy models.ResolutionStrategy) error

	// ConflictDiff reports the structural differences between the local and
	// remote snapshots of a pending conflict, for display purposes only.
	ConflictDiff(ctx context.Context) (canon.DiffTree, error)

	// State returns a copy of the current sync state.
	State() models.SyncState

	// OnConflict registers a hook invoked whenever a new conflict is
	// detected. The hook runs on the engine's calling goroutine and must
	// not block.
	OnConflict(fn func())

	// OnAuthExpired registers a hook invoked when the remote store rejects
	// the session. Auth failures end the session; the engine never retries
	// them.
	OnAuthExpired(fn func())
}

// SyncJob defines the contract for the background worker that drives a
// [SyncEngine]: it debounces change notifications into flushes and runs the
// periodic drift poll.
type SyncJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped before the new one begins.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated, flushing pending local changes on the way out.
	Stop()

	// TriggerSync requests an immediate drift poll out of cycle, bypassing
	// the poll interval but not the debounce quiet period. Safe to call when
	// the job is not running (no-op in that case).
	TriggerSync()
}
