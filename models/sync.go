package models

import "time"

// SyncState is the sync engine's view of where the local snapshot stands
// relative to the remote document. It is rebuilt at every process start and
// never persisted remotely; only LastSavedHash/LastServerRevision are
// mirrored to the local recovery slot as a crash-recovery hint.
type SyncState struct {
	// LastSavedHash is the content hash of the last snapshot known to be
	// durably stored on the remote.
	LastSavedHash string

	// LastServerRevision is the remote revision observed at that save/load.
	LastServerRevision Revision

	// HasConflict is set when local and remote snapshots have diverged from a
	// common ancestor and can only be reconciled by an explicit user choice.
	HasConflict bool

	// CloudLoaded gates the initial-load sequence so it runs once per session.
	CloudLoaded bool

	// LastLocalChange is the time of the most recent local mutation; the
	// drift poll uses it as a guard window around active edit bursts.
	LastLocalChange time.Time
}

// Dirty reports whether the given current content hash differs from the last
// durably saved one.
func (s SyncState) Dirty(currentHash string) bool {
	return currentHash != s.LastSavedHash
}

// RecoveryHint is the durable (hash, revision) pair surviving process
// restarts. At startup it tells the engine whether the previous session ended
// with unsaved local edits, in which case the initial load must not overwrite
// local state.
type RecoveryHint struct {
	Hash     string
	Revision Revision
	SavedAt  time.Time
}

// IsZero reports whether no hint has ever been persisted.
func (h RecoveryHint) IsZero() bool {
	return h.Hash == "" && h.Revision.IsZero()
}

// ResolutionStrategy selects how a sync conflict is resolved. Both strategies
// require an explicit user action; the engine never picks one by itself.
type ResolutionStrategy string

const (
	// ResolutionAcceptCloud discards local edits and adopts the remote
	// snapshot as-is.
	ResolutionAcceptCloud ResolutionStrategy = "accept_cloud"

	// ResolutionKeepLocal overwrites the remote document with the local
	// snapshot. This is last-writer-wins by consent, not by default.
	ResolutionKeepLocal ResolutionStrategy = "keep_local"
)

// Valid reports whether the strategy is one of the two supported values.
func (r ResolutionStrategy) Valid() bool {
	return r == ResolutionAcceptCloud || r == ResolutionKeepLocal
}
