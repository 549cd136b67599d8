// Package store implements local persistence for the client: the in-memory
// snapshot holder with its durable SQLite mirror, and the crash-recovery
// slot consulted by the sync engine at startup.
package store

import (
	"context"

	"github.com/koenjo741/smartcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotHolder owns the mutable application snapshot. The sync engine
// consumes reads, bulk replaces, and mutation notifications; all value-level
// editing goes through Mutate on the producer side.
type SnapshotHolder interface {
	// Snapshot returns a deep copy of the current snapshot.
	Snapshot() models.Snapshot

	// Replace swaps the whole snapshot, persists it to the mirror, and does
	// NOT count as a local mutation (no change notification): it is the
	// sync engine's own write path for pulled remote content.
	Replace(ctx context.Context, snap models.Snapshot) error

	// Mutate applies fn to a copy of the snapshot, persists the result, and
	// notifies subscribers. Local edits always succeed in memory; a mirror
	// write failure is returned but does not roll the edit back.
	Mutate(ctx context.Context, fn func(snap *models.Snapshot)) error

	// Changes returns the channel on which mutation notifications are
	// delivered. Notifications are coalesced: a slow consumer observes at
	// least one signal for any burst of edits.
	Changes() <-chan struct{}
}

// SnapshotRepository is the durable mirror of the snapshot.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snap models.Snapshot) error
	LoadSnapshot(ctx context.Context) (models.Snapshot, error)
}

// RecoveryRepository is the durable (hash, revision) crash-recovery slot.
type RecoveryRepository interface {
	SaveHint(ctx context.Context, hint models.RecoveryHint) error
	LoadHint(ctx context.Context) (models.RecoveryHint, error)
}
