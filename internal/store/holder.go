package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/models"
)

type snapshotHolder struct {
	mu       sync.RWMutex
	snapshot models.Snapshot

	repository SnapshotRepository
	changes    chan struct{}
	logger     *logger.Logger
}

// NewSnapshotHolder loads the mirrored snapshot from the repository, or starts
// from an empty snapshot when the mirror is fresh.
func NewSnapshotHolder(ctx context.Context, repository SnapshotRepository, log *logger.Logger) (SnapshotHolder, error) {
	snap, err := repository.LoadSnapshot(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshotStored):
		log.Debug().Str("func", "NewSnapshotHolder").Msg("no mirrored snapshot found, starting empty")
		snap = models.Snapshot{}
	case err != nil:
		log.Err(err).Str("func", "NewSnapshotHolder").Msg("failed to load mirrored snapshot")
		return nil, fmt.Errorf("failed to load mirrored snapshot: %w", err)
	}

	return &snapshotHolder{
		snapshot:   snap,
		repository: repository,
		changes:    make(chan struct{}, 1),
		logger:     log,
	}, nil
}

func (h *snapshotHolder) Snapshot() models.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.snapshot.Clone()
}

func (h *snapshotHolder) Replace(ctx context.Context, snap models.Snapshot) error {
	h.mu.Lock()
	h.snapshot = snap.Clone()
	h.mu.Unlock()

	if err := h.repository.SaveSnapshot(ctx, snap); err != nil {
		h.logger.Err(err).Str("func", "snapshotHolder.Replace").Msg("failed to mirror replaced snapshot")
		return fmt.Errorf("failed to mirror replaced snapshot: %w", err)
	}

	return nil
}

func (h *snapshotHolder) Mutate(ctx context.Context, fn func(snap *models.Snapshot)) error {
	h.mu.Lock()
	next := h.snapshot.Clone()
	fn(&next)
	h.snapshot = next
	h.mu.Unlock()

	h.notify()

	if err := h.repository.SaveSnapshot(ctx, next); err != nil {
		h.logger.Err(err).Str("func", "snapshotHolder.Mutate").Msg("failed to mirror mutated snapshot")
		return fmt.Errorf("failed to mirror mutated snapshot: %w", err)
	}

	return nil
}

func (h *snapshotHolder) Changes() <-chan struct{} {
	return h.changes
}

// notify delivers a coalesced change signal: if a signal is already pending,
// the new one is dropped and the consumer still wakes exactly once.
func (h *snapshotHolder) notify() {
	select {
	case h.changes <- struct{}{}:
	default:
	}
}
