package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/koenjo741/smartcards/internal/adapter"
	"github.com/koenjo741/smartcards/internal/canon"
	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/internal/store"
	"github.com/koenjo741/smartcards/models"
)

type syncEngine struct {
	holder   store.SnapshotHolder
	recovery store.RecoveryRepository
	remote   adapter.RemoteStore

	appVersion  string
	guardWindow time.Duration

	mu    sync.Mutex
	state models.SyncState

	onConflict    func()
	onAuthExpired func()

	logger *logger.Logger
}

func NewSyncEngine(
	holder store.SnapshotHolder,
	recovery store.RecoveryRepository,
	remote adapter.RemoteStore,
	appCfg config.ClientApp,
	syncCfg config.ClientSync,
	logger *logger.Logger,
) SyncEngine {
	return &syncEngine{
		holder:      holder,
		recovery:    recovery,
		remote:      remote,
		appVersion:  appCfg.Version,
		guardWindow: syncCfg.GuardWindow,
		logger:      logger,
	}
}

// InitialLoad implements SyncEngine. The decision table is driven by three
// inputs: the crash-recovery hint, the local snapshot hash, and the remote
// document.
//
//   - no remote document: first run, keep local state; a later flush creates
//     the document.
//   - local hash equals the hint hash: the previous session ended clean, the
//     cloud copy is authoritative and is adopted.
//   - local hash differs but the remote revision still equals the hint
//     revision: the previous session crashed with unsaved edits and nobody
//     else wrote since, so local state wins and is flushed later.
//   - local hash differs and the remote revision moved: both sides diverged
//     from the hinted ancestor, conflict.
func (e *syncEngine) InitialLoad(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.CloudLoaded {
		return nil
	}

	log := logger.FromContext(ctx)

	hint, err := e.recovery.LoadHint(ctx)
	if err != nil && !errors.Is(err, store.ErrNoRecoveryHint) {
		return fmt.Errorf("load recovery hint: %w", err)
	}

	local := e.holder.Snapshot()
	localHash, err := contentHash(local)
	if err != nil {
		return fmt.Errorf("hash local snapshot: %w", err)
	}

	cloud, rev, err := e.remote.Download(ctx, "")
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		// First run against an empty store. Local state stays; the first
		// flush will create the document with an unconditional write.
		log.Debug().Str("func", "syncEngine.InitialLoad").Msg("no remote document, starting from local state")
		e.state.CloudLoaded = true
		e.state.LastSavedHash = ""
		e.state.LastServerRevision = ""
		return nil
	case errors.Is(err, adapter.ErrUnauthenticated):
		e.notifyAuthExpiredLocked()
		return fmt.Errorf("initial download: %w", err)
	case err != nil:
		return fmt.Errorf("initial download: %w", err)
	}

	cloudHash, err := contentHash(cloud)
	if err != nil {
		return fmt.Errorf("hash cloud snapshot: %w", err)
	}

	switch {
	case localHash == cloudHash:
		// Already converged; only the bookkeeping needs updating.
		e.adoptLocked(ctx, cloud, cloudHash, rev, false)

	case hint.IsZero():
		if isEmptySnapshot(local) {
			// Fresh mirror, existing cloud document: adopt it.
			e.adoptLocked(ctx, cloud, cloudHash, rev, true)
		} else {
			// Local content with no recorded ancestor. Nothing proves the
			// cloud copy descends from it, so let the user decide.
			log.Info().Str("func", "syncEngine.InitialLoad").Msg("local and cloud state diverged with no recovery hint")
			e.enterConflictLocked(rev)
		}

	case localHash == hint.Hash:
		// Previous session ended clean; cloud is authoritative.
		e.adoptLocked(ctx, cloud, cloudHash, rev, true)

	case rev == hint.Revision:
		// Crash with unsaved edits, remote untouched since our last save.
		// Keep local state dirty so the next flush uploads it.
		log.Info().Str("func", "syncEngine.InitialLoad").Msg("recovered unsaved local edits")
		e.state.LastSavedHash = hint.Hash
		e.state.LastServerRevision = rev

	default:
		log.Info().
			Str("func", "syncEngine.InitialLoad").
			Str("hint_revision", hint.Revision.String()).
			Str("remote_revision", rev.String()).
			Msg("local and cloud state diverged since last save")
		e.enterConflictLocked(rev)
	}

	e.state.CloudLoaded = true

	return nil
}

func (e *syncEngine) NoteLocalChange() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.LastLocalChange = time.Now()
}

// Flush implements SyncEngine.
func (e *syncEngine) Flush(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.CloudLoaded || e.state.HasConflict {
		return nil
	}

	log := logger.FromContext(ctx)

	local := e.holder.Snapshot()
	localHash, err := contentHash(local)
	if err != nil {
		return fmt.Errorf("hash local snapshot: %w", err)
	}
	if !e.state.Dirty(localHash) {
		return nil
	}

	// Pre-flight head check: fail fast on a moved document before paying for
	// the conditional upload. The upload's CAS still covers the remaining race.
	head, err := e.remote.LatestRevision(ctx)
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		head = ""
	case errors.Is(err, adapter.ErrUnauthenticated):
		e.notifyAuthExpiredLocked()
		return fmt.Errorf("preflight revision check: %w", err)
	case err != nil:
		log.Debug().Err(err).Str("func", "syncEngine.Flush").Msg("preflight revision check failed, will retry")
		return fmt.Errorf("preflight revision check: %w", err)
	}
	if head != e.state.LastServerRevision {
		log.Info().
			Str("func", "syncEngine.Flush").
			Str("remote_revision", head.String()).
			Msg("document moved underneath us, aborting autosave")
		e.enterConflictLocked(head)
		return nil
	}

	stamped := stampMeta(local, e.appVersion)

	rev, err := e.remote.Upload(ctx, stamped, e.state.LastServerRevision)
	switch {
	case err == nil:
		e.commitSaveLocked(ctx, localHash, rev)
		log.Debug().
			Str("func", "syncEngine.Flush").
			Str("revision", rev.String()).
			Msg("snapshot uploaded")
		return nil

	case errors.Is(err, adapter.ErrConflict):
		log.Info().Str("func", "syncEngine.Flush").Msg("upload rejected, another writer advanced the document")
		e.enterConflictLocked(e.state.LastServerRevision)
		return nil

	case errors.Is(err, adapter.ErrUnauthenticated):
		e.notifyAuthExpiredLocked()
		return fmt.Errorf("upload snapshot: %w", err)

	case errors.Is(err, adapter.ErrServerUnavailable):
		// The write may or may not have applied. Re-resolve from the head
		// revision instead of guessing.
		return e.resolveAmbiguousUploadLocked(ctx, localHash)

	default:
		// Transient transport failure; the next cycle retries.
		log.Debug().Err(err).Str("func", "syncEngine.Flush").Msg("upload failed, will retry")
		return fmt.Errorf("upload snapshot: %w", err)
	}
}

// resolveAmbiguousUploadLocked settles an upload that failed with an
// ambiguous server error by comparing the current head content against the
// body we tried to write.
func (e *syncEngine) resolveAmbiguousUploadLocked(ctx context.Context, localHash string) error {
	log := logger.FromContext(ctx)

	cloud, rev, err := e.remote.Download(ctx, "")
	if err != nil {
		log.Debug().Err(err).Str("func", "syncEngine.Flush").Msg("could not re-resolve ambiguous upload, will retry")
		return fmt.Errorf("re-resolve ambiguous upload: %w", err)
	}

	if rev == e.state.LastServerRevision {
		// Head did not move: the write never applied. Stay dirty and retry.
		return adapter.ErrServerUnavailable
	}

	cloudHash, err := contentHash(cloud)
	if err != nil {
		return fmt.Errorf("hash cloud snapshot: %w", err)
	}

	if cloudHash == localHash {
		// The write applied after all.
		e.commitSaveLocked(ctx, localHash, rev)
		log.Debug().Str("func", "syncEngine.Flush").Msg("ambiguous upload confirmed applied")
		return nil
	}

	// Someone else's write landed instead.
	e.enterConflictLocked(rev)
	return nil
}

// PollDrift implements SyncEngine.
func (e *syncEngine) PollDrift(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.CloudLoaded || e.state.HasConflict {
		return nil
	}
	if e.guardWindow > 0 && time.Since(e.state.LastLocalChange) < e.guardWindow {
		// Mid edit burst; the debounced flush owns this window.
		return nil
	}

	log := logger.FromContext(ctx)

	head, err := e.remote.LatestRevision(ctx)
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return nil
	case errors.Is(err, adapter.ErrUnauthenticated):
		e.notifyAuthExpiredLocked()
		return fmt.Errorf("poll head revision: %w", err)
	case err != nil:
		log.Debug().Err(err).Str("func", "syncEngine.PollDrift").Msg("head poll failed, will retry")
		return fmt.Errorf("poll head revision: %w", err)
	}

	if head == e.state.LastServerRevision {
		return nil
	}

	local := e.holder.Snapshot()
	localHash, err := contentHash(local)
	if err != nil {
		return fmt.Errorf("hash local snapshot: %w", err)
	}

	if e.state.Dirty(localHash) {
		log.Info().
			Str("func", "syncEngine.PollDrift").
			Str("remote_revision", head.String()).
			Msg("remote advanced over dirty local state")
		e.enterConflictLocked(head)
		return nil
	}

	cloud, rev, err := e.remote.Download(ctx, head)
	if err != nil {
		return fmt.Errorf("download drifted snapshot: %w", err)
	}
	cloudHash, err := contentHash(cloud)
	if err != nil {
		return fmt.Errorf("hash cloud snapshot: %w", err)
	}

	e.adoptLocked(ctx, cloud, cloudHash, rev, true)
	log.Debug().
		Str("func", "syncEngine.PollDrift").
		Str("revision", rev.String()).
		Msg("adopted drifted remote snapshot")

	return nil
}

// Resolve implements SyncEngine.
//
// KeepLocal re-reads the head revision and conditions the overwrite on it. A
// writer landing between that read and the upload still wins the race; the
// upload then fails with a conflict and the conflict state stays pending, to
// be resolved again against the newer document.
func (e *syncEngine) Resolve(ctx context.Context, strategy models.ResolutionStrategy) error {
	if !strategy.Valid() {
		return ErrInvalidStrategy
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.HasConflict {
		return ErrNoConflict
	}

	log := logger.FromContext(ctx)

	switch strategy {
	case models.ResolutionAcceptCloud:
		cloud, rev, err := e.remote.Download(ctx, "")
		if err != nil {
			if errors.Is(err, adapter.ErrUnauthenticated) {
				e.notifyAuthExpiredLocked()
			}
			return fmt.Errorf("download cloud snapshot for resolution: %w", err)
		}
		cloudHash, err := contentHash(cloud)
		if err != nil {
			return fmt.Errorf("hash cloud snapshot: %w", err)
		}

		e.adoptLocked(ctx, cloud, cloudHash, rev, true)
		e.state.HasConflict = false
		log.Info().Str("func", "syncEngine.Resolve").Msg("conflict resolved: adopted cloud snapshot")

	case models.ResolutionKeepLocal:
		head, err := e.remote.LatestRevision(ctx)
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			if errors.Is(err, adapter.ErrUnauthenticated) {
				e.notifyAuthExpiredLocked()
			}
			return fmt.Errorf("resolve head revision: %w", err)
		}

		local := e.holder.Snapshot()
		localHash, err := contentHash(local)
		if err != nil {
			return fmt.Errorf("hash local snapshot: %w", err)
		}

		rev, err := e.remote.Upload(ctx, stampMeta(local, e.appVersion), head)
		if err != nil {
			if errors.Is(err, adapter.ErrConflict) {
				log.Info().Str("func", "syncEngine.Resolve").Msg("keep-local lost a race with another writer, conflict stays pending")
				return fmt.Errorf("keep local snapshot: %w", err)
			}
			if errors.Is(err, adapter.ErrUnauthenticated) {
				e.notifyAuthExpiredLocked()
			}
			return fmt.Errorf("keep local snapshot: %w", err)
		}

		e.commitSaveLocked(ctx, localHash, rev)
		e.state.HasConflict = false
		log.Info().Str("func", "syncEngine.Resolve").Msg("conflict resolved: kept local snapshot")
	}

	return nil
}

// ConflictDiff implements SyncEngine.
func (e *syncEngine) ConflictDiff(ctx context.Context) (canon.DiffTree, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.HasConflict {
		return nil, ErrNoConflict
	}

	cloud, _, err := e.remote.Download(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("download cloud snapshot for diff: %w", err)
	}

	local := e.holder.Snapshot()
	local.Meta = nil
	cloud.Meta = nil

	diff, err := canon.Diff(local, cloud)
	if err != nil {
		return nil, fmt.Errorf("diff snapshots: %w", err)
	}

	return diff, nil
}

func (e *syncEngine) State() models.SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

func (e *syncEngine) OnConflict(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.onConflict = fn
}

func (e *syncEngine) OnAuthExpired(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.onAuthExpired = fn
}

// adoptLocked makes the cloud snapshot the local one and records it as the
// last saved state. When replace is false the holder already matches and only
// bookkeeping is updated.
func (e *syncEngine) adoptLocked(ctx context.Context, cloud models.Snapshot, cloudHash string, rev models.Revision, replace bool) {
	if replace {
		if err := e.holder.Replace(ctx, cloud); err != nil {
			e.logger.Err(err).Str("func", "syncEngine.adoptLocked").Msg("failed to mirror adopted snapshot")
		}
	}
	e.commitSaveLocked(ctx, cloudHash, rev)
}

// commitSaveLocked records a durably saved (hash, revision) pair and persists
// it as the crash-recovery hint.
func (e *syncEngine) commitSaveLocked(ctx context.Context, hash string, rev models.Revision) {
	e.state.LastSavedHash = hash
	e.state.LastServerRevision = rev

	hint := models.RecoveryHint{Hash: hash, Revision: rev, SavedAt: time.Now()}
	if err := e.recovery.SaveHint(ctx, hint); err != nil {
		// Not fatal: a missing hint only degrades the next startup decision.
		e.logger.Err(err).Str("func", "syncEngine.commitSaveLocked").Msg("failed to persist recovery hint")
	}
}

func (e *syncEngine) enterConflictLocked(rev models.Revision) {
	alreadyConflicted := e.state.HasConflict
	e.state.HasConflict = true
	e.state.LastServerRevision = rev

	if !alreadyConflicted && e.onConflict != nil {
		e.onConflict()
	}
}

func (e *syncEngine) notifyAuthExpiredLocked() {
	if e.onAuthExpired != nil {
		e.onAuthExpired()
	}
}

// contentHash hashes the snapshot content. Meta is bookkeeping stamped on
// every upload and is excluded, otherwise each save would immediately look
// dirty again.
func contentHash(snap models.Snapshot) (string, error) {
	snap.Meta = nil
	return canon.Hash(snap)
}

// stampMeta returns a copy of the snapshot with upload bookkeeping set.
func stampMeta(snap models.Snapshot, appVersion string) models.Snapshot {
	now := time.Now().UTC()
	snap.Meta = &models.SnapshotMeta{
		SavedAt:    &now,
		AppVersion: appVersion,
	}
	return snap
}

func isEmptySnapshot(snap models.Snapshot) bool {
	return len(snap.Projects) == 0 && len(snap.Cards) == 0 && len(snap.CustomColors) == 0
}
