package service

import (
	"context"
	"sync"
	"time"

	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/store"
)

type syncJob struct {
	engine SyncEngine
	holder store.SnapshotHolder
	cfg    config.ClientSync

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	trigger chan struct{}
}

// NewSyncJob creates a syncJob that drives engine from holder change
// notifications, a debounce timer, and a drift poll ticker. The job is idle
// until Start is called.
func NewSyncJob(engine SyncEngine, holder store.SnapshotHolder, cfg config.ClientSync) SyncJob {
	return &syncJob{
		engine:  engine,
		holder:  holder,
		cfg:     cfg,
		trigger: make(chan struct{}, 1),
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine with three wake sources: holder change
// notifications arm the debounce timer, the timer firing flushes, and the
// poll ticker checks for remote drift. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.run(jobCtx)
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// TriggerSync implements SyncJob. The request is coalesced: if a trigger is
// already pending, the new one is dropped. A trigger bypasses the poll
// interval but not the debounce quiet period.
func (j *syncJob) TriggerSync() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

func (j *syncJob) run(ctx context.Context) {
	debounce := time.NewTimer(j.cfg.DebounceDelay)
	stopTimer(debounce)
	defer debounce.Stop()

	poll := time.NewTicker(j.cfg.PollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			// Flush pending edits before exiting; a fresh context because
			// ctx is already cancelled.
			flushCtx, cancel := context.WithTimeout(context.Background(), j.cfg.DebounceDelay)
			_ = j.engine.Flush(flushCtx)
			cancel()
			return

		case <-j.holder.Changes():
			j.engine.NoteLocalChange()
			stopTimer(debounce)
			debounce.Reset(j.cfg.DebounceDelay)

		case <-debounce.C:
			_ = j.engine.Flush(ctx)

		case <-poll.C:
			_ = j.engine.PollDrift(ctx)

		case <-j.trigger:
			// Only the poll runs out of cycle; pending edits stay on the
			// debounce timer so a trigger never uploads mid edit burst.
			_ = j.engine.PollDrift(ctx)
		}
	}
}

// stopTimer stops t and drains its channel so a subsequent Reset always arms
// a fresh timer.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
