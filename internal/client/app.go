package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/koenjo741/smartcards/internal/adapter"
	"github.com/koenjo741/smartcards/internal/canon"
	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/internal/service"
	"github.com/koenjo741/smartcards/internal/tui"
	"github.com/koenjo741/smartcards/internal/workers"
	"github.com/koenjo741/smartcards/models"
)

type App struct {
	services *service.ClientServices
	cfg      *config.ClientConfig
	logger   *logger.Logger

	// promptFn is the interactive conflict prompt; a field so tests can
	// substitute a non-interactive one.
	promptFn func(diff canon.DiffTree) (models.ResolutionStrategy, error)

	conflicts   chan struct{}
	authExpired chan struct{}
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	return &App{
		services:    services,
		cfg:         cfg,
		logger:      log,
		promptFn:    tui.PromptResolution,
		conflicts:   make(chan struct{}, 1),
		authExpired: make(chan struct{}, 1),
	}, nil
}

// Run implements Client. It performs the initial load, starts the background
// sync job, and then serves conflict prompts until the process is signalled
// to stop or the session expires.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	engine := a.services.Engine
	engine.OnConflict(func() { signalChan(a.conflicts) })
	engine.OnAuthExpired(func() { signalChan(a.authExpired) })

	if err := engine.InitialLoad(ctx); err != nil {
		if errors.Is(err, adapter.ErrUnauthenticated) {
			return ErrSessionExpired
		}
		// Offline start: keep working from the local mirror, retry below.
		a.logger.Warn().Err(err).Msg("initial load failed, starting from local state")
	}

	jobs := workers.NewWorkers(&syncWorker{ctx: ctx, job: a.services.Job})
	jobs.Run()
	defer a.services.Job.Stop()

	retry := time.NewTicker(a.cfg.Sync.PollInterval)
	defer retry.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-a.authExpired:
			return ErrSessionExpired

		case <-a.conflicts:
			if err := a.resolveConflict(ctx); err != nil {
				return err
			}

		case <-retry.C:
			if !engine.State().CloudLoaded {
				if err := engine.InitialLoad(ctx); err != nil {
					a.logger.Warn().Err(err).Msg("initial load retry failed")
				}
			}
		}
	}
}

// resolveConflict prompts until the conflict is gone. Losing a keep-local
// race leaves the conflict pending against a newer document, so the prompt
// comes back with a fresh diff.
func (a *App) resolveConflict(ctx context.Context) error {
	engine := a.services.Engine

	for engine.State().HasConflict {
		if ctx.Err() != nil {
			return nil
		}

		diff, err := engine.ConflictDiff(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Msg("could not compute conflict diff")
			diff = canon.DiffTree{}
		}

		strategy, err := a.promptFn(diff)
		if err != nil {
			return fmt.Errorf("conflict prompt: %w", err)
		}

		err = engine.Resolve(ctx, strategy)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, adapter.ErrConflict):
			a.logger.Info().Msg("resolution lost a race with another writer, asking again")
		case errors.Is(err, adapter.ErrUnauthenticated):
			return ErrSessionExpired
		default:
			return fmt.Errorf("resolve conflict: %w", err)
		}
	}

	return nil
}

// syncWorker adapts the sync job to the Worker contract.
type syncWorker struct {
	ctx context.Context
	job service.SyncJob
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx)
}

func signalChan(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
