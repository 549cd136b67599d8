package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/koenjo741/smartcards/internal/adapter"
	"github.com/koenjo741/smartcards/internal/canon"
	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/internal/mock"
	"github.com/koenjo741/smartcards/internal/service"
	"github.com/koenjo741/smartcards/models"
)

func newTestApp(t *testing.T, ctrl *gomock.Controller) (*App, *mock.MockSyncEngine) {
	t.Helper()

	engine := mock.NewMockSyncEngine(ctrl)
	services := &service.ClientServices{
		Engine: engine,
		Job:    mock.NewMockSyncJob(ctrl),
	}

	app, err := NewApp(services, &config.ClientConfig{}, logger.Nop())
	require.NoError(t, err)

	return app, engine
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, &config.ClientConfig{}, logger.Nop())
	require.Error(t, err)
}

func TestApp_ResolveConflict_SingleRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app, engine := newTestApp(t, ctrl)

	diff := canon.DiffTree{"cards": {A: "mine", B: "theirs"}}
	var prompted canon.DiffTree
	app.promptFn = func(d canon.DiffTree) (models.ResolutionStrategy, error) {
		prompted = d
		return models.ResolutionAcceptCloud, nil
	}

	engine.EXPECT().State().Return(models.SyncState{HasConflict: true})
	engine.EXPECT().ConflictDiff(gomock.Any()).Return(diff, nil)
	engine.EXPECT().Resolve(gomock.Any(), models.ResolutionAcceptCloud).Return(nil)

	require.NoError(t, app.resolveConflict(context.Background()))
	assert.Equal(t, diff, prompted)
}

func TestApp_ResolveConflict_RepromptsAfterLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app, engine := newTestApp(t, ctrl)

	prompts := 0
	app.promptFn = func(canon.DiffTree) (models.ResolutionStrategy, error) {
		prompts++
		return models.ResolutionKeepLocal, nil
	}

	engine.EXPECT().State().Return(models.SyncState{HasConflict: true}).Times(2)
	engine.EXPECT().ConflictDiff(gomock.Any()).Return(canon.DiffTree{}, nil).Times(2)
	engine.EXPECT().Resolve(gomock.Any(), models.ResolutionKeepLocal).
		Return(adapter.ErrConflict)
	engine.EXPECT().Resolve(gomock.Any(), models.ResolutionKeepLocal).
		Return(nil)

	require.NoError(t, app.resolveConflict(context.Background()))
	assert.Equal(t, 2, prompts)
}

func TestApp_ResolveConflict_SessionExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app, engine := newTestApp(t, ctrl)

	app.promptFn = func(canon.DiffTree) (models.ResolutionStrategy, error) {
		return models.ResolutionKeepLocal, nil
	}

	engine.EXPECT().State().Return(models.SyncState{HasConflict: true})
	engine.EXPECT().ConflictDiff(gomock.Any()).Return(canon.DiffTree{}, nil)
	engine.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(adapter.ErrUnauthenticated)

	err := app.resolveConflict(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestApp_ResolveConflict_PromptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app, engine := newTestApp(t, ctrl)

	promptErr := errors.New("terminal gone")
	app.promptFn = func(canon.DiffTree) (models.ResolutionStrategy, error) {
		return "", promptErr
	}

	engine.EXPECT().State().Return(models.SyncState{HasConflict: true})
	engine.EXPECT().ConflictDiff(gomock.Any()).Return(canon.DiffTree{}, nil)

	err := app.resolveConflict(context.Background())
	require.ErrorIs(t, err, promptErr)
}

func TestApp_ResolveConflict_NoConflictIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app, engine := newTestApp(t, ctrl)

	engine.EXPECT().State().Return(models.SyncState{})

	require.NoError(t, app.resolveConflict(context.Background()))
}
