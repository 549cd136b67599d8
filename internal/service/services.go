package service

import (
	"github.com/koenjo741/smartcards/internal/adapter"
	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/internal/store"
)

type ClientServices struct {
	Engine SyncEngine
	Job    SyncJob
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	engine := NewSyncEngine(storages.Holder, storages.RecoveryRepository, remote, cfg.App, cfg.Sync, logger)

	return &ClientServices{
		Engine: engine,
		Job:    NewSyncJob(engine, storages.Holder, cfg.Sync),
	}
}
