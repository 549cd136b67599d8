package store

import (
	"database/sql"

	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
