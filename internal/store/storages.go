package store

import (
	"context"
	"fmt"

	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
)

// ClientStorages groups the client-side persistence layer into a single value
// that can be passed around the service layer: the in-memory snapshot holder
// backed by its SQLite mirror, and the crash-recovery slot.
type ClientStorages struct {
	// Holder is the in-memory snapshot holder mirrored to SQLite.
	Holder SnapshotHolder

	// RecoveryRepository is the durable (hash, revision) crash-recovery slot.
	RecoveryRepository RecoveryRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [SnapshotHolder] seeded from the mirrored snapshot and a
//     fresh [RecoveryRepository], and returns them as a [ClientStorages].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	holder, err := NewSnapshotHolder(context.Background(), NewSnapshotRepository(db, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("snapshot holder init failed: %w", err)
	}

	return &ClientStorages{
		Holder:             holder,
		RecoveryRepository: NewRecoveryRepository(db, logger),
	}, nil
}
