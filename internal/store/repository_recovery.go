package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/models"
)

type recoveryRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecoveryRepository(db *DB, logger *logger.Logger) RecoveryRepository {
	return &recoveryRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveHint overwrites the single recovery slot. The hint is written after
// every confirmed upload, so on restart the client can tell whether the
// mirror content matches what the server last accepted.
func (r *recoveryRepository) SaveHint(ctx context.Context, hint models.RecoveryHint) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertHintQuery(hint)
	if err != nil {
		log.Err(err).Str("func", "recoveryRepository.SaveHint").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recoveryRepository.SaveHint").
			Str("revision", hint.Revision.String()).
			Msg("failed to execute upsert for recovery hint")
		return fmt.Errorf("failed to save recovery hint: %w", err)
	}

	return nil
}

func (r *recoveryRepository) LoadHint(ctx context.Context) (models.RecoveryHint, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHintQuery()
	if err != nil {
		log.Err(err).Str("func", "recoveryRepository.LoadHint").Msg("failed to build select query")
		return models.RecoveryHint{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var (
		hint     models.RecoveryHint
		revision string
	)
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&hint.Hash, &revision, &hint.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RecoveryHint{}, ErrNoRecoveryHint
		}
		log.Err(err).Str("func", "recoveryRepository.LoadHint").Msg("failed to scan recovery hint row")
		return models.RecoveryHint{}, fmt.Errorf("failed to load recovery hint: %w", err)
	}
	hint.Revision = models.Revision(revision)

	return hint, nil
}

func buildUpsertHintQuery(hint models.RecoveryHint) (string, []any, error) {
	return sq.Insert("recovery_hint").
		Columns("id", "hash", "revision", "saved_at").
		Values(1, hint.Hash, hint.Revision.String(), hint.SavedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET hash = excluded.hash, revision = excluded.revision, saved_at = excluded.saved_at").
		ToSql()
}

func buildSelectHintQuery() (string, []any, error) {
	return sq.Select("hash", "revision", "saved_at").
		From("recovery_hint").
		Where(sq.Eq{"id": 1}).
		ToSql()
}
