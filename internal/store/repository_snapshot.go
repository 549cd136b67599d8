package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/models"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSnapshot overwrites the single mirror row with the JSON encoding of snap.
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snap models.Snapshot) error {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(snap)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to encode snapshot")
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query, args, err := buildUpsertSnapshotQuery(string(body), time.Now())
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to execute upsert for snapshot mirror")
		return fmt.Errorf("failed to save snapshot mirror: %w", err)
	}

	return nil
}

func (r *snapshotRepository) LoadSnapshot(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSnapshotQuery()
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to build select query")
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var body string
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, ErrNoSnapshotStored
		}
		log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to scan snapshot mirror row")
		return models.Snapshot{}, fmt.Errorf("failed to load snapshot mirror: %w", err)
	}

	var snap models.Snapshot
	if err = json.Unmarshal([]byte(body), &snap); err != nil {
		log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to decode stored snapshot")
		return models.Snapshot{}, fmt.Errorf("failed to decode stored snapshot: %w", err)
	}

	return snap, nil
}

func buildUpsertSnapshotQuery(body string, updatedAt time.Time) (string, []any, error) {
	return sq.Insert("snapshot_mirror").
		Columns("id", "body", "updated_at").
		Values(1, body, updatedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectSnapshotQuery() (string, []any, error) {
	return sq.Select("body").
		From("snapshot_mirror").
		Where(sq.Eq{"id": 1}).
		ToSql()
}
