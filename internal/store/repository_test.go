package store

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &DB{DB: mockDB, logger: logger.Nop()}, mock
}

func Test_buildUpsertSnapshotQuery(t *testing.T) {
	query, args, err := buildUpsertSnapshotQuery(`{"projects":[]}`, time.Now())
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into snapshot_mirror")
	require.Contains(t, q, "on conflict(id) do update")
	require.Len(t, args, 3)
	assert.Equal(t, 1, args[0])
	assert.Equal(t, `{"projects":[]}`, args[1])
}

func Test_buildUpsertHintQuery(t *testing.T) {
	hint := models.RecoveryHint{Hash: "abc", Revision: "rev-1", SavedAt: time.Now()}

	query, args, err := buildUpsertHintQuery(hint)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into recovery_hint")
	require.Contains(t, q, "on conflict(id) do update")
	require.Len(t, args, 4)
	assert.Equal(t, "abc", args[1])
	assert.Equal(t, "rev-1", args[2])
}

func TestSnapshotRepository_SaveSnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO snapshot_mirror").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSnapshot(context.Background(), models.Snapshot{})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_LoadSnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	stored := models.Snapshot{
		Projects: []models.Project{{ID: "p1", Name: "Inbox", Position: 0}},
	}
	body, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT body FROM snapshot_mirror").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow(string(body)))

	got, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored.Projects, got.Projects)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_LoadSnapshot_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT body FROM snapshot_mirror").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	_, err := repo.LoadSnapshot(context.Background())
	require.ErrorIs(t, err, ErrNoSnapshotStored)
}

func TestSnapshotRepository_LoadSnapshot_CorruptBody(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSnapshotRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT body FROM snapshot_mirror").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow("{not json"))

	_, err := repo.LoadSnapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestRecoveryRepository_SaveAndLoadHint(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecoveryRepository(db, logger.Nop())

	savedAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	hint := models.RecoveryHint{Hash: "h1", Revision: "rev-9", SavedAt: savedAt}

	mock.ExpectExec("INSERT INTO recovery_hint").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT hash, revision, saved_at FROM recovery_hint").
		WillReturnRows(sqlmock.NewRows([]string{"hash", "revision", "saved_at"}).
			AddRow("h1", "rev-9", savedAt))

	require.NoError(t, repo.SaveHint(context.Background(), hint))

	got, err := repo.LoadHint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, hint, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecoveryRepository_LoadHint_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecoveryRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT hash, revision, saved_at FROM recovery_hint").
		WillReturnRows(sqlmock.NewRows([]string{"hash", "revision", "saved_at"}))

	_, err := repo.LoadHint(context.Background())
	require.ErrorIs(t, err, ErrNoRecoveryHint)
}
