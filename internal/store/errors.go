package store

import "errors"

// Sentinel errors returned by repository methods. Callers should match them
// with [errors.Is].
var (
	// ErrNoSnapshotStored is returned when the mirror table holds no
	// snapshot yet (fresh database).
	ErrNoSnapshotStored = errors.New("no snapshot stored locally")

	// ErrNoRecoveryHint is returned when no crash-recovery hint has ever
	// been persisted.
	ErrNoRecoveryHint = errors.New("no recovery hint stored")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
