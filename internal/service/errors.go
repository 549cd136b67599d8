package service

import "errors"

var (
	// ErrNoConflict is returned by Resolve and ConflictDiff when no conflict
	// is pending.
	ErrNoConflict = errors.New("no conflict pending")

	// ErrInvalidStrategy is returned by Resolve for an unknown resolution
	// strategy.
	ErrInvalidStrategy = errors.New("invalid resolution strategy")

	// ErrNotLoaded is returned when an operation requires a completed
	// initial load.
	ErrNotLoaded = errors.New("initial load has not completed")
)
