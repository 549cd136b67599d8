package adapter

import "errors"

// Sentinel errors returned by [RemoteStore] implementations. The sync engine
// drives its state machine off these via errors.Is, so every transport must
// map its native failures onto them.
var (
	// ErrConflict: the store's current revision did not match the supplied
	// parent revision — another writer got there first. Expected; drives
	// the conflict state machine.
	ErrConflict = errors.New("revision conflict")

	// ErrUnauthenticated: the session is no longer valid. Session-ending;
	// never retried.
	ErrUnauthenticated = errors.New("remote store unauthenticated")

	// ErrServerUnavailable: the store failed after possibly applying the
	// request. Ambiguous; resolved by re-querying the latest revision,
	// never assumed.
	ErrServerUnavailable = errors.New("remote store unavailable")

	// ErrNetwork: the request never reached the store (transport failure or
	// timeout). Transient; silently retried on the next cycle.
	ErrNetwork = errors.New("network error")

	// ErrNotFound: no document (or no such revision) exists. Expected on
	// first run, not a failure.
	ErrNotFound = errors.New("document not found")
)
