package client

import "errors"

// ErrSessionExpired is returned by Run when the remote store rejects the
// session token. The process must be restarted with fresh credentials.
var ErrSessionExpired = errors.New("session expired")
