// Package client implements the client application runtime.
//
// It wires the local snapshot storage, the remote store adapter, the sync
// engine with its background job, and the interactive conflict prompt into a
// single process lifecycle.
package client
