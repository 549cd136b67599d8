// Package server wires and runs the devstore's HTTP server, including
// startup, signal handling, and graceful shutdown.
package server
