// Package server runs the local agent API.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown, followed by the shutdown hooks of the background workers.
package server
