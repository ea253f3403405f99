package server

// Server defines the lifecycle of the local agent API server.
//
// RunServer blocks until a stop signal arrives or the listener fails.
// Shutdown stops the listener and runs the registered shutdown hooks.
type Server interface {
	RunServer()
	Shutdown()
}
