// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution; Stop signals it to exit and blocks
// until it has fully terminated.
//
// Implementations are expected to return from Run quickly and do the actual
// work in goroutines they own.
type Worker interface {
	Run()
	Stop()
}
