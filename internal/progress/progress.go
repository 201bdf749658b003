// Package progress defines the progress reporting types shared between the
// sieve workers, the orchestration layer, and the presentation layers (CLI
// and TUI). Keeping these types in a leaf package avoids import cycles
// between orchestration and presentation.
package progress

// Update carries one worker's fractional progress over its chunk.
type Update struct {
	// WorkerIndex identifies the reporting worker (0-based chunk index).
	WorkerIndex int
	// Value is the worker-local progress, from 0.0 to 1.0.
	Value float64
}

// Callback receives a worker-local progress fraction (0.0 to 1.0).
// Implementations must be cheap; workers invoke it from their hot scan loop.
type Callback func(value float64)
