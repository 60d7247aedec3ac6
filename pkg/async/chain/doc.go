// Package chain provides a fluent wrapper around Computation[T] for
// building deferred pipelines using compose primitives.
//
// Key operations:
// - From/FromValue: begin a chain from a computation or value
// - Then/ThenTry: compose computation-returning or error-returning functions
// - Map: transform the value (type-changing via the free function form)
// - Ensure: run side effects on success without changing the value
// - Run: execute with error capture; Start: launch detached
// - Finally: collapse into a final value via success/failure/cancel handlers
package chain
