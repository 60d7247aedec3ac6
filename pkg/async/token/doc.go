// Package token manages cancellation sources: triggerable, exactly-once
// broadcast signals with revocable callback registration, bridged to the
// context package for consumption by running computations.
//
// Key constructs:
// - Source/SourceAfter: create a source, optionally auto-triggering after a delay
// - Cancel/CancelAfter: trigger now, or (re)schedule the auto-trigger
// - Register/RegisterAll: attach callbacks fired in registration order on trigger
// - Registration.Dispose: revoke a callback before it fires
// - Default: the process-wide ambient source used when none is supplied
package token
