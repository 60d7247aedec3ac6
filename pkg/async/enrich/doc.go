// Package enrich attaches continuation, error, and cancellation handlers to
// computations, centralizing the "capture the error, route to the right
// callback" logic shared by fire-and-forget and awaited flows.
//
// Key constructs:
// - WithContinuations: start detached with success/error/cancel routing and
//   return an awaitable error-captured wrapper
// - FoldMap/FoldBind: always-handled reduction of success and failure to a value
// - RaceFoldMap/RaceFoldBind: race optional-valued computations, fold the
//   first present value into the state; losers' failures are swallowed
package enrich
