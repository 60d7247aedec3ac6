// Package compose provides the applicative/monad combinators over
// computations, plus the comonadic start-detached operations.
//
// Highlights:
// - Map/Bind/Then/Flatten: sequential composition
// - Ap, Map2/Map3, Bind2/Bind3: start arguments concurrently, await in
//   fixed argument order, first failure in that order propagates
// - Extract: blocking run-to-completion on the calling goroutine
// - Duplicate/Extend: start detached and expose the still-running handle
// - PEval/PEvals: one branch outlives the call, handed back as a handle
package compose
