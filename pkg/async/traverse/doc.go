// Package traverse runs sequences of computations with bounded parallelism,
// preserving input order in the output regardless of per-item completion
// timing. The degree of parallelism is the chunk size: a whole chunk is
// launched together.
//
// Common usage:
// - ChunkBySize/SplitInto: eager grouped execution, all groups concurrent
// - All: one group of everything
// - Traverse/Sequence: lazy pull-driven execution; pulling an element forces
//   only its containing chunk, unreached chunks never start
//
// Size and count arguments below 1 clamp to 1; nil or empty input yields an
// empty result with no computations started.
package traverse
