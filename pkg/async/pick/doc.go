// Package pick projects a computation resolving to a closed tagged
// alternative (two or three variants) through per-variant handlers into one
// unified result.
//
// Highlights:
// - Alt2/Alt3: closed variant sets built with First2/Second2, First3/Second3/Third3
// - Map2/Map3: apply the matching value-returning handler
// - Bind2/Bind3: the matching handler returns a new computation to run and await
//
// Failure or cancellation of the source computation propagates untouched;
// handlers only see resolved payloads.
package pick
