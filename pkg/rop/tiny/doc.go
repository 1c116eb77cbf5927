// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of Result[T, E] values whose types stay the same across steps.
//
// It keeps the API surface very small:
// - Start/FromValue/FromFailure: create a Chain
// - Then: compose result-returning functions, stopping at the first failure
// - Map/MapFailure: transform one side of the result
// - RepeatUntil/RepeatChainUntil/While/WhileChain: loop a step while it keeps
//   succeeding
// - Or/And: pick the first success or the first failure among chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Steps that change T or E are written with package solo instead.
package tiny
