// Package solo contains single-value, synchronous primitives that operate
// on Result[T, E]. They are free functions because most of them change the
// payload types and Go methods cannot declare their own type parameters.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Map/MapFailure/DoubleMap: transform one side, pass the other through
// - AndThen/OrElse/Flatten: chain result-returning steps, short-circuiting
// - Match/Finally: reduce to a concrete value via success/failure handlers
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Try/FromTuple/ToTuple/FailOnError: bridge to Go (T, error) functions
// - Join: fold a result through several steps
// - Tee/TeeIf/TeeFailure/DoubleTee: side-effect helpers
// - Collect: success values of several Readers
// - Sequence: gather success values, stopping at the first failure
package solo
