// Package rop defines Result[T, E], a closed two-variant value holding either
// a success value of type T or a failure value of type E.
//
// Results are built with Success or Fail and never change afterwards.
// Combinators that change the payload types (Map, MapFailure, AndThen, Match)
// live in package solo; a fluent same-typed chain lives in package tiny.
//
// Only Unwrap, Result and Err may panic, and only when used against the wrong
// variant. Value, Failure, UnwrapOr and solo.Match never do.
package rop
