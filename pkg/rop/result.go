package rop

import (
	"fmt"

	"github.com/tarantool/go-option"
)

// Result holds exactly one of a success value T or a failure value E.
// The zero value is a failure carrying the zero E.
type Result[T, E any] struct {
	result    T
	failure   E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
	}
}

func Fail[T, E any](failure E) Result[T, E] {
	return Result[T, E]{
		failure:   failure,
		isSuccess: false,
	}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Result returns the success value. It panics with a VariantError on a failure.
func (r Result[T, E]) Result() T {
	if !r.isSuccess {
		panic(VariantError.New("Result called on %s", r))
	}
	return r.result
}

// Err returns the failure value. It panics with a VariantError on a success.
func (r Result[T, E]) Err() E {
	if r.isSuccess {
		panic(VariantError.New("Err called on %s", r))
	}
	return r.failure
}

// Unwrap returns the success value or panics with an UnwrapError describing
// the failure value.
func (r Result[T, E]) Unwrap() T {
	if !r.isSuccess {
		panic(UnwrapError.New("%s", render(r.failure)))
	}
	return r.result
}

func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.isSuccess {
		return r.result
	}
	return defaultValue
}

func (r Result[T, E]) UnwrapOrElse(onFailure func(E) T) T {
	if r.isSuccess {
		return r.result
	}
	return onFailure(r.failure)
}

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if r.isSuccess {
		return r.result, true
	}
	var zero T
	return zero, false
}

// Failure returns the failure value and true, or the zero E and false.
func (r Result[T, E]) Failure() (E, bool) {
	if !r.isSuccess {
		return r.failure, true
	}
	var zero E
	return zero, false
}

// ValueOption is Value as an option.Generic.
func (r Result[T, E]) ValueOption() option.Generic[T] {
	if r.isSuccess {
		return option.Some(r.result)
	}
	return option.None[T]()
}

// FailureOption is Failure as an option.Generic.
func (r Result[T, E]) FailureOption() option.Generic[E] {
	if !r.isSuccess {
		return option.Some(r.failure)
	}
	return option.None[E]()
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.failure)
}
