package solo

import (
	"github.com/ib-77/result/pkg/rop"
)

// Handlers selects the branch Match runs for each variant.
type Handlers[T, E, R any] struct {
	OnSuccess func(r T) R
	OnFailure func(failure E) R
}

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](failure E) rop.Result[T, E] {
	return rop.Fail[T](failure)
}

// Map applies onSuccess to a success value. Failures pass through unchanged
// and onSuccess is not called.
func Map[In, Out, E any](input rop.Result[In, E], onSuccess func(r In) Out) rop.Result[Out, E] {
	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(input.Result()))
	}
	return rop.Fail[Out](input.Err())
}

// MapFailure applies onFailure to a failure value. Successes pass through
// unchanged.
func MapFailure[T, E, F any](input rop.Result[T, E], onFailure func(failure E) F) rop.Result[T, F] {
	if input.IsFailure() {
		return rop.Fail[T](onFailure(input.Err()))
	}
	return rop.Success[T, F](input.Result())
}

// AndThen returns the result of onSuccess for a success value and short-circuits
// on a failure.
func AndThen[In, Out, E any](input rop.Result[In, E], onSuccess func(r In) rop.Result[Out, E]) rop.Result[Out, E] {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.Fail[Out](input.Err())
}

// OrElse is AndThen for the failure side: onFailure may recover or replace the failure.
func OrElse[T, E, F any](input rop.Result[T, E], onFailure func(failure E) rop.Result[T, F]) rop.Result[T, F] {
	if input.IsFailure() {
		return onFailure(input.Err())
	}
	return rop.Success[T, F](input.Result())
}

func Flatten[T, E any](input rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	return AndThen(input, func(r rop.Result[T, E]) rop.Result[T, E] { return r })
}

// Match runs exactly one of the handlers and returns its value.
func Match[T, E, R any](input rop.Result[T, E], handlers Handlers[T, E, R]) R {
	if input.IsSuccess() {
		return handlers.OnSuccess(input.Result())
	}
	return handlers.OnFailure(input.Err())
}

func Finally[In, E, Out any](input rop.Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(failure E) Out) Out {

	return Match(input, Handlers[In, E, Out]{OnSuccess: onSuccess, OnFailure: onFailure})
}

func Validate[T, E any](input T, validate func(in T) (valid bool, failure E)) rop.Result[T, E] {
	return AndValidate(Succeed[T, E](input), validate)
}

func AndValidate[T, E any](input rop.Result[T, E],
	validate func(in T) (valid bool, failure E)) rop.Result[T, E] {

	if input.IsSuccess() {
		if isValid, failure := validate(input.Result()); !isValid {
			return rop.Fail[T](failure)
		}
	}
	return input
}

func Tee[T, E any](input rop.Result[T, E], onSuccess func(r T)) rop.Result[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func TeeIf[T, E any](input rop.Result[T, E],
	condition func(r T) bool,
	onSuccessAndCondition func(r T)) rop.Result[T, E] {

	if input.IsSuccess() {
		if condition(input.Result()) {
			onSuccessAndCondition(input.Result())
		}
	}

	return input
}

func TeeFailure[T, E any](input rop.Result[T, E], onFailure func(failure E)) rop.Result[T, E] {
	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

func DoubleTee[T, E any](input rop.Result[T, E],
	onSuccess func(r T),
	onFailure func(failure E)) rop.Result[T, E] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Result())
		}
	} else if onFailure != nil {
		onFailure(input.Err())
	}

	return input
}

// DoubleMap is Map with an observer for the failure side. The failure value
// itself passes through unchanged.
func DoubleMap[In, Out, E any](input rop.Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(failure E)) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(input.Result()))
	}

	if onFailure != nil {
		onFailure(input.Err())
	}
	return rop.Fail[Out](input.Err())
}

// Join feeds input through each step in turn, passing every step's output
// through concat. With breakOnError the first failing step ends the fold.
func Join[T, E any](input rop.Result[T, E],
	breakOnError bool, // exit on first error
	concat func(current rop.Result[T, E]) rop.Result[T, E],
	steps ...func(in rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	if len(steps) == 0 || concat == nil {
		return input
	}

	finalResult := concat(steps[0](input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, step := range steps[1:] {
			nextRes := concat(step(finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}

// Collect returns the success values of inputs in order, skipping failures.
func Collect[T, E any](inputs ...rop.Reader[T, E]) []T {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if v, ok := in.Value(); ok {
			values = append(values, v)
		}
	}
	return values
}

// Sequence collects every success value, stopping at the first failure.
func Sequence[T, E any](inputs []rop.Result[T, E]) rop.Result[[]T, E] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if in.IsFailure() {
			return rop.Fail[[]T](in.Err())
		}
		values = append(values, in.Result())
	}
	return rop.Success[[]T, E](values)
}
