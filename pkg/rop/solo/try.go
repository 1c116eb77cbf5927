package solo

import (
	"github.com/ib-77/result/pkg/rop"
)

// FromTuple converts a Go (value, error) pair. A nil error gives a success.
func FromTuple[T any](value T, err error) rop.Result[T, error] {
	if err != nil {
		return rop.Fail[T](err)
	}
	return rop.Success[T, error](value)
}

func ToTuple[T any](input rop.Result[T, error]) (T, error) {
	if input.IsSuccess() {
		return input.Result(), nil
	}
	var zero T
	return zero, input.Err()
}

// Try runs onTryExecute on a success value and turns a returned error into
// a failure.
func Try[In, Out any](input rop.Result[In, error],
	onTryExecute func(r In) (Out, error)) rop.Result[Out, error] {

	return AndThen(input, func(r In) rop.Result[Out, error] {
		out, err := onTryExecute(r)
		return FromTuple(out, err)
	})
}

func FailOnError[T any](input rop.Result[T, error], maybeErr func(in T) error) rop.Result[T, error] {
	if input.IsSuccess() {
		if err := maybeErr(input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}
