package tiny

import (
	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/solo"
)

type Chain[T, E any] struct {
	res rop.Result[T, E]
}

var _ rop.Reader[int, error] = Chain[int, error]{}

func Start[T, E any](r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(rop.Success[T, E](v))
}

func FromFailure[T, E any](failure E) Chain[T, E] {
	return Start(rop.Fail[T](failure))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) IsSuccess() bool {
	return c.res.IsSuccess()
}

func (c Chain[T, E]) IsFailure() bool {
	return c.res.IsFailure()
}

func (c Chain[T, E]) Value() (T, bool) {
	return c.res.Value()
}

func (c Chain[T, E]) Failure() (E, bool) {
	return c.res.Failure()
}

// Then composes functions that already return rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(t T) rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: solo.AndThen(c.res, onSuccess)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	return Chain[T, E]{res: solo.Map(c.res, onSuccess)}
}

// MapFailure transforms the failure value to a new value
func (c Chain[T, E]) MapFailure(onFailure func(failure E) E) Chain[T, E] {
	return Chain[T, E]{res: solo.MapFailure(c.res, onFailure)}
}

// RepeatUntil runs onSuccess at least once. It repeats while the chain
// succeeds and again returns true; returning false stops the loop.
func (c Chain[T, E]) RepeatUntil(onSuccess func(t T) rop.Result[T, E],
	again func(t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !again(c.res.Result()) {
			return c
		}
	}
}

// RepeatChainUntil is RepeatUntil for steps that build a whole Chain.
func (c Chain[T, E]) RepeatChainUntil(inC func(t T) Chain[T, E],
	again func(t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = inC(c.res.Result())

		if c.res.IsFailure() || !again(c.res.Result()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(t T) rop.Result[T, E],
	while func(t T) bool) Chain[T, E] {

	for c.res.IsSuccess() && while(c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T, E]) WhileChain(inC func(t T) Chain[T, E], while func(t T) bool) Chain[T, E] {
	for c.res.IsSuccess() && while(c.res.Result()) {
		c = inC(c.res.Result())
	}
	return c
}

// Or returns the first successful chain, or c when none succeeded.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	for _, ch := range alternatives {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	return Chain[T, E]{res: solo.DoubleTee(c.res, onSuccess, onFailure)}
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T, E]) Finally(onSuccess func(T) T, onFailure func(E) T) T {
	return solo.Finally(c.res, onSuccess, onFailure)
}
