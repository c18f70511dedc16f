package solo

import (
	"slices"

	"github.com/ib-77/pipeflow/pkg/pipe"
)

// Pipe applies steps to value from left to right and returns the output of
// the last one. With no steps it returns value unchanged.
//
// The first step that returns an error stops the chain: no later step is
// invoked and the error is returned as is.
func Pipe[T any](value T, steps ...pipe.Step[T, T]) (T, error) {
	pipe.MustNotBeNil("solo.Pipe", steps...)
	return fold(value, steps)
}

// Flow composes steps into a single Step. Calling the result with x is the
// same as Pipe(x, steps...). With no steps the result is the identity.
//
// The steps slice is copied, so later changes to the caller's slice do not
// affect the composed function.
func Flow[T any](steps ...pipe.Step[T, T]) pipe.Step[T, T] {
	pipe.MustNotBeNil("solo.Flow", steps...)
	chain := slices.Clone(steps)
	return func(value T) (T, error) {
		return fold(value, chain)
	}
}

func fold[T any](value T, steps []pipe.Step[T, T]) (T, error) {
	current := value
	for _, step := range steps {
		next, err := step(current)
		if err != nil {
			var zero T
			return zero, err
		}
		current = next
	}
	return current, nil
}

// Then composes two steps of compatible types: the output of first feeds
// second. second is not invoked when first fails.
func Then[A, B, C any](first pipe.Step[A, B], second pipe.Step[B, C]) pipe.Step[A, C] {
	pipe.CheckStep("solo.Then", 1, first)
	pipe.CheckStep("solo.Then", 2, second)
	return func(in A) (C, error) {
		mid, err := first(in)
		if err != nil {
			var zero C
			return zero, err
		}
		return second(mid)
	}
}

// Try runs step on a successful input result. Failed and cancelled inputs are
// carried over without invoking step.
func Try[In, Out any](input pipe.Result[In], step pipe.Step[In, Out]) pipe.Result[Out] {
	if !input.IsSuccess() {
		return pipe.FailFrom[In, Out](input)
	}
	out, err := step(input.Result())
	return pipe.Of(out, err)
}

// Map is Try for a step that cannot fail.
func Map[In, Out any](input pipe.Result[In], onSuccess pipe.Pure[In, Out]) pipe.Result[Out] {
	if !input.IsSuccess() {
		return pipe.FailFrom[In, Out](input)
	}
	return pipe.Success(onSuccess(input.Result()))
}

// Tee calls sideEffect with the value of a successful result and returns the
// result untouched.
func Tee[T any](input pipe.Result[T], sideEffect func(T)) pipe.Result[T] {
	if input.IsSuccess() {
		sideEffect(input.Result())
	}
	return input
}

// Finally reduces a result to a plain value. A result that carries neither a
// value nor an error reaches onError with pipe.ErrNoResult.
func Finally[In, Out any, R pipe.WithCancel[In]](input R,
	onSuccess func(r In) Out,
	onError func(err error) Out,
	onCancel func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	} else if input.IsCancel() {
		return onCancel(input.Err())
	}

	err := input.Err()
	if err == nil {
		err = pipe.ErrNoResult
	}
	return onError(err)
}
