package chain

import (
	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/solo"
)

// Chain holds the result of a pipe built one step at a time. Every call
// returns a new Chain; a Chain is never modified after it is created.
type Chain[T any] struct {
	result pipe.Result[T]
}

// Start creates a new chain from a pipe.Result.
func Start[T any](result pipe.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: pipe.Success(value)}
}

// Result returns the underlying pipe.Result.
func (c *Chain[T]) Result() pipe.Result[T] {
	return c.result
}

// Get returns the value of the chain or the error that stopped it.
func (c *Chain[T]) Get() (T, error) {
	return c.result.Get()
}

// Then applies step to the current value. Once a step has failed no further
// step is invoked and the failure is carried to the end of the chain.
func Then[T, U any](c *Chain[T], step pipe.Step[T, U]) *Chain[U] {
	pipe.CheckStep("chain.Then", 1, step)
	return &Chain[U]{result: solo.Try(c.result, step)}
}

// Map chains a pure transformation function.
func Map[T, U any](c *Chain[T], onSuccess pipe.Pure[T, U]) *Chain[U] {
	pipe.CheckStep("chain.Map", 1, onSuccess)
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Ensure performs a side effect without changing the result.
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: solo.Tee(c.result, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally.
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U, onCancel func(error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure, onCancel)
}
