package async

import (
	"context"

	"github.com/ib-77/pipeflow/pkg/pipe"
)

// ErrNoResult is the failure seen when a deferred is nil, is closed without
// delivering a result, or delivers an empty one. It is pipe.ErrNoResult.
var ErrNoResult = pipe.ErrNoResult

// Deferred delivers exactly one result and is then closed.
type Deferred[T any] <-chan pipe.Result[T]

// From returns a deferred that is already settled with r.
func From[T any](r pipe.Result[T]) Deferred[T] {
	ch := make(chan pipe.Result[T], 1)
	ch <- r
	close(ch)
	return ch
}

func Resolved[T any](v T) Deferred[T] {
	return From(pipe.Success(v))
}

// Rejected returns a deferred settled with err. A nil err is ErrNoResult.
func Rejected[T any](err error) Deferred[T] {
	if err == nil {
		err = ErrNoResult
	}
	return From(pipe.Fail[T](err))
}

// Go runs fn on its own goroutine and returns a deferred for its outcome.
// The goroutine never blocks on delivery, so the deferred may be dropped.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Deferred[T] {
	ch := make(chan pipe.Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- pipe.Of(v, err)
	}()
	return ch
}

// Settle waits for d and returns its result. When ctx ends first the result
// is a cancel carrying ctx.Err(); whatever produces d keeps running. An empty
// result settles as a failure with ErrNoResult.
func Settle[T any](ctx context.Context, d Deferred[T]) pipe.Result[T] {
	if d == nil {
		return pipe.Fail[T](ErrNoResult)
	}

	select {
	case r, ok := <-d:
		if !ok || r.IsEmpty() {
			return pipe.Fail[T](ErrNoResult)
		}
		return r
	case <-ctx.Done():
		return pipe.Cancel[T](ctx.Err())
	}
}

// Await is Settle unpacked into a (value, error) pair.
func Await[T any](ctx context.Context, d Deferred[T]) (T, error) {
	return Settle(ctx, d).Get()
}
