package async

import (
	"context"

	"github.com/ib-77/pipeflow/pkg/pipe"
)

// Step is a chain step whose output may not be available yet.
type Step[In, Out any] func(ctx context.Context, in In) Deferred[Out]

// Sync adapts a synchronous step. It runs on the goroutine driving the chain
// and its outcome is settled before the next step starts.
func Sync[In, Out any](step pipe.Step[In, Out]) Step[In, Out] {
	pipe.CheckStep("async.Sync", 1, step)
	return func(_ context.Context, in In) Deferred[Out] {
		out, err := step(in)
		return From(pipe.Of(out, err))
	}
}

// Spawn adapts a synchronous step to run on a goroutine of its own.
func Spawn[In, Out any](step pipe.Step[In, Out]) Step[In, Out] {
	pipe.CheckStep("async.Spawn", 1, step)
	return func(ctx context.Context, in In) Deferred[Out] {
		return Go(ctx, func(context.Context) (Out, error) {
			return step(in)
		})
	}
}

// invoke starts step unless ctx has already ended.
func invoke[In, Out any](ctx context.Context, step Step[In, Out], in In) pipe.Result[Out] {
	if err := ctx.Err(); err != nil {
		return pipe.Cancel[Out](err)
	}
	return Settle(ctx, step(ctx, in))
}

func guard[In, Out any](step Step[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) Deferred[Out] {
		out := make(chan pipe.Result[Out], 1)
		go func() {
			defer close(out)
			out <- invoke(ctx, step, in)
		}()
		return out
	}
}

// Then composes two asynchronous steps. second starts only after first has
// settled successfully.
func Then[A, B, C any](first Step[A, B], second Step[B, C]) Step[A, C] {
	pipe.CheckStep("async.Then", 1, first)
	pipe.CheckStep("async.Then", 2, second)
	return func(ctx context.Context, in A) Deferred[C] {
		out := make(chan pipe.Result[C], 1)
		go func() {
			defer close(out)

			mid := invoke(ctx, first, in)
			if !mid.IsSuccess() {
				out <- pipe.FailFrom[B, C](mid)
				return
			}
			out <- invoke(ctx, second, mid.Result())
		}()
		return out
	}
}
