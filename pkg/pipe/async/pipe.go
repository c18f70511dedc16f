package async

import (
	"context"
	"slices"

	"github.com/ib-77/pipeflow/pkg/pipe"
)

// PipeAsync applies steps to value from left to right on a goroutine of its
// own and returns a deferred for the output of the last step. Each step's
// result is settled before the next step is invoked. With no steps the
// deferred resolves to value.
//
// The first failure, returned or delivered through a deferred, settles the
// returned deferred with that same error and no later step is invoked. If ctx
// ends between steps or while one is pending the returned deferred settles
// as cancelled with ctx.Err().
func PipeAsync[T any](ctx context.Context, value T, steps ...Step[T, T]) Deferred[T] {
	checkSteps("async.PipeAsync", steps)
	return run(ctx, value, steps)
}

// FlowAsync composes steps into a single Step. Calling the result with
// (ctx, x) is the same as PipeAsync(ctx, x, steps...).
func FlowAsync[T any](steps ...Step[T, T]) Step[T, T] {
	checkSteps("async.FlowAsync", steps)
	chain := slices.Clone(steps)
	return func(ctx context.Context, value T) Deferred[T] {
		return run(ctx, value, chain)
	}
}

func run[T any](ctx context.Context, value T, steps []Step[T, T]) Deferred[T] {
	out := make(chan pipe.Result[T], 1)

	go func() {
		defer close(out)

		current := value
		for _, step := range steps {
			r := invoke(ctx, step, current)
			if !r.IsSuccess() {
				out <- r
				return
			}
			current = r.Result()
		}
		out <- pipe.Success(current)
	}()

	return out
}

func checkSteps[T any](caller string, steps []Step[T, T]) {
	for i, s := range steps {
		pipe.CheckStep(caller, i+1, s)
	}
}
