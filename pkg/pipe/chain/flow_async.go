package chain

import (
	"context"

	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/async"
)

// AsyncFlow is the asynchronous counterpart of Flow.
type AsyncFlow[In, Out any] struct {
	run   async.Step[In, Out]
	steps int
}

// ComposeAsync starts an empty asynchronous flow, which resolves to its input.
func ComposeAsync[T any]() *AsyncFlow[T, T] {
	return &AsyncFlow[T, T]{run: async.FlowAsync[T]()}
}

// AppendAsync returns a flow that runs f and, once its result has settled,
// step.
func AppendAsync[In, Out, Next any](f *AsyncFlow[In, Out], step async.Step[Out, Next]) *AsyncFlow[In, Next] {
	pipe.CheckStep("chain.AppendAsync", f.steps+1, step)
	return &AsyncFlow[In, Next]{
		run:   async.Then(f.run, step),
		steps: f.steps + 1,
	}
}

// AppendSync is AppendAsync for a synchronous step.
func AppendSync[In, Out, Next any](f *AsyncFlow[In, Out], step pipe.Step[Out, Next]) *AsyncFlow[In, Next] {
	pipe.CheckStep("chain.AppendSync", f.steps+1, step)
	return AppendAsync(f, async.Sync(step))
}

func (f *AsyncFlow[In, Out]) Run(ctx context.Context, value In) async.Deferred[Out] {
	return f.run(ctx, value)
}

func (f *AsyncFlow[In, Out]) Func() async.Step[In, Out] {
	return f.run
}

func (f *AsyncFlow[In, Out]) Len() int {
	return f.steps
}
