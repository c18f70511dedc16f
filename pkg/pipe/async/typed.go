package async

import (
	"context"

	"github.com/ib-77/pipeflow/pkg/pipe"
)

// FlowAsync1 wraps f1 so that it is not invoked once ctx has ended and a nil
// or empty deferred from it settles as ErrNoResult.
func FlowAsync1[A, B any](f1 Step[A, B]) Step[A, B] {
	pipe.CheckStep("async.FlowAsync1", 1, f1)
	return guard(f1)
}

// PipeAsync1 applies f1 to value.
func PipeAsync1[A, B any](ctx context.Context, value A, f1 Step[A, B]) Deferred[B] {
	return FlowAsync1(f1)(ctx, value)
}

// FlowAsync2 composes 2 asynchronous steps whose types chain A -> B -> C.
func FlowAsync2[A, B, C any](f1 Step[A, B], f2 Step[B, C]) Step[A, C] {
	pipe.CheckStep("async.FlowAsync2", 1, f1)
	pipe.CheckStep("async.FlowAsync2", 2, f2)
	return Then(f1, f2)
}

// PipeAsync2 applies 2 chained asynchronous steps to value.
func PipeAsync2[A, B, C any](ctx context.Context, value A, f1 Step[A, B], f2 Step[B, C]) Deferred[C] {
	return FlowAsync2(f1, f2)(ctx, value)
}

// FlowAsync3 composes 3 asynchronous steps whose types chain A -> B -> C -> D.
func FlowAsync3[A, B, C, D any](f1 Step[A, B], f2 Step[B, C], f3 Step[C, D]) Step[A, D] {
	pipe.CheckStep("async.FlowAsync3", 1, f1)
	pipe.CheckStep("async.FlowAsync3", 2, f2)
	pipe.CheckStep("async.FlowAsync3", 3, f3)
	return Then(Then(f1, f2), f3)
}

// PipeAsync3 applies 3 chained asynchronous steps to value.
func PipeAsync3[A, B, C, D any](ctx context.Context, value A, f1 Step[A, B], f2 Step[B, C], f3 Step[C, D]) Deferred[D] {
	return FlowAsync3(f1, f2, f3)(ctx, value)
}

// FlowAsync4 composes 4 asynchronous steps whose types chain A -> B -> C -> D -> E.
func FlowAsync4[A, B, C, D, E any](f1 Step[A, B], f2 Step[B, C], f3 Step[C, D], f4 Step[D, E]) Step[A, E] {
	pipe.CheckStep("async.FlowAsync4", 1, f1)
	pipe.CheckStep("async.FlowAsync4", 2, f2)
	pipe.CheckStep("async.FlowAsync4", 3, f3)
	pipe.CheckStep("async.FlowAsync4", 4, f4)
	return Then(Then(Then(f1, f2), f3), f4)
}

// PipeAsync4 applies 4 chained asynchronous steps to value.
func PipeAsync4[A, B, C, D, E any](ctx context.Context, value A, f1 Step[A, B], f2 Step[B, C], f3 Step[C, D], f4 Step[D, E]) Deferred[E] {
	return FlowAsync4(f1, f2, f3, f4)(ctx, value)
}

// FlowAsync5 composes 5 asynchronous steps whose types chain A -> B -> C -> D -> E -> F.
func FlowAsync5[A, B, C, D, E, F any](f1 Step[A, B], f2 Step[B, C], f3 Step[C, D], f4 Step[D, E], f5 Step[E, F]) Step[A, F] {
	pipe.CheckStep("async.FlowAsync5", 1, f1)
	pipe.CheckStep("async.FlowAsync5", 2, f2)
	pipe.CheckStep("async.FlowAsync5", 3, f3)
	pipe.CheckStep("async.FlowAsync5", 4, f4)
	pipe.CheckStep("async.FlowAsync5", 5, f5)
	return Then(Then(Then(Then(f1, f2), f3), f4), f5)
}

// PipeAsync5 applies 5 chained asynchronous steps to value.
func PipeAsync5[A, B, C, D, E, F any](ctx context.Context, value A, f1 Step[A, B], f2 Step[B, C], f3 Step[C, D], f4 Step[D, E], f5 Step[E, F]) Deferred[F] {
	return FlowAsync5(f1, f2, f3, f4, f5)(ctx, value)
}

// FlowAsync6 composes 6 asynchronous steps whose types chain A -> B -> C -> D -> E -> F -> G.
func FlowAsync6[A, B, C, D, E, F, G any](f1 Step[A, B], f2 Step[B, C], f3 Step[C, D], f4 Step[D, E], f5 Step[E, F], f6 Step[F, G]) Step[A, G] {
	pipe.CheckStep("async.FlowAsync6", 1, f1)
	pipe.CheckStep("async.FlowAsync6", 2, f2)
	pipe.CheckStep("async.FlowAsync6", 3, f3)
	pipe.CheckStep("async.FlowAsync6", 4, f4)
	pipe.CheckStep("async.FlowAsync6", 5, f5)
	pipe.CheckStep("async.FlowAsync6", 6, f6)
	return Then(Then(Then(Then(Then(f1, f2), f3), f4), f5), f6)
}

// PipeAsync6 applies 6 chained asynchronous steps to value.
func PipeAsync6[A, B, C, D, E, F, G any](ctx context.Context, value A, f1 Step[A, B], f2 Step[B, C], f3 Step[C, D], f4 Step[D, E], f5 Step[E, F], f6 Step[F, G]) Deferred[G] {
	return FlowAsync6(f1, f2, f3, f4, f5, f6)(ctx, value)
}
