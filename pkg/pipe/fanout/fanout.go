package fanout

import (
	"context"
	"sync"

	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/async"
)

// Run feeds every value of inputCh to fn on one of lines goroutines and
// sends each settled result to the returned channel, which is closed once
// inputCh is drained or ctx ends.
//
// Run panics if fn is nil or lines is not positive.
func Run[In, Out any](ctx context.Context, inputCh <-chan In, fn async.Step[In, Out], lines int) <-chan pipe.Result[Out] {
	pipe.CheckStep("fanout.Run", 1, fn)
	if lines <= 0 {
		panic("fanout.Run: lines must be positive")
	}

	out := make(chan pipe.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go line(ctx, inputCh, out, fn, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func line[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- pipe.Result[Out],
	fn async.Step[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			r := async.Settle(ctx, fn(ctx, in))

			select {
			case <-ctx.Done():
				return
			case outCh <- r:
			}
		}
	}
}

// FromSlice streams values into a channel that is closed after the last one
// or when ctx ends.
func FromSlice[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains ch until it is closed or ctx ends.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
