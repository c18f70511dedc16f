package chain

import (
	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/solo"
)

// Flow is a composed function from In to Out built one step at a time.
// Append returns a new Flow and leaves its argument usable as it was, so a
// common prefix can be shared between several flows.
type Flow[In, Out any] struct {
	run   pipe.Step[In, Out]
	steps int
}

// Compose starts an empty flow, which is the identity on T.
func Compose[T any]() *Flow[T, T] {
	return &Flow[T, T]{run: pipe.Identity[T]()}
}

// Append returns a flow that runs f and then step.
func Append[In, Out, Next any](f *Flow[In, Out], step pipe.Step[Out, Next]) *Flow[In, Next] {
	pipe.CheckStep("chain.Append", f.steps+1, step)
	return &Flow[In, Next]{
		run:   solo.Then(f.run, step),
		steps: f.steps + 1,
	}
}

// Run applies the flow to value.
func (f *Flow[In, Out]) Run(value In) (Out, error) {
	return f.run(value)
}

// Func returns the flow as a plain step, ready to be used inside another chain.
func (f *Flow[In, Out]) Func() pipe.Step[In, Out] {
	return f.run
}

// Len reports the number of appended steps.
func (f *Flow[In, Out]) Len() int {
	return f.steps
}
