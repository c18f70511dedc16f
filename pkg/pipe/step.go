package pipe

import "time"

type (
	// Step is one unary function of a chain. A non-nil error stops the chain.
	Step[In, Out any] func(in In) (Out, error)

	// Pure is a step that cannot fail.
	Pure[In, Out any] func(in In) Out
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if the chain failed
	Err() error
	// IsSuccess returns true if every step succeeded
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the chain was abandoned through its context
	IsCancel() bool
}

// Lift turns a Pure function into a Step that never fails.
//
// Lift panics if fn is nil.
func Lift[In, Out any](fn Pure[In, Out]) Step[In, Out] {
	if fn == nil {
		panic("pipe.Lift: fn must not be nil")
	}
	return func(in In) (Out, error) {
		return fn(in), nil
	}
}

// Identity returns a Step that yields its input unchanged.
func Identity[T any]() Step[T, T] {
	return func(in T) (T, error) {
		return in, nil
	}
}

// MustNotBeNil panics with a message naming the caller when a step is nil.
func MustNotBeNil[In, Out any](caller string, steps ...Step[In, Out]) {
	for i, s := range steps {
		if s == nil {
			panic(nilStepMessage(caller, i+1))
		}
	}
}
