package pipe

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoResult is reported for a Result that holds neither a value nor an
// error, such as the zero Result or Fail(nil).
var ErrNoResult = errors.New("pipe: no result")

// Result is the outcome of running a chain: either a value or the error of the
// step that stopped it. Cancel results carry the context error that ended an
// asynchronous chain.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries a failed or cancelled result over to another value type,
// keeping its error, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Of builds a Result from the usual Go (value, error) pair.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the result into a (value, error) pair. The value is the zero
// value of T unless the result is a success; an empty result yields
// ErrNoResult.
func (r Result[T]) Get() (T, error) {
	if !r.isSuccess {
		var zero T
		if r.IsEmpty() {
			return zero, ErrNoResult
		}
		return zero, r.err
	}
	return r.result, nil
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.IsEmpty()
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
