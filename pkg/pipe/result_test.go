package pipe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_States(t *testing.T) {
	t.Parallel()

	ok := Success(3)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.False(t, ok.IsEmpty())
	v, err := ok.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	boom := errors.New("boom")
	failed := Fail[int](boom)
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsCancel())
	_, err = failed.Get()
	assert.Same(t, boom, err)

	cancelled := Cancel[int](context.Canceled)
	assert.True(t, cancelled.IsFailure())
	assert.True(t, cancelled.IsCancel())
	assert.True(t, IsCancellationError(cancelled.Err()))

	var empty Result[int]
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsFailure())
}

func TestResult_Of(t *testing.T) {
	t.Parallel()

	assert.True(t, Of(1, nil).IsSuccess())

	r := Of(1, errors.New("x"))
	assert.True(t, r.IsFailure())
	assert.Zero(t, r.Result())
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	src := Cancel[int](context.DeadlineExceeded)
	dst := FailFrom[int, string](src)

	assert.Equal(t, src.Id(), dst.Id())
	assert.Equal(t, src.CreatedAt(), dst.CreatedAt())
	assert.True(t, dst.IsCancel())
	assert.ErrorIs(t, dst.Err(), context.DeadlineExceeded)
}

func TestResult_UniqueIds(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Success(1).Id(), Success(1).Id())
}

func TestLift_Identity(t *testing.T) {
	t.Parallel()

	s, err := Lift(func(n int) string { return fmt.Sprint(n) })(7)
	require.NoError(t, err)
	assert.Equal(t, "7", s)

	v, err := Identity[string]()("x")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	require.PanicsWithValue(t, "pipe.Lift: fn must not be nil", func() {
		Lift[int, int](nil)
	})
}

func TestCheckStep(t *testing.T) {
	t.Parallel()

	var nilStep Step[int, int]
	require.PanicsWithValue(t, "x: step 3 must not be nil", func() {
		CheckStep("x", 3, nilStep)
	})
	require.PanicsWithValue(t, "y: step 1 must not be nil", func() {
		CheckStep("y", 1, nil)
	})
	require.NotPanics(t, func() {
		CheckStep("z", 1, Identity[int]())
	})

	require.PanicsWithValue(t, "m: step 2 must not be nil", func() {
		MustNotBeNil("m", Identity[int](), nil)
	})
}

func TestResult_EmptyGetIsNoResult(t *testing.T) {
	t.Parallel()

	for _, r := range []Result[int]{{}, Fail[int](nil), FailFrom[string, int](Result[string]{})} {
		require.True(t, r.IsEmpty())
		v, err := r.Get()
		assert.Zero(t, v)
		assert.ErrorIs(t, err, ErrNoResult)
	}
}

func TestResult_ImplementsWithCancel(t *testing.T) {
	t.Parallel()

	var r WithCancel[string] = Cancel[string](context.Canceled)
	assert.True(t, r.IsCancel())
	assert.False(t, r.IsSuccess())
	assert.ErrorIs(t, r.Err(), context.Canceled)
	assert.Empty(t, r.Result())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		nilStep  Step[int, int]
		nilPtr   *int
		nilMap   map[string]int
		nilCh    chan int
		nilSlice []int
	)
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil func", nilStep, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil channel", nilCh, true},
		{"nil slice", nilSlice, true},
		{"func", Identity[int](), false},
		{"int", 0, false},
		{"string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNil(tt.in))
		})
	}
}
