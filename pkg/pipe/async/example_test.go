package async_test

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/async"
)

func ExamplePipeAsync3() {
	ctx := context.Background()

	double := async.Sync(pipe.Lift(func(n int) int { return n * 2 }))
	addOne := async.Spawn(pipe.Lift(func(n int) int { return n + 1 }))
	toString := async.Sync(pipe.Lift(strconv.Itoa))

	s, err := async.Await(ctx, async.PipeAsync3(ctx, 5, double, addOne, toString))
	fmt.Printf("%q %v\n", s, err)
	// Output: "11" <nil>
}
