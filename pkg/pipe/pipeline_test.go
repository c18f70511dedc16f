package pipe_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/pipeflow/pkg/pipe"
	"github.com/ib-77/pipeflow/pkg/pipe/async"
	"github.com/ib-77/pipeflow/pkg/pipe/chain"
	"github.com/ib-77/pipeflow/pkg/pipe/fanout"
	"github.com/ib-77/pipeflow/pkg/pipe/solo"
)

var (
	double   = pipe.Lift(func(n int) int { return n * 2 })
	addOne   = pipe.Lift(func(n int) int { return n + 1 })
	toString = pipe.Lift(strconv.Itoa)
)

// Each composer must agree on the same inputs.
func TestComposers_Agree(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	viaPipe, err := solo.Pipe3(5, double, addOne, toString)
	require.NoError(t, err)

	viaFlow, err := solo.Flow3(double, addOne, toString)(5)
	require.NoError(t, err)

	viaChain, err := chain.Then(chain.Then(chain.Then(chain.FromValue(5), double), addOne), toString).Get()
	require.NoError(t, err)

	viaBuilder, err := chain.Append(chain.Append(chain.Append(chain.Compose[int](), double), addOne), toString).Run(5)
	require.NoError(t, err)

	viaAsync, err := async.Await(ctx, async.PipeAsync3(ctx, 5, async.Sync(double), async.Spawn(addOne), async.Sync(toString)))
	require.NoError(t, err)

	viaFlowAsync, err := async.Await(ctx, async.FlowAsync3(async.Sync(double), async.Sync(addOne), async.Sync(toString))(ctx, 5))
	require.NoError(t, err)

	for _, got := range []string{viaPipe, viaFlow, viaChain, viaBuilder, viaAsync, viaFlowAsync} {
		assert.Equal(t, "11", got)
	}
}

// TestURLProcessing runs urls through one composed async flow on two lines
// without making HTTP requests.
func TestURLProcessing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	process := async.FlowAsync3(
		async.Sync(validateURL),
		mockFetchTitle,
		async.Sync(pipe.Lift(func(title string) int { return len(title) })))

	results := fanout.Collect(ctx, fanout.Run(ctx, fanout.FromSlice(ctx, urls), process, 2))
	require.Len(t, results, len(urls))

	invalid := 0
	for _, r := range results {
		out := solo.Finally(r,
			func(n int) string { return fmt.Sprintf("title length: %d", n) },
			func(err error) string { return "invalid" },
			func(err error) string { return "cancelled" })
		if out == "invalid" {
			invalid++
			assert.True(t, errors.Is(r.Err(), errBadURL))
		}
	}
	assert.Equal(t, 2, invalid)
}

var errBadURL = errors.New("URL must start with http:// or https://")

func validateURL(url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", errBadURL
	}
	return url, nil
}

func mockFetchTitle(ctx context.Context, url string) async.Deferred[string] {
	return async.Go(ctx, func(context.Context) (string, error) {
		time.Sleep(time.Millisecond)
		return "Mock Page Title for " + url, nil
	})
}
