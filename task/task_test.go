package task_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmingruby/lazyseq/option"
	"github.com/charmingruby/lazyseq/result"
	"github.com/charmingruby/lazyseq/seq"
	"github.com/charmingruby/lazyseq/task"
	"github.com/stretchr/testify/require"
)

func TestPureFailMapFlatMap(t *testing.T) {
	ctx := context.Background()

	v, err := task.Pure(2)(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	boom := errors.New("boom")
	_, err = task.Fail[int](boom)(ctx)
	require.ErrorIs(t, err, boom)

	rendered, err := task.Map(task.Pure(2), strconv.Itoa)(ctx)
	require.NoError(t, err)
	require.Equal(t, "2", rendered)

	chained, err := task.FlatMap(task.Pure(2), func(v int) task.Task[int] {
		return task.Pure(v * 3)
	})(ctx)
	require.NoError(t, err)
	require.Equal(t, 6, chained)
}

func TestCanceledContextWinsEverywhere(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := task.Pure(1)(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = task.Fail[int](errors.New("boom"))(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = task.FromResult(result.Ok(1))(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCollectDrainsSequence(t *testing.T) {
	values, err := task.Collect(seq.Of(1, 2, 3))(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestCollectStopsBetweenPullsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pulled := 0
	infinite := seq.Generate(func() (int, bool) {
		pulled++
		if pulled == 3 {
			cancel()
		}
		return pulled, true
	})
	values, err := task.Collect(infinite)(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []int{1, 2, 3}, values, "partial drain survives cancellation")
}

func TestCollectSurfacesCallbackFailure(t *testing.T) {
	parsed := seq.TryMap(seq.Of("1", "x"), strconv.Atoi)
	values, err := task.Collect(parsed)(context.Background())
	require.Error(t, err)
	require.Equal(t, []int{1}, values)
}

func TestForEachCountsConsumed(t *testing.T) {
	sum := 0
	n, err := task.ForEach(seq.Of(1, 2, 3), func(v int) { sum += v })(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 6, sum)
}

func TestRetryEventuallySucceeds(t *testing.T) {
	var attempts atomic.Int32
	work := task.From(func(_ context.Context) (int, error) {
		if attempts.Add(1) < 3 {
			return 0, errors.New("not yet")
		}
		return 7, nil
	})
	retried := task.Retry(work, task.RetryConfig{Attempts: 5, Delay: time.Millisecond})
	value, err := retried(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, value)
}

func TestRetryRespectsShouldRetry(t *testing.T) {
	fatal := errors.New("fatal")
	var attempts atomic.Int32
	work := task.From(func(_ context.Context) (int, error) {
		attempts.Add(1)
		return 0, fatal
	})
	retried := task.Retry(work, task.RetryConfig{
		Attempts:    5,
		ShouldRetry: func(err error) bool { return !errors.Is(err, fatal) },
	})
	_, err := retried(context.Background())
	require.ErrorIs(t, err, fatal)
	require.Equal(t, int32(1), attempts.Load())
}

func TestTimeout(t *testing.T) {
	work := task.From(func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(100 * time.Millisecond):
			return 1, nil
		}
	})
	_, err := task.Timeout(work, 10*time.Millisecond)(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAllPreservesOrder(t *testing.T) {
	tasks := []task.Task[int]{task.Pure(1), task.Pure(2), task.Pure(3)}
	values, err := task.All(tasks, 2)(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestAllFailsFast(t *testing.T) {
	boom := errors.New("boom")
	tasks := []task.Task[int]{
		task.Pure(1),
		task.Fail[int](boom),
		task.From(func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		}),
	}
	_, err := task.All(tasks, 0)(context.Background())
	require.Error(t, err)
}

func TestTapTapErr(t *testing.T) {
	ctx := context.Background()

	seen := 0
	_, err := task.Tap(task.Pure(4), func(v int) { seen = v })(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, seen)

	boom := errors.New("boom")
	var observed error
	_, err = task.TapErr(task.Fail[int](boom), func(err error) { observed = err })(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, observed, boom)
}

func TestFromOption(t *testing.T) {
	ctx := context.Background()

	v, err := task.FromOption(option.Some(5), nil)(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	missing := errors.New("missing")
	_, err = task.FromOption(option.None[int](), func() error { return missing })(ctx)
	require.ErrorIs(t, err, missing)

	_, err = task.FromOption(option.None[int](), nil)(ctx)
	require.Error(t, err)
}
