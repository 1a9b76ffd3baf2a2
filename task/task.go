// Package task defines context-aware effectful computations over sequences.
//
// The pull-based sequence contract has no built-in cancellation: a consumer
// cancels by not pulling again. Task supplies the context-aware consumption
// loop for callers that do need deadlines or cancellation, checking the
// context between pulls.
//
// Example:
//
//	drain := task.Collect(events)
//	values, err := task.Timeout(drain, time.Second)(ctx)
package task

import (
	"context"
	"errors"
	"time"

	"github.com/charmingruby/lazyseq/internal/timeutil"
	"github.com/charmingruby/lazyseq/option"
	"github.com/charmingruby/lazyseq/result"
	"github.com/charmingruby/lazyseq/seq"
	"golang.org/x/sync/errgroup"
)

// Task represents a computation that can be executed with a context.
type Task[T any] func(ctx context.Context) (T, error)

// From wraps an arbitrary context-aware function into a Task.
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Pure lifts a value into a Task that respects cancellation.
func Pure[T any](value T) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}
}

// Fail creates a Task that immediately fails with err (or a descriptive
// placeholder when err is nil).
func Fail[T any](err error) Task[T] {
	failureErr := err
	if failureErr == nil {
		failureErr = errors.New("task: nil error")
	}
	return func(ctx context.Context) (T, error) {
		var zero T
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		return zero, failureErr
	}
}

// Map transforms the Task result when it succeeds.
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(val), nil
	}
}

// FlatMap chains two Tasks.
func FlatMap[T any, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			var zero U
			return zero, err
		}
		return fn(val)(ctx)
	}
}

// Tap executes fn on success and passes the value through unchanged.
func Tap[T any](t Task[T], fn func(T)) Task[T] {
	return func(ctx context.Context) (T, error) {
		val, err := t(ctx)
		if err == nil {
			fn(val)
		}
		return val, err
	}
}

// TapErr executes fn when the Task fails.
func TapErr[T any](t Task[T], fn func(error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		val, err := t(ctx)
		if err != nil {
			fn(err)
		}
		return val, err
	}
}

// Timeout bounds the execution time of a Task.
func Timeout[T any](t Task[T], d time.Duration) Task[T] {
	if d <= 0 {
		return t
	}
	return func(ctx context.Context) (T, error) {
		ctxWithTimeout, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t(ctxWithTimeout)
	}
}

// RetryConfig defines retry behavior for Retry.
type RetryConfig struct {
	Attempts    int
	Delay       time.Duration
	Backoff     func(attempt int, err error) time.Duration
	ShouldRetry func(error) bool
}

// Retry re-executes the task according to cfg when it fails.
//
// Example:
//
//	withRetry := task.Retry(drain, task.RetryConfig{Attempts: 5, Delay: time.Second})
func Retry[T any](t Task[T], cfg RetryConfig) Task[T] {
	return func(ctx context.Context) (T, error) {
		attempts := cfg.Attempts
		if attempts <= 0 {
			attempts = 1
		}
		var lastErr error
		var value T
		for attempt := 1; attempt <= attempts; attempt++ {
			if err := ctx.Err(); err != nil {
				var zero T
				return zero, err
			}
			value, lastErr = t(ctx)
			if lastErr == nil {
				return value, nil
			}
			if cfg.ShouldRetry != nil && !cfg.ShouldRetry(lastErr) {
				break
			}
			if attempt == attempts {
				break
			}
			delay := cfg.Delay
			if cfg.Backoff != nil {
				delay = cfg.Backoff(attempt, lastErr)
			}
			if delay < 0 {
				delay = 0
			}
			if !timeutil.Sleep(ctx, delay) {
				var zero T
				return zero, ctx.Err()
			}
		}
		var zero T
		return zero, lastErr
	}
}

// Collect drains a sequence under a context, checking for cancellation
// between pulls. On cancellation or a mid-stream callback failure the values
// pulled so far are returned together with the error.
func Collect[T any](s seq.Seq[T]) Task[[]T] {
	return func(ctx context.Context) ([]T, error) {
		sess := s.Session()
		out := []T{}
		for {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			v, ok := sess.Next().Value()
			if !ok {
				return out, sess.Err()
			}
			out = append(out, v)
		}
	}
}

// ForEach consumes a sequence under a context, invoking fn per element and
// checking for cancellation between pulls. It returns the number of
// elements consumed.
func ForEach[T any](s seq.Seq[T], fn func(T)) Task[int] {
	return func(ctx context.Context) (int, error) {
		sess := s.Session()
		count := 0
		for {
			if err := ctx.Err(); err != nil {
				return count, err
			}
			v, ok := sess.Next().Value()
			if !ok {
				return count, sess.Err()
			}
			fn(v)
			count++
		}
	}
}

// All executes tasks concurrently with at most limit in flight (limit <= 0
// means unbounded), failing fast on the first error and preserving input
// order in the returned values.
func All[T any](tasks []Task[T], limit int) Task[[]T] {
	return func(ctx context.Context) ([]T, error) {
		if len(tasks) == 0 {
			return []T{}, nil
		}
		g, ctx := errgroup.WithContext(ctx)
		if limit > 0 {
			g.SetLimit(limit)
		}
		results := make([]T, len(tasks))
		for i, t := range tasks {
			g.Go(func() error {
				val, err := t(ctx)
				if err != nil {
					return err
				}
				results[i] = val
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}
}

// FromResult lifts an existing Result into a Task. Context cancellation
// takes precedence over the stored error.
func FromResult[T any](res result.Result[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return res.Unwrap()
	}
}

// FromOption lifts an Option into a Task, failing with errFactory() when the
// Option is None (or a descriptive error when the factory is nil).
func FromOption[T any](opt option.Option[T], errFactory func() error) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		if value, ok := opt.Get(); ok {
			return value, nil
		}
		var err error
		if errFactory != nil {
			err = errFactory()
		}
		if err == nil {
			err = errors.New("task: option is none")
		}
		var zero T
		return zero, err
	}
}
