// Package result provides a success/error abstraction over Go's (T, error).
//
// Example:
//
//	res := seq.CollectResult(primes)
//	values, err := res.Unwrap()
//	_ = values
//
// Result combinators uphold Functor/Monad laws (see result_test.go) so that
// transformations stay predictable across pipeline stages.
package result

import "errors"

// Result represents the outcome of a computation that may succeed with a
// value or fail with an error. It never panics except in Unsafe helpers.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. A nil error is converted into a
// descriptive placeholder to avoid silent successes.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	res := result.FromTuple(seq.Collect(s))
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result represents success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, if any.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and error, mirroring standard Go semantics.
//
// Example:
//
//	value, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise fallback.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback using fn when the Result is an
// error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err == nil {
		return r.value
	}
	return fn(r.err)
}

// UnsafeUnwrap returns the underlying value or panics when the Result is an
// error.
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Map transforms the value on success.
//
// Example:
//
//	count := result.Map(seq.CollectResult(s), func(vs []int) int { return len(vs) })
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// FlatMap chains computations, propagating the first error.
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err == nil {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// MapErr transforms the stored error when present.
//
// Example:
//
//	res := result.MapErr(load(), func(err error) error {
//		return fmt.Errorf("wrap: %w", err)
//	})
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if fn == nil || r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// Fold collapses the Result into a single value.
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err == nil {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Tap executes fn when the Result is Ok and returns the original Result.
func Tap[T any](r Result[T], fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// TapErr executes fn when the Result is Err and returns the original Result.
func TapErr[T any](r Result[T], fn func(error)) Result[T] {
	if r.err != nil {
		fn(r.err)
	}
	return r
}

// Sequence converts a slice of Results into a Result containing a slice of
// values, failing fast on the first error.
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Partition splits the input slice into successful values and collected
// errors, preserving relative order within both halves.
func Partition[T any](results []Result[T]) ([]T, []error) {
	values := []T{}
	errs := []error{}
	for _, r := range results {
		if r.err == nil {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	return values, errs
}
