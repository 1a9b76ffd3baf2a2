// Package validated accumulates multiple errors while still carrying a
// value. The pipeline builder uses it to report every malformed stage
// argument at once instead of short-circuiting on the first one.
package validated

import (
	"errors"

	"github.com/charmingruby/lazyseq/result"
)

// Validated wraps either a successful value or a collection of validation
// errors.
type Validated[E any, T any] struct {
	value  T
	errors []E
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated aggregating the provided errors.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	if len(errs) == 0 {
		return Validated[E, T]{errors: []E{}}
	}
	copyErrs := make([]E, len(errs))
	copy(copyErrs, errs)
	return Validated[E, T]{errors: copyErrs}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns an immutable copy of the collected errors.
func (v Validated[E, T]) Errors() []E {
	if len(v.errors) == 0 {
		return []E{}
	}
	copyErrs := make([]E, len(v.errors))
	copy(copyErrs, v.errors)
	return copyErrs
}

// UnsafeValue returns the stored value even when invalid.
func (v Validated[E, T]) UnsafeValue() T {
	return v.value
}

// Map transforms the stored value when valid.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E, B](fn(v.value))
}

// Append returns a Validated with errs added to the accumulation. Appending
// nothing returns the receiver unchanged.
func (v Validated[E, T]) Append(errs ...E) Validated[E, T] {
	if len(errs) == 0 {
		return v
	}
	combined := make([]E, 0, len(v.errors)+len(errs))
	combined = append(combined, v.errors...)
	combined = append(combined, errs...)
	return Validated[E, T]{value: v.value, errors: combined}
}

// FromResult lifts a Result into a Validated using error accumulation
// semantics.
func FromResult[T any](res result.Result[T]) Validated[error, T] {
	if value, err := res.Unwrap(); err == nil {
		return Valid[error](value)
	}
	return Invalid[error, T](res.Err())
}

// ToResult converts a Validated of errors into a Result, joining the
// accumulated errors when invalid.
func ToResult[T any](v Validated[error, T]) result.Result[T] {
	if v.IsValid() {
		return result.Ok(v.value)
	}
	return result.Err[T](errors.Join(v.errors...))
}
