// Package option implements a generic Option type for presence/absence
// semantics. seq uses it wherever "no element" must stay distinct from a
// zero value: FilterMap transforms, Find results, Step conversions.
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/lazyseq/result"
)

// Option represents presence or absence of a value of type T. The zero value
// is None, so Options can be embedded safely. The value is stored inline; a
// present nil (for nil-capable T) is distinguishable from absence via
// IsSome.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's
// common multi-return patterns (map lookups, channel receives, Step.Value).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnsafeGet returns the contained value or panics when the Option is None.
// Reserved for call sites where presence is guaranteed.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic("option: UnsafeGet on None")
	}
	return o.value
}

// GetOrElse returns the contained value when present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrElse returns the Option itself when it is Some, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// Filter keeps the value when predicate returns true, otherwise None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Map transforms the contained value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains the Option with another Option-valued function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Fold collapses the Option into a single value, selecting onNone when empty
// or applying onSome to the contained value.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// ToResult converts the Option into a Result, producing errFactory() when
// None. A nil factory (or one returning nil) is replaced by a descriptive
// error to avoid silent successes.
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = errors.New("option: missing value")
	}
	return result.Err[T](err)
}

// String implements fmt.Stringer for debugging; not meant for serialization.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
