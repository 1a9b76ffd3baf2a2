package seq

import (
	"fmt"

	"github.com/charmingruby/lazyseq/option"
)

// Step is the outcome of a single pull: either a yielded value or the
// exhaustion signal. The zero value is the exhausted Step.
type Step[T any] struct {
	value T
	ok    bool
}

// Yield constructs a Step carrying value.
func Yield[T any](value T) Step[T] {
	return Step[T]{value: value, ok: true}
}

// Done constructs the exhausted Step for the provided element type.
func Done[T any]() Step[T] {
	return Step[T]{}
}

// Ok reports whether the Step carries a value.
func (s Step[T]) Ok() bool {
	return s.ok
}

// Value returns the carried value along with a boolean indicating whether one
// is present, mirroring Go's common multi-return patterns.
func (s Step[T]) Value() (T, bool) {
	return s.value, s.ok
}

// UnsafeValue returns the carried value or panics when the Step signals
// exhaustion. Reserved for hot paths where presence is guaranteed.
func (s Step[T]) UnsafeValue() T {
	if !s.ok {
		panic("seq: UnsafeValue on exhausted Step")
	}
	return s.value
}

// ToOption converts the Step into an Option, mapping exhaustion to None.
func (s Step[T]) ToOption() option.Option[T] {
	return option.FromOk(s.value, s.ok)
}

// String implements fmt.Stringer for debugging. It is not intended for
// serialization.
func (s Step[T]) String() string {
	if s.ok {
		return fmt.Sprintf("Yield(%v)", s.value)
	}
	return "Done"
}
