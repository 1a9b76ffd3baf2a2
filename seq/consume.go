package seq

import (
	"github.com/charmingruby/lazyseq/option"
	"github.com/charmingruby/lazyseq/result"
)

// Collect exhausts the sequence and returns its values in yield order. When
// a fallible stage fails mid-stream the values yielded before the failure
// are returned together with the error, so callers must not assume
// all-or-nothing on a non-nil error. Collect never returns on an unbounded
// sequence; bound infinite sources with Take first.
func Collect[T any](s Seq[T]) ([]T, error) {
	sess := s.Session()
	out := []T{}
	for {
		v, ok := sess.Next().Value()
		if !ok {
			return out, sess.Err()
		}
		out = append(out, v)
	}
}

// CollectResult folds Collect into a Result, dropping any partial
// accumulation on failure.
func CollectResult[T any](s Seq[T]) result.Result[[]T] {
	return result.FromTuple(Collect(s))
}

// Fold reduces the sequence from left to right using the provided
// accumulator.
func Fold[T any, B any](s Seq[T], init B, fn func(B, T) B) (B, error) {
	sess := s.Session()
	acc := init
	for {
		v, ok := sess.Next().Value()
		if !ok {
			return acc, sess.Err()
		}
		acc = fn(acc, v)
	}
}

// Reduce applies fn across elements, reporting false when the sequence is
// empty.
func Reduce[T any](s Seq[T], fn func(T, T) T) (T, bool, error) {
	sess := s.Session()
	acc, ok := sess.Next().Value()
	if !ok {
		var zero T
		return zero, false, sess.Err()
	}
	for {
		v, ok := sess.Next().Value()
		if !ok {
			return acc, true, sess.Err()
		}
		acc = fn(acc, v)
	}
}

// Find returns the first element satisfying predicate, pulling no further
// once found.
func Find[T any](s Seq[T], predicate func(T) bool) (option.Option[T], error) {
	sess := s.Session()
	for {
		v, ok := sess.Next().Value()
		if !ok {
			return option.None[T](), sess.Err()
		}
		if predicate(v) {
			return option.Some(v), nil
		}
	}
}

// Any reports whether any element satisfies predicate, short-circuiting on
// the first match.
func Any[T any](s Seq[T], predicate func(T) bool) (bool, error) {
	found, err := Find(s, predicate)
	return found.IsSome(), err
}

// All reports whether every element satisfies predicate, short-circuiting on
// the first counterexample.
func All[T any](s Seq[T], predicate func(T) bool) (bool, error) {
	sess := s.Session()
	for {
		v, ok := sess.Next().Value()
		if !ok {
			return true, sess.Err()
		}
		if !predicate(v) {
			return false, nil
		}
	}
}

// Count exhausts the sequence and returns the number of values yielded.
func Count[T any](s Seq[T]) (int, error) {
	return Fold(s, 0, func(n int, _ T) int { return n + 1 })
}

// ForEach pulls every element in order, invoking fn for each.
func ForEach[T any](s Seq[T], fn func(T)) error {
	sess := s.Session()
	for {
		v, ok := sess.Next().Value()
		if !ok {
			return sess.Err()
		}
		fn(v)
	}
}

// Partition exhausts the sequence, splitting values by predicate outcome
// while preserving relative order within both halves.
func Partition[T any](s Seq[T], predicate func(T) bool) ([]T, []T, error) {
	matches := []T{}
	rest := []T{}
	err := ForEach(s, func(v T) {
		if predicate(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	})
	return matches, rest, err
}

// GroupBy exhausts the sequence, grouping values by the key returned from
// keySelector.
func GroupBy[T any, K comparable](s Seq[T], keySelector func(T) K) (map[K][]T, error) {
	groups := make(map[K][]T)
	err := ForEach(s, func(v T) {
		key := keySelector(v)
		groups[key] = append(groups[key], v)
	})
	return groups, err
}
