package seq

import (
	"fmt"

	"github.com/charmingruby/lazyseq/option"
	"github.com/charmingruby/lazyseq/result"
)

// Map lazily transforms sequence values. Each pull performs exactly one
// upstream pull. A panic in fn propagates to the pulling caller unmodified.
func Map[A any, B any](s Seq[A], fn func(A) B) Seq[B] {
	return Seq[B]{open: func() pullFunc[B] {
		up := s.pullFn()
		return func(resume any) (B, bool, error) {
			v, ok, err := up(resume)
			if err != nil || !ok {
				var zero B
				return zero, false, err
			}
			return fn(v), true, nil
		}
	}}
}

// TryMap lazily transforms sequence values with a fallible function. The
// first error returned by fn terminates the pass: the session records it,
// exhausts, and reports it through Session.Err (and through the error return
// of the eager consumers).
func TryMap[A any, B any](s Seq[A], fn func(A) (B, error)) Seq[B] {
	return Seq[B]{open: func() pullFunc[B] {
		up := s.pullFn()
		return func(resume any) (B, bool, error) {
			v, ok, err := up(resume)
			if err != nil || !ok {
				var zero B
				return zero, false, err
			}
			mapped, err := fn(v)
			if err != nil {
				var zero B
				return zero, false, err
			}
			return mapped, true, nil
		}
	}}
}

// MapResult is TryMap for Result-valued transforms.
func MapResult[A any, B any](s Seq[A], fn func(A) result.Result[B]) Seq[B] {
	return TryMap(s, func(v A) (B, error) {
		return fn(v).Unwrap()
	})
}

// Filter keeps values satisfying predicate. A single pull keeps pulling
// upstream until a match or exhaustion, so one pull can drain the entire
// upstream when nothing matches.
func Filter[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		up := s.pullFn()
		return func(resume any) (T, bool, error) {
			for {
				v, ok, err := up(resume)
				if err != nil || !ok {
					var zero T
					return zero, false, err
				}
				if predicate(v) {
					return v, true, nil
				}
			}
		}
	}}
}

// FilterMap combines Filter and Map: fn returning None drops the value,
// Some(u) yields u.
func FilterMap[A any, B any](s Seq[A], fn func(A) option.Option[B]) Seq[B] {
	return Seq[B]{open: func() pullFunc[B] {
		up := s.pullFn()
		return func(resume any) (B, bool, error) {
			for {
				v, ok, err := up(resume)
				if err != nil || !ok {
					var zero B
					return zero, false, err
				}
				if mapped, some := fn(v).Get(); some {
					return mapped, true, nil
				}
			}
		}
	}}
}

// Take yields at most n values. After the nth value the sequence exhausts
// permanently without pulling upstream again; with n == 0 the upstream is
// never opened at all. A negative n fails with ErrInvalidArgument.
func Take[T any](s Seq[T], n int) (Seq[T], error) {
	if n < 0 {
		return Empty[T](), fmt.Errorf("%w: take count must be non-negative, got %d", ErrInvalidArgument, n)
	}
	return Seq[T]{open: func() pullFunc[T] {
		var up pullFunc[T]
		count := 0
		return func(resume any) (T, bool, error) {
			if count >= n {
				var zero T
				return zero, false, nil
			}
			if up == nil {
				up = s.pullFn()
			}
			v, ok, err := up(resume)
			if err != nil || !ok {
				var zero T
				return zero, false, err
			}
			count++
			return v, true, nil
		}
	}}, nil
}

// Drop skips the first n values. A negative n fails with ErrInvalidArgument.
func Drop[T any](s Seq[T], n int) (Seq[T], error) {
	if n < 0 {
		return Empty[T](), fmt.Errorf("%w: drop count must be non-negative, got %d", ErrInvalidArgument, n)
	}
	return Seq[T]{open: func() pullFunc[T] {
		up := s.pullFn()
		skipped := false
		return func(resume any) (T, bool, error) {
			if !skipped {
				skipped = true
				for range n {
					_, ok, err := up(resume)
					if err != nil || !ok {
						var zero T
						return zero, false, err
					}
				}
			}
			return up(resume)
		}
	}}, nil
}

// TakeWhile yields values until predicate first returns false, then exhausts
// permanently.
func TakeWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		up := s.pullFn()
		stopped := false
		return func(resume any) (T, bool, error) {
			if stopped {
				var zero T
				return zero, false, nil
			}
			v, ok, err := up(resume)
			if err != nil || !ok || !predicate(v) {
				stopped = true
				var zero T
				return zero, false, err
			}
			return v, true, nil
		}
	}}
}

// DropWhile skips the leading values satisfying predicate and yields
// everything from the first non-match on.
func DropWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		up := s.pullFn()
		dropping := true
		return func(resume any) (T, bool, error) {
			for {
				v, ok, err := up(resume)
				if err != nil || !ok {
					var zero T
					return zero, false, err
				}
				if dropping && predicate(v) {
					continue
				}
				dropping = false
				return v, true, nil
			}
		}
	}}
}

// Chain concatenates sequences end-to-end in input order, fully exhausting
// each before opening the next. No arguments yields the empty sequence.
func Chain[T any](seqs ...Seq[T]) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		idx := 0
		var cur pullFunc[T]
		return func(resume any) (T, bool, error) {
			for {
				if cur == nil {
					if idx >= len(seqs) {
						var zero T
						return zero, false, nil
					}
					cur = seqs[idx].pullFn()
					idx++
				}
				v, ok, err := cur(resume)
				if err != nil {
					var zero T
					return zero, false, err
				}
				if ok {
					return v, true, nil
				}
				cur = nil
			}
		}
	}}
}

// Flatten flattens a sequence of sequences by one level, chaining the inner
// sequences in the order the outer sequence produces them.
func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		outer := s.pullFn()
		var inner pullFunc[T]
		return func(resume any) (T, bool, error) {
			for {
				if inner == nil {
					sub, ok, err := outer(resume)
					if err != nil || !ok {
						var zero T
						return zero, false, err
					}
					inner = sub.pullFn()
				}
				v, ok, err := inner(resume)
				if err != nil {
					var zero T
					return zero, false, err
				}
				if ok {
					return v, true, nil
				}
				inner = nil
			}
		}
	}}
}

// Pair represents two related values.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Zip pairs two sequences element-for-element, exhausting when the shorter
// one does. The longer sequence is pulled at most once past the pairing
// point.
func Zip[A any, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return Seq[Pair[A, B]]{open: func() pullFunc[Pair[A, B]] {
		pullA := a.pullFn()
		pullB := b.pullFn()
		return func(resume any) (Pair[A, B], bool, error) {
			var zero Pair[A, B]
			va, ok, err := pullA(resume)
			if err != nil || !ok {
				return zero, false, err
			}
			vb, ok, err := pullB(resume)
			if err != nil || !ok {
				return zero, false, err
			}
			return Pair[A, B]{First: va, Second: vb}, true, nil
		}
	}}
}
