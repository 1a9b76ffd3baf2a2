package seq

import "fmt"

// FromSlice creates a restartable sequence over the provided slice without
// copying. Each session re-reads from index zero.
func FromSlice[T any](values []T) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		idx := 0
		return func(any) (T, bool, error) {
			if idx >= len(values) {
				var zero T
				return zero, false, nil
			}
			v := values[idx]
			idx++
			return v, true, nil
		}
	}}
}

// Of creates a restartable sequence over the provided values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// Empty returns an immediately exhausted sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Range creates the arithmetic sequence start, start+step, start+2*step, ...
// continuing while the cursor is below end for positive steps, or above end
// for negative steps. A zero step fails with ErrInvalidArgument. The
// sequence is restartable.
func Range(start, end, step int) (Seq[int], error) {
	if step == 0 {
		return Empty[int](), fmt.Errorf("%w: range step must be non-zero", ErrInvalidArgument)
	}
	return Seq[int]{open: func() pullFunc[int] {
		cur := start
		return func(any) (int, bool, error) {
			if step > 0 && cur >= end || step < 0 && cur <= end {
				return 0, false, nil
			}
			v := cur
			cur += step
			return v, true, nil
		}
	}}, nil
}

// RangeFrom creates the unbounded arithmetic sequence start, start+step, ...
// in the direction of step. A zero step fails with ErrInvalidArgument. The
// sequence never signals exhaustion; bound it with Take before collecting.
func RangeFrom(start, step int) (Seq[int], error) {
	if step == 0 {
		return Empty[int](), fmt.Errorf("%w: range step must be non-zero", ErrInvalidArgument)
	}
	return Seq[int]{open: func() pullFunc[int] {
		cur := start
		return func(any) (int, bool, error) {
			v := cur
			cur += step
			return v, true, nil
		}
	}}, nil
}

// Walk creates the pre-order depth-first traversal of a recursive structure:
// the root's value first, then each child's full traversal in order. The
// traversal delegates lazily, so deep structures are only descended as far
// as the consumer pulls. It assumes the structure is acyclic; a cyclic
// children function loops forever. Restartable when children is
// deterministic.
func Walk[T any](root T, children func(T) []T) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		subtrees := Map(FromSlice(children(root)), func(child T) Seq[T] {
			return Walk(child, children)
		})
		return Chain(Of(root), Flatten(subtrees)).pullFn()
	}}
}

// Generate creates a one-shot sequence driven by next, which closes over its
// own mutable state and reports exhaustion by returning false. There is no
// restart guarantee: every session continues the same underlying producer
// from wherever the previous one stopped.
func Generate[T any](next func() (T, bool)) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		return func(any) (T, bool, error) {
			v, ok := next()
			return v, ok, nil
		}
	}}
}

// Coroutine creates a one-shot two-way sequence: the resume value given to
// Session.Send is forwarded to next on each pull. Session.Next forwards nil.
// Like Generate, sessions share the underlying producer.
func Coroutine[T any](next func(resume any) (T, bool)) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		return func(resume any) (T, bool, error) {
			v, ok := next(resume)
			return v, ok, nil
		}
	}}
}

// Repeat creates the infinite sequence v, v, v, ...
func Repeat[T any](v T) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		return func(any) (T, bool, error) {
			return v, true, nil
		}
	}}
}

// Iterate creates the infinite sequence seed, f(seed), f(f(seed)), ...
// Restartable: each session re-applies f starting from seed.
func Iterate[T any](seed T, f func(T) T) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		cur := seed
		return func(any) (T, bool, error) {
			v := cur
			cur = f(cur)
			return v, true, nil
		}
	}}
}

// FromChannel creates a one-shot sequence that receives from ch until it is
// closed. A pull blocks while the channel is open and empty; use a bounded
// producer or close the channel to end the sequence.
func FromChannel[T any](ch <-chan T) Seq[T] {
	return Seq[T]{open: func() pullFunc[T] {
		return func(any) (T, bool, error) {
			v, ok := <-ch
			if !ok {
				var zero T
				return zero, false, nil
			}
			return v, true, nil
		}
	}}
}
