// Package seq implements lazy, pull-based sequences and their combinators.
//
// A Seq describes how to produce an ordered stream of values; nothing is
// computed until a consumer opens a Session and pulls. Combinators (Map,
// Filter, Take, Chain, ...) wrap an upstream Seq and stay lazy, so pipelines
// over infinite sources are fine as long as consumption is bounded, e.g.
// with Take, before calling Collect.
package seq

import "errors"

// ErrInvalidArgument is wrapped by every construction-time argument error
// (zero range step, negative take count). Match with errors.Is.
var ErrInvalidArgument = errors.New("seq: invalid argument")

// pullFunc produces the next element of one consumption pass. The resume
// argument is forwarded from Session.Send; sources that are not two-way
// ignore it. A non-nil error terminates the pass.
type pullFunc[T any] func(resume any) (T, bool, error)

// Seq is a lazy sequence of T. It is a session factory: each consumption
// pass opens its own cursor state via Session. Whether two sessions observe
// the same elements depends on the source adapter (FromSlice and Range are
// restartable, Generate is not). The zero value is the empty sequence.
type Seq[T any] struct {
	open func() pullFunc[T]
}

// Session starts a new consumption pass over the sequence.
func (s Seq[T]) Session() *Session[T] {
	return &Session[T]{pull: s.pullFn()}
}

// pullFn opens the per-session pull function, normalizing the zero Seq to an
// immediately exhausted pass. Combinators use it to drive their upstreams.
func (s Seq[T]) pullFn() pullFunc[T] {
	if s.open == nil {
		return func(any) (T, bool, error) {
			var zero T
			return zero, false, nil
		}
	}
	return s.open()
}

// Session is a single pass over a Seq. It owns the pass's cursor state and
// enforces the sequence state machine: once a pull signals exhaustion, every
// later pull on the same Session signals exhaustion too, regardless of how
// the underlying source behaves. Sessions are not safe for concurrent use.
type Session[T any] struct {
	pull pullFunc[T]
	err  error
	done bool
}

// Next pulls the next element.
func (c *Session[T]) Next() Step[T] {
	return c.Send(nil)
}

// Send pulls the next element, passing resume to the source. Only two-way
// sources built with Coroutine observe the resume value; everything else
// treats Send(v) exactly like Next.
func (c *Session[T]) Send(resume any) Step[T] {
	if c.done {
		return Done[T]()
	}
	v, ok, err := c.pull(resume)
	if err != nil {
		c.done = true
		c.err = err
		return Done[T]()
	}
	if !ok {
		c.done = true
		return Done[T]()
	}
	return Yield(v)
}

// Err returns the callback failure that terminated the pass, if any. It is
// sticky: the Session exhausts at the failing pull and keeps reporting the
// same error afterwards.
func (c *Session[T]) Err() error {
	return c.err
}
