// Package pipeline offers a fluent builder over seq for same-type stages.
//
// Stage arguments are validated as the pipeline is described, and every
// malformed argument is reported at Build time instead of only the first
// one. Type-changing stages (seq.Map to a different element type, FilterMap)
// stay free functions in seq, since Go methods cannot introduce new type
// parameters.
//
// Example:
//
//	s, err := pipeline.New(naturals).
//		Filter(isEven).
//		Take(10).
//		Build()
package pipeline

import (
	"fmt"

	"github.com/charmingruby/lazyseq/seq"
	"github.com/charmingruby/lazyseq/validated"
)

// Pipeline accumulates stages over a source sequence along with any
// construction-time argument errors.
type Pipeline[T any] struct {
	src  seq.Seq[T]
	errs []error
}

// New starts a pipeline from the provided source sequence.
func New[T any](src seq.Seq[T]) *Pipeline[T] {
	return &Pipeline[T]{src: src}
}

// Map appends a same-type transform stage.
func (p *Pipeline[T]) Map(fn func(T) T) *Pipeline[T] {
	p.src = seq.Map(p.src, fn)
	return p
}

// Filter appends a predicate stage.
func (p *Pipeline[T]) Filter(predicate func(T) bool) *Pipeline[T] {
	p.src = seq.Filter(p.src, predicate)
	return p
}

// Take appends a bounding stage. A negative n is recorded and reported at
// Build time; the pipeline keeps its previous shape.
func (p *Pipeline[T]) Take(n int) *Pipeline[T] {
	s, err := seq.Take(p.src, n)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("take: %w", err))
		return p
	}
	p.src = s
	return p
}

// Drop appends a skipping stage. A negative n is recorded and reported at
// Build time.
func (p *Pipeline[T]) Drop(n int) *Pipeline[T] {
	s, err := seq.Drop(p.src, n)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("drop: %w", err))
		return p
	}
	p.src = s
	return p
}

// TakeWhile appends a while-predicate bounding stage.
func (p *Pipeline[T]) TakeWhile(predicate func(T) bool) *Pipeline[T] {
	p.src = seq.TakeWhile(p.src, predicate)
	return p
}

// DropWhile appends a while-predicate skipping stage.
func (p *Pipeline[T]) DropWhile(predicate func(T) bool) *Pipeline[T] {
	p.src = seq.DropWhile(p.src, predicate)
	return p
}

// Append concatenates further sequences after the pipeline's current output.
func (p *Pipeline[T]) Append(others ...seq.Seq[T]) *Pipeline[T] {
	if len(others) == 0 {
		return p
	}
	parts := append([]seq.Seq[T]{p.src}, others...)
	p.src = seq.Chain(parts...)
	return p
}

// Validate exposes the accumulated state: the sequence described by the
// well-formed stages together with every recorded argument error.
func (p *Pipeline[T]) Validate() validated.Validated[error, seq.Seq[T]] {
	return validated.Valid[error](p.src).Append(p.errs...)
}

// Build returns the described sequence, or the joined accumulation of every
// stage-argument error recorded while describing it.
func (p *Pipeline[T]) Build() (seq.Seq[T], error) {
	return validated.ToResult(p.Validate()).Unwrap()
}
