// Package fp provides lightweight functional composition helpers.
//
// Example:
//
//	evens := seq.Filter(numbers, fp.Not(isOdd))
package fp

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of functions to value. All functions must accept
// and return the same type.
//
// Example:
//
//	result := fp.Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	addFive := fp.Curry(add)(5)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Not negates a predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}

// And combines predicates conjunctively; the result short-circuits on the
// first false.
func And[T any](predicates ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range predicates {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates disjunctively; the result short-circuits on the
// first true.
func Or[T any](predicates ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range predicates {
			if p(v) {
				return true
			}
		}
		return false
	}
}
