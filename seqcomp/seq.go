package seqcomp

import "iter"

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Where yields only the elements of seq that satisfy the predicate.
func Where[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// MapWhere fuses Where and Map into one pass: elements that satisfy the
// predicate are transformed and yielded in order, the rest are omitted.
func MapWhere[T, R any](seq iter.Seq[T], transform func(T) R, predicate func(T) bool) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(transform(v)) {
					return
				}
			}
		}
	}
}

// Product yields transform(a, b) for each pair of outer×inner, outer
// slowest and inner fastest. The inner sequence is restarted for every
// outer element, so it must be re-iterable (sequences from slices.Values
// or [Range] are).
func Product[A, B, R any](outer iter.Seq[A], inner iter.Seq[B], transform func(A, B) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for a := range outer {
			for b := range inner {
				if !yield(transform(a, b)) {
					return
				}
			}
		}
	}
}

// ProductWhere is [Product] restricted to pairs that satisfy the predicate.
func ProductWhere[A, B, R any](outer iter.Seq[A], inner iter.Seq[B], transform func(A, B) R, predicate func(A, B) bool) iter.Seq[R] {
	return func(yield func(R) bool) {
		for a := range outer {
			for b := range inner {
				if predicate(a, b) {
					if !yield(transform(a, b)) {
						return
					}
				}
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if !yield(res, err) {
				return
			}
		}
	}
}

// TryMapWhere is [MapWhere] where both functions may return an error.
// The predicate runs first; elements it rejects are skipped silently.
// Errors from either function are yielded to the consumer, who decides
// whether to continue.
func TryMapWhere[T, R any](seq iter.Seq[T], transform func(T) (R, error), predicate func(T) (bool, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zero R
		for v := range seq {
			ok, err := predicate(v)
			if err != nil {
				if !yield(zero, err) {
					return
				}
				continue
			}
			if !ok {
				continue
			}
			res, err := transform(v)
			if !yield(res, err) {
				return
			}
		}
	}
}
