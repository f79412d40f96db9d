package slicecomp

// ==========================================
//  Pure Functions (Happy Path)
// ==========================================

// Map transforms a slice of type T to a slice of type R.
// The result has the same length as collection, and element i equals
// transform(collection[i]).
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// Where returns the elements of collection that satisfy the predicate,
// in their original relative order.
func Where[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// MapWhere transforms the elements of collection that satisfy the
// predicate, in their original relative order. Elements failing the
// predicate are omitted entirely, never replaced with a placeholder.
//
// MapWhere(s, f, p) is equivalent to Map(Where(s, p), f) in a single pass.
func MapWhere[T any, R any](collection []T, transform func(T) R, predicate func(T) bool) []R {
	if len(collection) == 0 {
		return []R{}
	}
	_ = collection[len(collection)-1]

	res := make([]R, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, transform(v))
		}
	}
	return res
}

// Product applies transform to every pair of the Cartesian product
// outer×inner. The outer index varies slowest and the inner index varies
// fastest, so the result has length len(outer)*len(inner) and the element
// at position i*len(inner)+j equals transform(outer[i], inner[j]).
func Product[A any, B any, R any](outer []A, inner []B, transform func(A, B) R) []R {
	if len(outer) == 0 || len(inner) == 0 {
		return []R{}
	}
	_ = outer[len(outer)-1]
	_ = inner[len(inner)-1]

	res := make([]R, 0, len(outer)*len(inner))
	for _, a := range outer {
		for _, b := range inner {
			res = append(res, transform(a, b))
		}
	}
	return res
}

// ProductWhere applies transform to the pairs of outer×inner that satisfy
// the predicate, enumerated outer-slowest / inner-fastest. Pairs failing
// the predicate are omitted.
func ProductWhere[A any, B any, R any](outer []A, inner []B, transform func(A, B) R, predicate func(A, B) bool) []R {
	if len(outer) == 0 || len(inner) == 0 {
		return []R{}
	}
	_ = outer[len(outer)-1]
	_ = inner[len(inner)-1]

	res := make([]R, 0, len(outer)*len(inner)/2)
	for _, a := range outer {
		for _, b := range inner {
			if predicate(a, b) {
				res = append(res, transform(a, b))
			}
		}
	}
	return res
}

// Product3 applies transform to every triple of outer×middle×inner, with
// the outer index slowest and the inner index fastest. Readability of
// call sites tends to degrade beyond two variables; prefer [Product]
// where possible.
func Product3[A any, B any, C any, R any](outer []A, middle []B, inner []C, transform func(A, B, C) R) []R {
	if len(outer) == 0 || len(middle) == 0 || len(inner) == 0 {
		return []R{}
	}

	res := make([]R, 0, len(outer)*len(middle)*len(inner))
	for _, a := range outer {
		for _, b := range middle {
			for _, c := range inner {
				res = append(res, transform(a, b, c))
			}
		}
	}
	return res
}

// Product3Where is [Product3] with a predicate; failing triples are omitted.
func Product3Where[A any, B any, C any, R any](outer []A, middle []B, inner []C, transform func(A, B, C) R, predicate func(A, B, C) bool) []R {
	if len(outer) == 0 || len(middle) == 0 || len(inner) == 0 {
		return []R{}
	}

	res := make([]R, 0, len(outer)*len(middle)*len(inner)/2)
	for _, a := range outer {
		for _, b := range middle {
			for _, c := range inner {
				if predicate(a, b, c) {
					res = append(res, transform(a, b, c))
				}
			}
		}
	}
	return res
}

// ToMap builds a map from collection, iterated in order, keyed by
// keyOf(v) with value valueOf(v). If two elements produce the same key,
// the later element wins.
func ToMap[T any, K comparable, V any](collection []T, keyOf func(T) K, valueOf func(T) V) map[K]V {
	res := make(map[K]V, len(collection))
	if len(collection) == 0 {
		return res
	}
	_ = collection[len(collection)-1]

	for _, v := range collection {
		res[keyOf(v)] = valueOf(v)
	}
	return res
}

// ToMapWhere is [ToMap] restricted to elements that satisfy the
// predicate. Last-write-wins applies among the qualifying elements only.
func ToMapWhere[T any, K comparable, V any](collection []T, keyOf func(T) K, valueOf func(T) V, predicate func(T) bool) map[K]V {
	res := make(map[K]V, len(collection))
	if len(collection) == 0 {
		return res
	}
	_ = collection[len(collection)-1]

	for _, v := range collection {
		if predicate(v) {
			res[keyOf(v)] = valueOf(v)
		}
	}
	return res
}
