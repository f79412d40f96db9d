package seqcomp

import "iter"

// Pairs yields (keyOf(v), valueOf(v)) for each element of seq, in
// sequence order. Combined with [CollectMap] it is the lazy form of a
// dictionary comprehension; compose with [Where] first to filter.
func Pairs[T any, K comparable, V any](seq iter.Seq[T], keyOf func(T) K, valueOf func(T) V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for v := range seq {
			if !yield(keyOf(v), valueOf(v)) {
				return
			}
		}
	}
}

// CollectMap drains a key/value sequence into a map. If a key is
// produced more than once, the last value wins.
func CollectMap[K comparable, V any](seq iter.Seq2[K, V]) map[K]V {
	res := make(map[K]V)
	for k, v := range seq {
		res[k] = v
	}
	return res
}
