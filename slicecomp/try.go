package slicecomp

// ==========================================
// Try Functions (Error Handling)
// Suitable for scenarios where errors may occur (Fail Fast)
// ==========================================

// TryMap is [Map] with a transform that may return an error.
// The first error aborts the pass; no partial result is returned.
func TryMap[T any, R any](collection []T, transform func(T) (R, error)) ([]R, error) {
	if len(collection) == 0 {
		return []R{}, nil
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		var err error
		res[i], err = transform(v)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// TryWhere is [Where] with a predicate that may return an error.
// Returns immediately upon encountering an error.
func TryWhere[T any](collection []T, predicate func(T) (bool, error)) ([]T, error) {
	if len(collection) == 0 {
		return []T{}, nil
	}
	_ = collection[len(collection)-1]

	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		ok, err := predicate(v)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, v)
		}
	}
	return res, nil
}

// TryMapWhere is [MapWhere] where both the predicate and the transform may
// return an error. The predicate is evaluated first; the transform runs
// only for elements that pass. The first error from either aborts the pass.
func TryMapWhere[T any, R any](collection []T, transform func(T) (R, error), predicate func(T) (bool, error)) ([]R, error) {
	if len(collection) == 0 {
		return []R{}, nil
	}
	_ = collection[len(collection)-1]

	res := make([]R, 0, len(collection)/2)
	for _, v := range collection {
		ok, err := predicate(v)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		r, err := transform(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

// TryProduct is [Product] with a transform that may return an error.
// The first error aborts the remaining iteration over the product.
func TryProduct[A any, B any, R any](outer []A, inner []B, transform func(A, B) (R, error)) ([]R, error) {
	if len(outer) == 0 || len(inner) == 0 {
		return []R{}, nil
	}
	_ = outer[len(outer)-1]
	_ = inner[len(inner)-1]

	res := make([]R, 0, len(outer)*len(inner))
	for _, a := range outer {
		for _, b := range inner {
			r, err := transform(a, b)
			if err != nil {
				return nil, err
			}
			res = append(res, r)
		}
	}
	return res, nil
}

// TryProductWhere is [ProductWhere] where both functions may return an
// error; fail fast, predicate first.
func TryProductWhere[A any, B any, R any](outer []A, inner []B, transform func(A, B) (R, error), predicate func(A, B) (bool, error)) ([]R, error) {
	if len(outer) == 0 || len(inner) == 0 {
		return []R{}, nil
	}
	_ = outer[len(outer)-1]
	_ = inner[len(inner)-1]

	res := make([]R, 0, len(outer)*len(inner)/2)
	for _, a := range outer {
		for _, b := range inner {
			ok, err := predicate(a, b)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			r, err := transform(a, b)
			if err != nil {
				return nil, err
			}
			res = append(res, r)
		}
	}
	return res, nil
}

// TryToMap is [ToMap] where keyOf and valueOf may return an error.
// The first error aborts the pass; no partial map is returned.
func TryToMap[T any, K comparable, V any](collection []T, keyOf func(T) (K, error), valueOf func(T) (V, error)) (map[K]V, error) {
	res := make(map[K]V, len(collection))
	if len(collection) == 0 {
		return res, nil
	}
	_ = collection[len(collection)-1]

	for _, v := range collection {
		k, err := keyOf(v)
		if err != nil {
			return nil, err
		}
		val, err := valueOf(v)
		if err != nil {
			return nil, err
		}
		res[k] = val
	}
	return res, nil
}
