package treemap

// Total returns the sum of all item weights.
func Total[N Number, T any](items []T, size func(*T) N) N {
	var total N
	for i := range items {
		total += size(&items[i])
	}
	return total
}

// Scale returns the factor that makes the item weights add up to the area of
// rect. The total weight must not be zero: floating point types yield an
// infinity or NaN and integer types panic.
func Scale[N Number, T any](rect Rect[N], items []T, size func(*T) N) N {
	return rect.Area() / Total(items, size)
}

// scaled returns a size function multiplying size by the scale for rect, and
// false when the items carry no weight at all.
func scaled[N Number, T any](rect Rect[N], items []T, size func(*T) N) (func(*T) N, bool) {
	total := Total(items, size)
	if total == 0 {
		return nil, false
	}
	s := rect.Area() / total
	return func(item *T) N { return size(item) * s }, true
}
