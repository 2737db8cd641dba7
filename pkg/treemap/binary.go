package treemap

import "sort"

// Binary splits rect recursively into two parts of nearly equal weight, cutting
// across the longer side each time, until every item has its own rectangle.
//
// Cut positions are weighted averages of the rect's edges, so the result is
// proportional for any weights; with weights already summing to the rect's
// area it also fits exactly. A run of items whose weights add up to zero is
// skipped and those items are not placed.
//
// Complexity: O(n log n).
func Binary[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if len(items) == 0 {
		return
	}
	sums := make([]N, len(items))
	var total N
	for i := range items {
		total += size(&items[i])
		sums[i] = total
	}
	splitBinary(rect, items, sums, 0, total, place)
}

// BinaryScaled is [Binary] with weights scaled to fill rect.
func BinaryScaled[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if s, ok := scaled(rect, items, size); ok {
		Binary(rect, items, s, place)
	}
}

// splitBinary lays out items in rect. sums holds the prefix sums of the whole
// run aligned with items, offset is the weight placed before items and value
// the weight of items.
func splitBinary[N Number, T any](rect Rect[N], items []T, sums []N, offset, value N, place func(*T, Rect[N])) {
	if len(items) == 0 || value == 0 {
		return
	}
	if len(items) == 1 {
		place(&items[0], rect)
		return
	}

	target := value/2 + offset
	mid := sort.Search(len(sums), func(i int) bool { return sums[i] > target })
	// Both halves must be non-empty or the recursion stalls.
	mid = max(1, min(mid, len(items)-1))

	left := sums[mid-1] - offset
	right := value - left

	var lrect, rrect Rect[N]
	if rect.W > rect.H {
		xe := rect.X + rect.W
		xm := (rect.X*right + xe*left) / value
		lrect = Rect[N]{X: rect.X, Y: rect.Y, W: xm - rect.X, H: rect.H}
		rrect = Rect[N]{X: xm, Y: rect.Y, W: xe - xm, H: rect.H}
	} else {
		ye := rect.Y + rect.H
		ym := (rect.Y*right + ye*left) / value
		lrect = Rect[N]{X: rect.X, Y: rect.Y, W: rect.W, H: ym - rect.Y}
		rrect = Rect[N]{X: rect.X, Y: ym, W: rect.W, H: ye - ym}
	}

	if mid == 1 {
		place(&items[0], lrect)
	} else {
		splitBinary(lrect, items[:mid], sums[:mid], offset, left, place)
	}

	rest := items[mid:]
	if len(rest) == 1 {
		place(&rest[0], rrect)
	} else {
		splitBinary(rrect, rest, sums[mid:], sums[mid-1], right, place)
	}
}
