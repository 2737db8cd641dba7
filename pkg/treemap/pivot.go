package treemap

// pivotRule picks the index of the pivot item within a non-empty group.
type pivotRule[N Number, T any] func(items []T, size func(*T) N) int

func pivotMiddle[N Number, T any](items []T, _ func(*T) N) int {
	return len(items) / 2
}

// pivotLargest returns the first item with the largest weight.
func pivotLargest[N Number, T any](items []T, size func(*T) N) int {
	idx := 0
	var best N
	for i := range items {
		if s := size(&items[i]); s > best {
			idx, best = i, s
		}
	}
	return idx
}

// OrderedPivotByMiddle lays items out around the middle item of each group.
//
// The items before the pivot get a strip along the long side of rect. The
// pivot and the items right after it share a second strip, pivot first, with
// the split chosen to keep the pivot as square as possible; the remaining
// items fill what is left. Every part is laid out again the same way.
//
// Weights are used as areas, see [OrderedPivotByMiddleScaled].
//
// Complexity: O(n log n).
func OrderedPivotByMiddle[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if len(items) > 0 {
		orderedPivot(rect, items, size, place, pivotMiddle[N, T])
	}
}

// OrderedPivotBySize is [OrderedPivotByMiddle] with the largest item of each
// group as the pivot.
//
// Complexity: O(n²).
func OrderedPivotBySize[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if len(items) > 0 {
		orderedPivot(rect, items, size, place, pivotLargest[N, T])
	}
}

// OrderedPivotByMiddleScaled is [OrderedPivotByMiddle] with weights scaled to
// fill rect.
func OrderedPivotByMiddleScaled[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if s, ok := scaled(rect, items, size); ok {
		orderedPivot(rect, items, s, place, pivotMiddle[N, T])
	}
}

// OrderedPivotBySizeScaled is [OrderedPivotBySize] with weights scaled to
// fill rect.
func OrderedPivotBySizeScaled[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if s, ok := scaled(rect, items, size); ok {
		orderedPivot(rect, items, s, place, pivotLargest[N, T])
	}
}

func orderedPivot[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N]), rule pivotRule[N, T]) {
	p := rule(items, size)
	before, rest := items[:p], items[p:]

	wide := rect.W >= rect.H
	side := rect.W
	if wide {
		side = rect.H
	}
	sideSquared := side * side

	if len(before) > 0 {
		thick := div(Total(before, size), side)
		r1 := rect
		if wide {
			r1.W = thick
			rect.X += thick
			rect.W -= thick
		} else {
			r1.H = thick
			rect.Y += thick
			rect.H -= thick
		}
		pivotGroup(r1, before, size, place, rule)
	}

	pivot, after := &rest[0], rest[1:]
	pivotSize := size(pivot)
	if len(after) == 0 {
		place(pivot, rect)
		return
	}

	// Grow the pivot's strip one item at a time, keeping the split whose
	// newest item has the best aspect ratio.
	total := pivotSize
	split, stripSize := 0, total
	numer, denom := N(1), N(0)
	for i := range after {
		s := size(&after[i])
		total += s
		nn, nd := ratio(sideSquared, total, s)
		if nn*denom < numer*nd {
			numer, denom = nn, nd
			split, stripSize = i, total
		}
	}
	l2, l3 := after[:split+1], after[split+1:]

	thick := div(stripSize, side)
	pivotLen := div(pivotSize, thick)
	var rp, r2, r3 Rect[N]
	if wide {
		rp = Rect[N]{X: rect.X, Y: rect.Y, W: thick, H: pivotLen}
		r2 = Rect[N]{X: rect.X, Y: rect.Y + pivotLen, W: thick, H: rect.H - pivotLen}
		r3 = Rect[N]{X: rect.X + thick, Y: rect.Y, W: rect.W - thick, H: rect.H}
	} else {
		rp = Rect[N]{X: rect.X, Y: rect.Y, W: pivotLen, H: thick}
		r2 = Rect[N]{X: rect.X + pivotLen, Y: rect.Y, W: rect.W - pivotLen, H: thick}
		r3 = Rect[N]{X: rect.X, Y: rect.Y + thick, W: rect.W, H: rect.H - thick}
	}

	place(pivot, rp)
	pivotGroup(r2, l2, size, place, rule)
	pivotGroup(r3, l3, size, place, rule)
}

func pivotGroup[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N]), rule pivotRule[N, T]) {
	switch len(items) {
	case 0:
	case 1:
		place(&items[0], rect)
	default:
		orderedPivot(rect, items, size, place, rule)
	}
}
