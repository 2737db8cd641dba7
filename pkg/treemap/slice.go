package treemap

// Slice stacks items top to bottom in rect. Each item spans the full width
// and gets a height of its weight divided by that width; the last item takes
// whatever height is left.
//
// Weights are used as areas, see [SliceScaled] to fit them to rect.
func Slice[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	y := rect.Y
	last := len(items) - 1
	for i := range items {
		w := size(&items[i])
		r := Rect[N]{X: rect.X, Y: y, W: rect.W}
		if i < last {
			r.H = div(w, rect.W)
		} else {
			r.H = rect.H - (y - rect.Y)
		}
		y += r.H
		place(&items[i], r)
	}
}

// Dice lines items up left to right in rect. Each item spans the full height
// and gets a width of its weight divided by that height; the last item takes
// whatever width is left.
//
// Weights are used as areas, see [DiceScaled] to fit them to rect.
func Dice[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	x := rect.X
	last := len(items) - 1
	for i := range items {
		w := size(&items[i])
		r := Rect[N]{X: x, Y: rect.Y, H: rect.H}
		if i < last {
			r.W = div(w, rect.H)
		} else {
			r.W = rect.W - (x - rect.X)
		}
		x += r.W
		place(&items[i], r)
	}
}

// SliceScaled is [Slice] with weights scaled to fill rect.
func SliceScaled[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if s, ok := scaled(rect, items, size); ok {
		Slice(rect, items, s, place)
	}
}

// DiceScaled is [Dice] with weights scaled to fill rect.
func DiceScaled[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if s, ok := scaled(rect, items, size); ok {
		Dice(rect, items, s, place)
	}
}
