package treemap

// Squarify lays items out in successive bands along the shorter side of the
// remaining space, adding items to a band for as long as that keeps the
// band's worst aspect ratio from getting worse. Each closed band is filled
// with [Slice] when the space is wider than tall and with [Dice] otherwise,
// and the last band takes all the space that is left.
//
// This is the algorithm from "Squarified Treemaps" by Bruls, Huizing and
// van Wijk (2000). It works best with items sorted by descending weight.
//
// Weights are used as areas, see [SquarifyScaled] to fit them to rect.
//
// Complexity: O(n).
func Squarify[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	for len(items) > 0 {
		wide := rect.W > rect.H
		side, length := rect.W, rect.H
		if wide {
			side, length = rect.H, rect.W
		}
		sideSquared := side * side

		var total N
		numer, denom := N(1), N(0)
		n := len(items)
		for i := range items {
			s := size(&items[i])
			next := total + s
			nn, nd := ratio(sideSquared, next, s)
			if i > 0 && nn*denom > numer*nd {
				length = div(total, side)
				n = i
				break
			}
			total, numer, denom = next, nn, nd
		}

		band := items[:n]
		items = items[n:]
		if wide {
			rest := rect.W - length
			rect.W = length
			Slice(rect, band, size, place)
			rect.W = rest
			rect.X += length
		} else {
			rest := rect.H - length
			rect.H = length
			Dice(rect, band, size, place)
			rect.H = rest
			rect.Y += length
		}
	}
}

// SquarifyScaled is [Squarify] with weights scaled to fill rect.
//
// Complexity: O(n).
func SquarifyScaled[N Number, T any](rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) {
	if s, ok := scaled(rect, items, size); ok {
		Squarify(rect, items, s, place)
	}
}
