package treemap

import (
	"math"
	"math/rand/v2"
	"testing"
)

func randomWeights(r *rand.Rand, n int) []float64 {
	ws := make([]float64, n)
	for i := range ws {
		ws[i] = 1 + r.Float64()*99
	}
	return ws
}

func TestScaledLayoutProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	rects := []Rect[float64]{
		{W: 800, H: 600},
		{X: 10, Y: 20, W: 300, H: 900},
		{X: -5, Y: -5, W: 1, H: 1},
	}

	for _, a := range Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			for _, rect := range rects {
				for _, n := range []int{1, 2, 3, 10, 57} {
					es := newEntries(randomWeights(r, n)...)
					if !Run(a, true, rect, es, sizeOf[float64], inOrder[float64](t)) {
						t.Fatalf("Run(%q) reported unknown algorithm", a)
					}
					assertPlacedOnce(t, es)

					tol := 1e-9 * math.Max(rect.W, rect.H)
					var area float64
					for _, e := range es {
						if !rect.Contains(e.rect, tol) {
							t.Errorf("n=%d item %d rect %v escapes %v", n, e.idx, e.rect, rect)
						}
						if e.rect.W < -tol || e.rect.H < -tol {
							t.Errorf("n=%d item %d has negative size %v", n, e.idx, e.rect)
						}
						area += e.rect.Area()
					}
					if math.Abs(area-rect.Area()) > 1e-9*rect.Area() {
						t.Errorf("n=%d total area = %v, want %v", n, area, rect.Area())
					}
				}
			}
		})
	}
}

func TestScaledMatchesPremultipliedWeights(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	rect := Rect[float64]{X: 2, Y: 3, W: 40, H: 25}
	weights := randomWeights(r, 23)

	var total float64
	for _, w := range weights {
		total += w
	}
	s := rect.Area() / total

	premultiplied := make([]float64, len(weights))
	for i, w := range weights {
		premultiplied[i] = w * s
	}

	for _, a := range Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			got := newEntries(weights...)
			Run(a, true, rect, got, sizeOf[float64], inOrder[float64](t))

			want := newEntries(premultiplied...)
			Run(a, false, rect, want, sizeOf[float64], inOrder[float64](t))

			assertRects(t, rectsOf(got), rectsOf(want))
		})
	}
}

func TestEmptyInputPlacesNothing(t *testing.T) {
	for _, a := range Algorithms() {
		for _, scaled := range []bool{false, true} {
			Run(a, scaled, Rect[float64]{W: 10, H: 10}, []entry[float64]{}, sizeOf[float64], func(*entry[float64], Rect[float64]) {
				t.Errorf("%s (scaled=%v) placed an item for empty input", a, scaled)
			})
		}
	}
}

func TestSingleItemGetsWholeRect(t *testing.T) {
	rect := Rect[float64]{X: 3, Y: 4, W: 5, H: 6}
	for _, a := range Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			es := newEntries[float64](30)
			Run(a, true, rect, es, sizeOf[float64], inOrder[float64](t))
			assertPlacedOnce(t, es)
			assertRects(t, rectsOf(es), []Rect[float64]{rect})
		})
	}
}

func TestScaledZeroTotalPlacesNothing(t *testing.T) {
	for _, a := range Algorithms() {
		es := newEntries[float64](0, 0)
		Run(a, true, Rect[float64]{W: 10, H: 10}, es, sizeOf[float64], func(*entry[float64], Rect[float64]) {
			t.Errorf("%s placed an item with zero total weight", a)
		})
	}
}

func TestIntegerLayoutsTileExactly(t *testing.T) {
	rect := Rect[int64]{W: 64, H: 48}
	weights := []int64{768, 512, 512, 384, 256, 256, 192, 128, 64}

	for _, a := range Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			es := newEntries(weights...)
			Run(a, true, rect, es, sizeOf[int64], inOrder[int64](t))
			assertPlacedOnce(t, es)

			var area int64
			for _, e := range es {
				area += e.rect.Area()
			}
			if area > rect.Area() {
				t.Errorf("total area = %d exceeds %d", area, rect.Area())
			}
		})
	}
}
