package treemap

import "testing"

var squarifyPaperRects = []Rect[float32]{
	{X: 0, Y: 0, W: 3, H: 2},
	{X: 0, Y: 2, W: 3, H: 2},
	{X: 3, Y: 0, W: 1.7142857, H: 2.3333333},
	{X: 4.714286, Y: 0, W: 1.2857141, H: 2.3333333},
	{X: 3, Y: 2.3333333, W: 1.1999999, H: 1.6666667},
	{X: 4.2, Y: 2.3333333, W: 1.1999999, H: 1.6666667},
	{X: 5.3999996, Y: 2.3333333, W: 0.60000014, H: 1.6666667},
}

func TestSquarifyPaperExample(t *testing.T) {
	es := newEntries(paperWeights...)
	Squarify(Rect[float32]{W: 6, H: 4}, es, sizeOf[float32], inOrder[float32](t))

	assertPlacedOnce(t, es)
	assertRects(t, rectsOf(es), squarifyPaperRects)
	for _, e := range es {
		if d := e.rect.Area() - e.size; d > 1e-5 || d < -1e-5 {
			t.Errorf("item %d area = %v, want %v", e.idx, e.rect.Area(), e.size)
		}
	}
}

func TestSquarifyScaled(t *testing.T) {
	tests := []struct {
		name    string
		rect    Rect[float32]
		weights []float32
		want    []Rect[float32]
	}{
		{
			name:    "doubled weights",
			rect:    Rect[float32]{W: 6, H: 4},
			weights: []float32{12, 12, 8, 6, 4, 4, 2},
			want:    squarifyPaperRects,
		},
		{
			name:    "doubled rect",
			rect:    Rect[float32]{W: 12, H: 8},
			weights: paperWeights,
			want: []Rect[float32]{
				{X: 0, Y: 0, W: 6, H: 4},
				{X: 0, Y: 4, W: 6, H: 4},
				{X: 6, Y: 0, W: 3.4285715, H: 4.6666665},
				{X: 9.428572, Y: 0, W: 2.5714283, H: 4.6666665},
				{X: 6, Y: 4.6666665, W: 2.3999999, H: 3.3333335},
				{X: 8.4, Y: 4.6666665, W: 2.3999999, H: 3.3333335},
				{X: 10.799999, Y: 4.6666665, W: 1.2000003, H: 3.3333335},
			},
		},
		{
			name:    "offset rect",
			rect:    Rect[float32]{X: 1, Y: 2, W: 12, H: 8},
			weights: paperWeights,
			want: []Rect[float32]{
				{X: 1, Y: 2, W: 6, H: 4},
				{X: 1, Y: 6, W: 6, H: 4},
				{X: 7, Y: 2, W: 3.4285715, H: 4.6666665},
				{X: 10.428572, Y: 2, W: 2.5714283, H: 4.6666665},
				{X: 7, Y: 6.6666665, W: 2.3999999, H: 3.3333335},
				{X: 9.4, Y: 6.6666665, W: 2.3999999, H: 3.3333335},
				{X: 11.799999, Y: 6.6666665, W: 1.2000003, H: 3.3333335},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := newEntries(tt.weights...)
			SquarifyScaled(tt.rect, es, sizeOf[float32], inOrder[float32](t))
			assertPlacedOnce(t, es)
			assertRects(t, rectsOf(es), tt.want)
		})
	}
}

func TestSquarifySingleItemFillsRect(t *testing.T) {
	rect := Rect[float64]{X: 5, Y: 5, W: 10, H: 2}
	es := newEntries[float64](3)
	Squarify(rect, es, sizeOf[float64], inOrder[float64](t))
	if es[0].rect != rect {
		t.Errorf("rect = %v, want %v", es[0].rect, rect)
	}
}

func TestSquarifyZeroWeightItemsArePlaced(t *testing.T) {
	es := newEntries[float64](4, 0, 2, 0)
	SquarifyScaled(Rect[float64]{W: 3, H: 2}, es, sizeOf[float64], inOrder[float64](t))

	assertPlacedOnce(t, es)
	for _, e := range es {
		if e.size == 0 && e.rect.Area() > 1e-9 {
			t.Errorf("zero-weight item %d got area %v", e.idx, e.rect.Area())
		}
	}
}

func TestSquarifyDegenerateRect(t *testing.T) {
	es := newEntries[float64](3, 2, 1)
	Squarify(Rect[float64]{X: 1, Y: 1, W: 0, H: 0}, es, sizeOf[float64], inOrder[float64](t))

	assertPlacedOnce(t, es)
	for _, e := range es {
		if e.rect.Area() != 0 {
			t.Errorf("item %d area = %v, want 0", e.idx, e.rect.Area())
		}
	}
}

func TestSquarifyInteger(t *testing.T) {
	es := newEntries(6, 6, 4, 3, 2, 2, 1)
	Squarify(Rect[int]{W: 6, H: 4}, es, sizeOf[int], inOrder[int](t))

	assertPlacedOnce(t, es)
	outer := Rect[int]{W: 6, H: 4}
	var area int
	for _, e := range es {
		if !outer.Contains(e.rect, 0) {
			t.Errorf("item %d rect %v escapes %v", e.idx, e.rect, outer)
		}
		area += e.rect.Area()
	}
	if area != 24 {
		t.Errorf("total area = %d, want 24", area)
	}
}
