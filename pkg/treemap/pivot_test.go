package treemap

import "testing"

func TestOrderedPivotByMiddle(t *testing.T) {
	want := []Rect[float32]{
		{X: 0, Y: 0, W: 1.5, H: 4},
		{X: 1.5, Y: 0, W: 2.5, H: 2.4},
		{X: 1.5, Y: 2.4, W: 2.5, H: 1.5999999},
		{X: 4, Y: 0, W: 1.25, H: 2.4},
		{X: 4, Y: 2.4, W: 1.25, H: 1.5999999},
		{X: 5.25, Y: 0, W: 0.75, H: 2.6666667},
		{X: 5.25, Y: 2.6666667, W: 0.75, H: 1.3333333},
	}

	tests := []struct {
		name    string
		weights []float32
		layout  func(Rect[float32], []entry[float32], func(*entry[float32]) float32, func(*entry[float32], Rect[float32]))
	}{
		{"plain", paperWeights, OrderedPivotByMiddle[float32, entry[float32]]},
		{"scaled", paperWeights, OrderedPivotByMiddleScaled[float32, entry[float32]]},
		{"scaled doubled", []float32{12, 12, 8, 6, 4, 4, 2}, OrderedPivotByMiddleScaled[float32, entry[float32]]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := newEntries(tt.weights...)
			tt.layout(Rect[float32]{W: 6, H: 4}, es, sizeOf[float32], inOrder[float32](t))
			assertPlacedOnce(t, es)
			assertRects(t, rectsOf(es), want)
		})
	}
}

func TestOrderedPivotBySize(t *testing.T) {
	want := []Rect[float32]{
		{X: 0, Y: 0, W: 3, H: 2},
		{X: 0, Y: 2, W: 3, H: 2},
		{X: 3, Y: 0, W: 1.7142857, H: 2.3333333},
		{X: 4.714286, Y: 0, W: 1.2857143, H: 2.3333333},
		{X: 3, Y: 2.3333333, W: 2.3999999, H: 0.8333334},
		{X: 3, Y: 3.1666665, W: 2.3999999, H: 0.8333334},
		{X: 5.3999996, Y: 2.3333333, W: 0.60000014, H: 1.6666667},
	}

	tests := []struct {
		name    string
		weights []float32
		layout  func(Rect[float32], []entry[float32], func(*entry[float32]) float32, func(*entry[float32], Rect[float32]))
	}{
		{"plain", paperWeights, OrderedPivotBySize[float32, entry[float32]]},
		{"scaled doubled", []float32{12, 12, 8, 6, 4, 4, 2}, OrderedPivotBySizeScaled[float32, entry[float32]]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := newEntries(tt.weights...)
			tt.layout(Rect[float32]{W: 6, H: 4}, es, sizeOf[float32], inOrder[float32](t))
			assertPlacedOnce(t, es)
			assertRects(t, rectsOf(es), want)
		})
	}
}

func TestPivotLargestPicksFirstMaximum(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		want    int
	}{
		{"descending", []int{5, 4, 3}, 0},
		{"middle peak", []int{1, 7, 2}, 1},
		{"tie", []int{2, 9, 9, 1}, 1},
		{"all zero", []int{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pivotLargest(newEntries(tt.weights...), sizeOf[int]); got != tt.want {
				t.Errorf("pivotLargest() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOrderedPivotEqualWeightsTerminates(t *testing.T) {
	weights := make([]float64, 64)
	for i := range weights {
		weights[i] = 1
	}
	es := newEntries(weights...)
	OrderedPivotBySizeScaled(Rect[float64]{W: 16, H: 9}, es, sizeOf[float64], inOrder[float64](t))
	assertPlacedOnce(t, es)
}
