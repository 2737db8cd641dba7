package treemap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var paperWeights = []float32{6, 6, 4, 3, 2, 2, 1}

type entry[N Number] struct {
	idx    int
	size   N
	rect   Rect[N]
	placed int
}

func newEntries[N Number](sizes ...N) []entry[N] {
	es := make([]entry[N], len(sizes))
	for i, s := range sizes {
		es[i] = entry[N]{idx: i, size: s}
	}
	return es
}

func sizeOf[N Number](e *entry[N]) N { return e.size }

// inOrder returns a placement func that fails the test when items are placed
// out of input order.
func inOrder[N Number](t *testing.T) func(*entry[N], Rect[N]) {
	t.Helper()
	next := 0
	return func(e *entry[N], r Rect[N]) {
		if e.idx < next {
			t.Errorf("item %d placed after item %d", e.idx, next-1)
		}
		next = e.idx + 1
		e.rect = r
		e.placed++
	}
}

func rectsOf[N Number](es []entry[N]) []Rect[N] {
	out := make([]Rect[N], len(es))
	for i, e := range es {
		out[i] = e.rect
	}
	return out
}

func approx() cmp.Option { return cmpopts.EquateApprox(0, 1e-4) }

func assertRects[N Number](t *testing.T, got, want []Rect[N]) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx()); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
}

func assertPlacedOnce[N Number](t *testing.T, es []entry[N]) {
	t.Helper()
	for _, e := range es {
		if e.placed != 1 {
			t.Errorf("item %d placed %d times, want 1", e.idx, e.placed)
		}
	}
}
