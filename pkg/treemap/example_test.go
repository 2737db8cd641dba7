package treemap_test

import (
	"fmt"

	"github.com/matzehuels/streemap/pkg/treemap"
)

type file struct {
	name string
	size float64
	rect treemap.Rect[float64]
}

func ExampleSquarify() {
	files := []file{
		{name: "a", size: 6}, {name: "b", size: 6}, {name: "c", size: 4},
		{name: "d", size: 3}, {name: "e", size: 2}, {name: "f", size: 2},
		{name: "g", size: 1},
	}

	treemap.Squarify(
		treemap.FromSize(6.0, 4.0),
		files,
		func(f *file) float64 { return f.size },
		func(f *file, r treemap.Rect[float64]) { f.rect = r },
	)

	for _, f := range files {
		fmt.Printf("%s %.2f %.2f %.2f %.2f\n", f.name, f.rect.X, f.rect.Y, f.rect.W, f.rect.H)
	}
	// Output:
	// a 0.00 0.00 3.00 2.00
	// b 0.00 2.00 3.00 2.00
	// c 3.00 0.00 1.71 2.33
	// d 4.71 0.00 1.29 2.33
	// e 3.00 2.33 1.20 1.67
	// f 4.20 2.33 1.20 1.67
	// g 5.40 2.33 0.60 1.67
}

func ExampleBinaryScaled() {
	sizes := []int{120, 60, 20}
	rects := make([]treemap.Rect[int], len(sizes))

	idx := 0
	treemap.BinaryScaled(
		treemap.FromSize(20, 10),
		sizes,
		func(s *int) int { return *s },
		func(_ *int, r treemap.Rect[int]) {
			rects[idx] = r
			idx++
		},
	)

	for _, r := range rects {
		fmt.Println(r)
	}
	// Output:
	// (0,0 12x10)
	// (12,0 8x7)
	// (12,7 8x3)
}

func ExampleRect_FlipV() {
	r := treemap.Rect[int]{X: 0, Y: 0, W: 4, H: 1}
	r.FlipV(10)
	fmt.Println(r)
	// Output: (0,9 4x1)
}
