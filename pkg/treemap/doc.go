// Package treemap partitions a rectangle among weighted items.
//
// # Overview
//
// Given an ordered slice of items, a function returning each item's weight and
// a bounding [Rect], every algorithm in this package carves the rectangle into
// non-overlapping sub-rectangles, one per item, with area proportional to the
// item's weight. Results are written back through a caller-supplied placement
// function, exactly once per item and in input order.
//
// The package is generic over [Number], so the same algorithms run on float32,
// float64 and the signed and unsigned integer types. Comparisons that would
// need a division are done as cross products, which keeps integer layouts
// exact.
//
// # Algorithms
//
//   - [Slice] and [Dice]: one column or one row of strips. O(n).
//   - [Binary]: recursive two-way split balancing cumulative weight. O(n log n).
//   - [Squarify]: the squarified treemap of Bruls, Huizing and van Wijk,
//     building rows greedily while the worst aspect ratio improves. O(n).
//   - [OrderedPivotByMiddle] and [OrderedPivotBySize]: recursive four-way split
//     around a pivot item. O(n log n) and O(n²) respectively.
//
// The plain entry points place weights as they are: an item of weight 6 gets
// an area of 6 square units. The Scaled variants ([SliceScaled], [DiceScaled],
// [BinaryScaled], [SquarifyScaled], [OrderedPivotByMiddleScaled],
// [OrderedPivotBySizeScaled]) first multiply every weight by [Scale] so the
// placed areas add up to the rectangle's area exactly.
//
// Binary cuts by weight ratio, so its output is the same for any common
// multiple of the weights; [BinaryScaled] changes nothing but the arithmetic.
//
// # Usage
//
//	type entry struct {
//	    size float64
//	    rect treemap.Rect[float64]
//	}
//
//	entries := []entry{{size: 6}, {size: 6}, {size: 4}, {size: 3}}
//	treemap.SquarifyScaled(
//	    treemap.FromSize(800.0, 600.0),
//	    entries,
//	    func(e *entry) float64 { return e.size },
//	    func(e *entry, r treemap.Rect[float64]) { e.rect = r },
//	)
//
// Items are never sorted. Squarify and the pivot algorithms give the squarest
// results when items arrive in descending weight order.
//
// # Nesting
//
// There is no tree type. To lay out a hierarchy, lay out the top level, then
// call the algorithm again for each group's children with the group's
// rectangle.
//
// # Degenerate input
//
// Empty slices are a no-op. Scaled entry points are also a no-op when the
// total weight is zero. A zero-area rectangle produces zero-area results.
// Negative weights are accepted but have no geometric meaning.
package treemap
