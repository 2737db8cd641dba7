package treemap

import "strings"

// Algorithm names a layout algorithm for callers that choose one at runtime.
type Algorithm string

const (
	AlgorithmSlice       Algorithm = "slice"
	AlgorithmDice        Algorithm = "dice"
	AlgorithmBinary      Algorithm = "binary"
	AlgorithmSquarify    Algorithm = "squarify"
	AlgorithmPivotMiddle Algorithm = "pivot-middle"
	AlgorithmPivotSize   Algorithm = "pivot-size"
)

var descriptions = map[Algorithm]string{
	AlgorithmSlice:       "one column of horizontal strips",
	AlgorithmDice:        "one row of vertical strips",
	AlgorithmBinary:      "recursive two-way split balancing weight",
	AlgorithmSquarify:    "greedy bands minimizing the worst aspect ratio",
	AlgorithmPivotMiddle: "four-way split around the middle item",
	AlgorithmPivotSize:   "four-way split around the largest item",
}

// Algorithms returns every algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmSquarify,
		AlgorithmBinary,
		AlgorithmPivotMiddle,
		AlgorithmPivotSize,
		AlgorithmSlice,
		AlgorithmDice,
	}
}

// ParseAlgorithm looks up an algorithm by name, ignoring case and accepting
// underscores in place of dashes.
func ParseAlgorithm(name string) (Algorithm, bool) {
	a := Algorithm(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	_, ok := descriptions[a]
	return a, ok
}

// Description returns a one-line summary of the algorithm.
func (a Algorithm) Description() string { return descriptions[a] }

func (a Algorithm) String() string { return string(a) }

// Run lays out items with the named algorithm, using its Scaled variant when
// scaled is set. It reports false, placing nothing, for an unknown algorithm.
func Run[N Number, T any](a Algorithm, scaled bool, rect Rect[N], items []T, size func(*T) N, place func(*T, Rect[N])) bool {
	var fn func(Rect[N], []T, func(*T) N, func(*T, Rect[N]))
	switch a {
	case AlgorithmSlice:
		fn = pick(scaled, Slice[N, T], SliceScaled[N, T])
	case AlgorithmDice:
		fn = pick(scaled, Dice[N, T], DiceScaled[N, T])
	case AlgorithmBinary:
		fn = pick(scaled, Binary[N, T], BinaryScaled[N, T])
	case AlgorithmSquarify:
		fn = pick(scaled, Squarify[N, T], SquarifyScaled[N, T])
	case AlgorithmPivotMiddle:
		fn = pick(scaled, OrderedPivotByMiddle[N, T], OrderedPivotByMiddleScaled[N, T])
	case AlgorithmPivotSize:
		fn = pick(scaled, OrderedPivotBySize[N, T], OrderedPivotBySizeScaled[N, T])
	default:
		return false
	}
	fn(rect, items, size, place)
	return true
}

func pick[F any](scaled bool, plain, withScale F) F {
	if scaled {
		return withScale
	}
	return plain
}
