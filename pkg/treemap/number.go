package treemap

import "golang.org/x/exp/constraints"

// Number is the set of numeric types the layouts operate on.
//
// The algorithms only need addition, subtraction, multiplication, division,
// ordering and a zero value, which every integer and floating point type
// provides. Integer layouts truncate on division.
type Number interface {
	constraints.Integer | constraints.Float
}

// ratio returns an item's aspect ratio inside a band as a fraction
// (numer, denom) with numer >= denom.
//
// sideSquared is the band's fixed side, already squared. total is the weight
// of the whole band and item the weight of the item being measured.
func ratio[N Number](sideSquared, total, item N) (N, N) {
	a := total * total
	b := sideSquared * item
	if a >= b {
		return a, b
	}
	return b, a
}

// div divides a by b, treating a zero divisor as producing zero.
func div[N Number](a, b N) N {
	if b == 0 {
		return 0
	}
	return a / b
}
