package treemap

import "fmt"

// Rect is an axis-aligned rectangle with its origin at (X, Y).
type Rect[N Number] struct {
	X, Y N
	W, H N
}

// FromSize returns a rectangle of the given size at the origin.
func FromSize[N Number](w, h N) Rect[N] {
	return Rect[N]{W: w, H: h}
}

// Area returns W*H.
func (r Rect[N]) Area() N { return r.W * r.H }

// Right returns the X coordinate of the right edge.
func (r Rect[N]) Right() N { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect[N]) Bottom() N { return r.Y + r.H }

// Contains reports whether o lies inside r, allowing tol of slack on each edge.
func (r Rect[N]) Contains(o Rect[N], tol N) bool {
	return o.X >= r.X-tol && o.Y >= r.Y-tol &&
		o.Right() <= r.Right()+tol && o.Bottom() <= r.Bottom()+tol
}

// FlipH mirrors the rectangle horizontally inside a container of the given
// extent, so a rect touching the container's left edge ends up touching its
// right edge.
func (r *Rect[N]) FlipH(container N) {
	r.X = container - r.X - r.W
}

// FlipV mirrors the rectangle vertically inside a container of the given
// extent.
func (r *Rect[N]) FlipV(container N) {
	r.Y = container - r.Y - r.H
}

func (r Rect[N]) String() string {
	return fmt.Sprintf("(%v,%v %vx%v)", r.X, r.Y, r.W, r.H)
}
