package quadraster

import "math"

// Vec2i represents an integer 2D position or displacement in pixel space.
type Vec2i struct {
	X, Y int
}

// V2i is a convenience function to create a Vec2i.
func V2i(x, y int) Vec2i {
	return Vec2i{X: x, Y: y}
}

// Add returns the componentwise sum of two vectors.
func (v Vec2i) Add(w Vec2i) Vec2i {
	return Vec2i{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec2i) Sub(w Vec2i) Vec2i {
	return Vec2i{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the componentwise product of two vectors.
func (v Vec2i) Mul(w Vec2i) Vec2i {
	return Vec2i{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the componentwise quotient of two vectors.
// Division truncates toward zero and panics on a zero component of w.
func (v Vec2i) Div(w Vec2i) Vec2i {
	return Vec2i{X: v.X / w.X, Y: v.Y / w.Y}
}

// Neg returns the negation of the vector.
func (v Vec2i) Neg() Vec2i {
	return Vec2i{X: -v.X, Y: -v.Y}
}

// Min returns the componentwise minimum of two vectors.
func (v Vec2i) Min(w Vec2i) Vec2i {
	return Vec2i{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the componentwise maximum of two vectors.
func (v Vec2i) Max(w Vec2i) Vec2i {
	return Vec2i{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// LenSq returns the squared length of the vector.
func (v Vec2i) LenSq() int {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of the vector truncated to an integer.
func (v Vec2i) Len() int {
	return int(math.Sqrt(float64(v.LenSq())))
}

// Clamp returns v with each component clamped to [lo, hi] of the
// corresponding component.
func (v Vec2i) Clamp(lo, hi Vec2i) Vec2i {
	return Vec2i{X: clampInt(v.X, lo.X, hi.X), Y: clampInt(v.Y, lo.Y, hi.Y)}
}

// clampInt clamps x to the range [lo, hi].
func clampInt(x, lo, hi int) int {
	return max(lo, min(x, hi))
}
