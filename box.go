package quadraster

import "image"

// Box is an axis-aligned half-open pixel region [Min, Max).
//
// A Box with Min == Max on either axis is empty and intersects nothing.
type Box struct {
	Min, Max Vec2i
}

// B is a convenience function to create a Box from corner coordinates.
func B(x0, y0, x1, y1 int) Box {
	return Box{Min: Vec2i{X: x0, Y: y0}, Max: Vec2i{X: x1, Y: y1}}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	return b.Max.Y - b.Min.Y
}

// Size returns the extent of the box as a vector.
func (b Box) Size() Vec2i {
	return b.Max.Sub(b.Min)
}

// Area returns the number of pixels covered by the box.
func (b Box) Area() int {
	if b.Empty() {
		return 0
	}
	return b.Width() * b.Height()
}

// Empty reports whether the box covers no pixels.
func (b Box) Empty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}

// Intersects reports whether a and b share at least one pixel.
//
// The test checks whether either box's minimum corner lies inside the other's
// extent, using a strict upper bound, so boxes that only touch along an edge
// do not intersect. Each pixel on a shared partition edge therefore belongs to
// exactly one cell.
func (b Box) Intersects(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}

	xOverlap := (b.Min.X >= o.Min.X && b.Min.X < o.Min.X+o.Width()) ||
		(o.Min.X >= b.Min.X && o.Min.X < b.Min.X+b.Width())

	yOverlap := (b.Min.Y >= o.Min.Y && b.Min.Y < o.Min.Y+o.Height()) ||
		(o.Min.Y >= b.Min.Y && o.Min.Y < b.Min.Y+b.Height())

	return xOverlap && yOverlap
}

// Contains reports whether the pixel p lies inside the box.
func (b Box) Contains(p Vec2i) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Intersect returns the largest box contained in both a and b.
// The result is the zero Box if they do not intersect.
func (b Box) Intersect(o Box) Box {
	r := Box{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
	if r.Empty() {
		return Box{}
	}
	return r
}

// Rectangle converts the box to an image.Rectangle.
func (b Box) Rectangle() image.Rectangle {
	return image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}
