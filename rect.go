package quadraster

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	Box   Box
	Color Pixel
}

// NewRect creates a rectangle covering box clipped to frame.
func NewRect(box Box, color Pixel, frame Box) *Rect {
	return &Rect{Box: box.Intersect(frame), Color: color}
}

// Bounds implements Shape.
func (r *Rect) Bounds() Box {
	return r.Box
}

// Distance implements Shape. Inside the rectangle it is minus the distance
// to the nearest edge (at least -1); outside it is the chebyshev distance to
// the rectangle.
func (r *Rect) Distance(p Vec2i) int {
	if r.Box.Contains(p) {
		d := min(p.X-r.Box.Min.X, r.Box.Max.X-1-p.X, p.Y-r.Box.Min.Y, r.Box.Max.Y-1-p.Y)
		return -(d + 1)
	}
	dx := max(r.Box.Min.X-p.X, p.X-(r.Box.Max.X-1), 0)
	dy := max(r.Box.Min.Y-p.Y, p.Y-(r.Box.Max.Y-1), 0)
	return max(dx, dy)
}

// Sample implements Shape.
func (r *Rect) Sample(p Vec2i) Pixel {
	if r.Distance(p) < 0 {
		return r.Color
	}
	return Transparent
}
