package quadraster

// Circle is a filled circle.
//
// The boundary is exclusive: a pixel whose squared distance to the center
// equals the squared radius is outside.
type Circle struct {
	Box    Box
	Color  Pixel
	Center Vec2i
	Radius int
}

// NewCircle creates a circle whose bounding box is clipped to frame.
func NewCircle(center Vec2i, radius int, color Pixel, frame Box) Circle {
	var c Circle
	c.set(center, radius, color, frame)
	return c
}

// set initializes c in place. Used for arena-allocated circles.
func (c *Circle) set(center Vec2i, radius int, color Pixel, frame Box) {
	r := Vec2i{X: radius, Y: radius}
	c.Box = Box{
		Min: center.Sub(r).Clamp(frame.Min, frame.Max),
		Max: center.Add(r).Clamp(frame.Min, frame.Max),
	}
	c.Color = color
	c.Center = center
	c.Radius = radius
}

// Bounds implements Shape.
func (c *Circle) Bounds() Box {
	return c.Box
}

// Distance implements Shape. It returns |p-center|^2 - radius^2.
func (c *Circle) Distance(p Vec2i) int {
	return p.Sub(c.Center).LenSq() - c.Radius*c.Radius
}

// Sample implements Shape.
func (c *Circle) Sample(p Vec2i) Pixel {
	if c.Distance(p) < 0 {
		return c.Color
	}
	return Transparent
}
