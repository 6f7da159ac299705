package quadraster

// Shape is anything the engine can rasterize.
//
// Implementations must be safe for concurrent reads: a shape spanning
// several partition cells is sampled by several workers at once.
// Sample must return Transparent for every point outside Bounds.
type Shape interface {
	// Bounds returns the region the shape may cover, in frame coordinates.
	Bounds() Box

	// Distance returns a signed distance-like value at p: negative inside
	// the shape, zero on the boundary, positive outside.
	Distance(p Vec2i) int

	// Sample returns the shape's color contribution at p.
	Sample(p Vec2i) Pixel
}
