// Package demo provides the scenes rendered by the quadraster commands:
// an animated set of bouncing circles, static scenes loaded from TOML
// files, and a text overlay for frame statistics.
package demo

import "github.com/gogpu/quadraster"

// Engine is the part of quadraster.Engine a scene draws through.
type Engine interface {
	Submit(s quadraster.Shape)
	SubmitCircle(x, y, radius int, color quadraster.Pixel)
	Width() int
	Height() int
}

// Source produces the shapes of one frame.
type Source interface {
	Render(e Engine)
}
